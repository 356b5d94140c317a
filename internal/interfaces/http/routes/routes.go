// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/product"
	"github.com/your-org/storefront/internal/interfaces/http/handlers"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
	"github.com/your-org/storefront/internal/pkg/auth"
)

// Dependencies holds everything the route handlers need
type Dependencies struct {
	Config         *config.Config
	Logger         *logrus.Logger
	ProductService *product.Service
	CartService    *cart.Service
	Sessions       *auth.SessionManager
	Health         *handlers.HealthHandler
}

// SetupProductRoutes sets up product related routes
func SetupProductRoutes(rg *gin.RouterGroup, deps Dependencies) {
	productHandler := handlers.NewProductHandler(deps.ProductService)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/:id", productHandler.GetProduct)
	}
}

// SetupCartRoutes sets up cart related routes
func SetupCartRoutes(rg *gin.RouterGroup, deps Dependencies) {
	cartHandler := handlers.NewCartHandler(deps.CartService, deps.Logger)

	cart := rg.Group("/cart")
	cart.Use(middleware.Session(deps.Config, deps.Sessions, deps.Logger))
	{
		cart.GET("", cartHandler.GetCart)
		cart.DELETE("", cartHandler.ClearCart)
		cart.POST("/items", cartHandler.AddToCart)
		cart.PATCH("/items/:id", cartHandler.UpdateCartItem)
	}
}

// SetupRoutes sets up all API routes
func SetupRoutes(rg *gin.RouterGroup, deps Dependencies) {
	rg.GET("/health", deps.Health.Health)

	SetupProductRoutes(rg, deps)
	SetupCartRoutes(rg, deps)
}
