// internal/domain/product/service.go
package product

import (
	"context"

	"github.com/your-org/storefront/internal/pkg/money"
)

// Service serves the product listing
type Service struct {
	catalog Catalog
}

// NewService creates a new product service
func NewService(catalog Catalog) *Service {
	return &Service{
		catalog: catalog,
	}
}

// ProductResponse represents a product with its display price
type ProductResponse struct {
	ID             string      `json:"id"`
	Title          string      `json:"title"`
	Price          money.Cents `json:"price"`
	FormattedPrice string      `json:"formatted_price"`
	Description    string      `json:"description"`
	Image          string      `json:"image"`
}

// ProductListResponse represents the product listing
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
}

// GetProducts retrieves every product in the catalog
func (s *Service) GetProducts(ctx context.Context) (*ProductListResponse, error) {
	products, err := s.catalog.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := &ProductListResponse{
		Products: make([]ProductResponse, 0, len(products)),
		Total:    len(products),
	}
	for _, p := range products {
		resp.Products = append(resp.Products, toResponse(p))
	}
	return resp, nil
}

// GetProduct retrieves a single product by ID
func (s *Service) GetProduct(ctx context.Context, id string) (*ProductResponse, error) {
	p, err := s.catalog.Lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toResponse(p)
	return &resp, nil
}

func toResponse(p Product) ProductResponse {
	return ProductResponse{
		ID:             p.ID,
		Title:          p.Title,
		Price:          p.Price,
		FormattedPrice: p.Price.String(),
		Description:    p.Description,
		Image:          p.Image,
	}
}
