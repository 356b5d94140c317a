// cmd/api/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/product"
	"github.com/your-org/storefront/internal/domain/session"
	"github.com/your-org/storefront/internal/infrastructure/database/postgres"
	"github.com/your-org/storefront/internal/infrastructure/database/redis"
	"github.com/your-org/storefront/internal/interfaces/http"
	"github.com/your-org/storefront/internal/interfaces/http/handlers"
	"github.com/your-org/storefront/internal/pkg/auth"
	"github.com/your-org/storefront/internal/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logr := logger.New(cfg.Logging)
	logr.WithFields(logrus.Fields{
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
	}).Infof("🚀 Starting %s", cfg.App.Name)

	// run owns every connection, so its deferred closes finish before we exit
	if err := run(cfg, logr); err != nil {
		logr.WithError(err).Error("Server exited with error")
		os.Exit(1)
	}

	logr.Info("✅ Server shutdown completed")
}

func run(cfg *config.Config, logr *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	healthChecks := make(map[string]handlers.HealthChecker)

	// Catalog: postgres when enabled, otherwise the built-in demo products
	var catalog product.Catalog
	if cfg.Database.Enabled {
		db, err := postgres.NewConnection(cfg, logr)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.Health(); err != nil {
			return fmt.Errorf("database health check failed: %w", err)
		}
		healthChecks["database"] = db

		migration := postgres.NewMigration(db.GetDB(), logr)
		if err := migration.RunAutoMigrations(); err != nil {
			return fmt.Errorf("database migration failed: %w", err)
		}
		if err := migration.CreateIndexes(); err != nil {
			logr.WithError(err).Warn("Index creation failed")
		}

		if cfg.Database.SeedDemo {
			if err := migration.SeedDemoProducts(ctx); err != nil {
				logr.WithError(err).Warn("Demo product seeding failed")
			}
		}
		if cfg.IsDevelopment() {
			if err := migration.GetTableInfo(); err != nil {
				logr.WithError(err).Warn("Failed to read table info")
			}
		}

		catalog = product.NewRepository(db.GetDB())
	} else {
		logr.Info("Database disabled, serving the demo catalog from memory")
		demo, err := product.NewStaticCatalogFromSeeds(product.DemoSeeds())
		if err != nil {
			return fmt.Errorf("failed to load demo catalog: %w", err)
		}
		catalog = demo
	}

	opts := http.Options{
		Config:       cfg,
		Logger:       logr,
		Sessions:     auth.NewSessionManager(cfg),
		HealthChecks: healthChecks,
	}

	if cfg.Redis.Enabled {
		redisClient, err := redis.NewConnection(cfg, logr)
		if err != nil {
			return err
		}
		defer redisClient.Close()

		healthChecks["redis"] = redisClient
		opts.RedisClient = redisClient.GetClient()
		catalog = product.NewCachedCatalog(catalog, redisClient, cfg.Catalog.CacheTTL, logr)
	}

	registry := session.NewRegistry(catalog, cfg.Session.IdleTTL, logr)
	go registry.Run(ctx, cfg.Session.SweepInterval)

	opts.ProductService = product.NewService(catalog)
	opts.CartService = cart.NewService(registry)
	server := http.NewServer(opts)

	logr.Info("✅ All systems operational!")

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	var runErr error
	select {
	case runErr = <-serverErr:
	case <-ctx.Done():
		logr.Info("👋 Shutting down gracefully...")
	}

	// Give server 30 seconds to shutdown gracefully
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(shutdownCtx); err != nil {
		logr.WithError(err).Error("Failed to shutdown HTTP server gracefully")
	}

	return runErr
}
