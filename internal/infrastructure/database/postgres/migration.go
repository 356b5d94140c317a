// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/product"
	"gorm.io/gorm"
)

// Migration handles database migrations
type Migration struct {
	db     *gorm.DB
	logger *logrus.Logger
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB, logger *logrus.Logger) *Migration {
	return &Migration{
		db:     db,
		logger: logger,
	}
}

// RunAutoMigrations runs GORM auto-migrations for the catalog tables
func (m *Migration) RunAutoMigrations() error {
	m.logger.Info("🔄 Running database auto-migrations...")

	models := []interface{}{
		&product.Product{},
	}

	for _, model := range models {
		m.logger.Debugf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	m.logger.Info("✅ Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates additional indexes. Failures are logged, not returned.
func (m *Migration) CreateIndexes() error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_products_title ON products(title)",
		"CREATE INDEX IF NOT EXISTS idx_products_price ON products(price)",
	}

	successCount := 0
	failCount := 0

	for _, indexSQL := range indexes {
		if err := m.db.Exec(indexSQL).Error; err != nil {
			m.logger.WithError(err).Warn("⚠️ Failed to create index")
			failCount++
		} else {
			successCount++
		}
	}

	m.logger.Infof("✅ Created %d indexes successfully (%d failed)", successCount, failCount)
	return nil
}

// SeedDemoProducts upserts the demo catalog
func (m *Migration) SeedDemoProducts(ctx context.Context) error {
	m.logger.Info("🛍️ Seeding demo products...")

	products, err := product.DemoProducts()
	if err != nil {
		return fmt.Errorf("failed to parse demo products: %w", err)
	}
	if err := product.NewRepository(m.db).Upsert(ctx, products); err != nil {
		return fmt.Errorf("failed to seed demo products: %w", err)
	}

	m.logger.Infof("✅ Seeded %d demo products", len(products))
	return nil
}

// GetTableInfo logs the row count of each public table
func (m *Migration) GetTableInfo() error {
	var tables []string
	if err := m.db.Raw("SELECT tablename FROM pg_tables WHERE schemaname = 'public' ORDER BY tablename").Scan(&tables).Error; err != nil {
		return err
	}

	for _, table := range tables {
		var count int64
		m.db.Table(table).Count(&count)
		m.logger.WithFields(logrus.Fields{
			"table":   table,
			"records": count,
		}).Info("📊 Table info")
	}
	return nil
}
