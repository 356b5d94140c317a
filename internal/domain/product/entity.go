// internal/domain/product/entity.go
package product

import (
	"time"

	"github.com/your-org/storefront/internal/pkg/money"
)

// Product represents a purchasable catalog entry
type Product struct {
	ID          string      `gorm:"primaryKey;size:64" json:"id"`
	Title       string      `gorm:"not null;size:255" json:"title"`
	Price       money.Cents `gorm:"not null" json:"price"` // Price in cents
	Description string      `gorm:"type:text" json:"description"`
	Image       string      `gorm:"size:500" json:"image"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// TableName overrides the table name
func (Product) TableName() string {
	return "products"
}

// Seed describes a product with a decimal price string, as written in fixtures
type Seed struct {
	ID          string
	Title       string
	Price       string
	Description string
	Image       string
}

// Product converts the seed into a Product, parsing its price
func (s Seed) Product() (Product, error) {
	price, err := money.Parse(s.Price)
	if err != nil {
		return Product{}, err
	}
	return Product{
		ID:          s.ID,
		Title:       s.Title,
		Price:       price,
		Description: s.Description,
		Image:       s.Image,
	}, nil
}
