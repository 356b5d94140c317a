// internal/domain/product/catalog.go
package product

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned by a Catalog when no product has the requested id
var ErrNotFound = errors.New("product not found")

// Catalog is a read-only source of purchasable products
type Catalog interface {
	Lookup(ctx context.Context, id string) (Product, error)
	List(ctx context.Context) ([]Product, error)
}

// StaticCatalog is an in-memory catalog over a fixed product list
type StaticCatalog struct {
	order    []string
	products map[string]Product
}

// NewStaticCatalog creates a catalog from products. A later product with a
// duplicate id replaces the earlier one but keeps its listing position.
func NewStaticCatalog(products ...Product) *StaticCatalog {
	c := &StaticCatalog{
		products: make(map[string]Product, len(products)),
	}
	for _, p := range products {
		if _, exists := c.products[p.ID]; !exists {
			c.order = append(c.order, p.ID)
		}
		c.products[p.ID] = p
	}
	return c
}

// NewStaticCatalogFromSeeds parses seeds into a StaticCatalog
func NewStaticCatalogFromSeeds(seeds []Seed) (*StaticCatalog, error) {
	products := make([]Product, 0, len(seeds))
	for _, s := range seeds {
		p, err := s.Product()
		if err != nil {
			return nil, fmt.Errorf("invalid seed %s: %w", s.ID, err)
		}
		products = append(products, p)
	}
	return NewStaticCatalog(products...), nil
}

// Lookup returns the product with the given id
func (c *StaticCatalog) Lookup(_ context.Context, id string) (Product, error) {
	p, ok := c.products[id]
	if !ok {
		return Product{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return p, nil
}

// List returns all products in catalog order
func (c *StaticCatalog) List(_ context.Context) ([]Product, error) {
	products := make([]Product, 0, len(c.order))
	for _, id := range c.order {
		products = append(products, c.products[id])
	}
	return products, nil
}

// DemoSeeds is the storefront's demo product line
func DemoSeeds() []Seed {
	return []Seed{
		{
			ID:          "p1",
			Title:       "Mauve Luxe Elegance",
			Price:       "89.99",
			Description: "An evening gown in soft mauve satin with a draped neckline and a flowing skirt.",
			Image:       "product-1.jpg",
		},
		{
			ID:          "p2",
			Title:       "Midnight Blue Sophistication",
			Price:       "129.99",
			Description: "A tailored midnight blue dress with a fitted bodice and a sweeping hem.",
			Image:       "product-2.jpg",
		},
		{
			ID:          "p3",
			Title:       "Ruby Red Glamour",
			Price:       "99.99",
			Description: "A ruby red silk dress cut on the bias for a sleek silhouette.",
			Image:       "product-3.jpg",
		},
		{
			ID:          "p4",
			Title:       "Emerald Green Opulence",
			Price:       "149.99",
			Description: "Deep emerald velvet with hand-beaded detailing along the shoulders.",
			Image:       "product-4.jpg",
		},
		{
			ID:          "p5",
			Title:       "Classic Black Noir",
			Price:       "79.99",
			Description: "A little black dress in matte crepe, simple and timeless.",
			Image:       "product-5.jpg",
		},
		{
			ID:          "p6",
			Title:       "Golden Sunset Radiance",
			Price:       "119.99",
			Description: "Shimmering gold lamé with a low back and a fluid drape.",
			Image:       "product-6.jpg",
		},
	}
}

// DemoProducts returns the parsed demo product line
func DemoProducts() ([]Product, error) {
	catalog, err := NewStaticCatalogFromSeeds(DemoSeeds())
	if err != nil {
		return nil, err
	}
	return catalog.List(context.Background())
}
