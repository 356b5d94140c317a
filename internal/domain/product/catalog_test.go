package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/pkg/money"
)

func TestStaticCatalogLookup(t *testing.T) {
	ctx := context.Background()
	c := NewStaticCatalog(
		Product{ID: "p1", Title: "Shirt", Price: 1999},
		Product{ID: "p2", Title: "Hat", Price: 1250},
	)

	p, err := c.Lookup(ctx, "p2")
	require.NoError(t, err)
	assert.Equal(t, "Hat", p.Title)
	assert.Equal(t, money.Cents(1250), p.Price)

	_, err = c.Lookup(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStaticCatalogDuplicateKeepsPosition(t *testing.T) {
	c := NewStaticCatalog(
		Product{ID: "p1", Title: "Old"},
		Product{ID: "p2", Title: "Hat"},
		Product{ID: "p1", Title: "New"},
	)

	products, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "New", products[0].Title)
	assert.Equal(t, "p2", products[1].ID)
}

func TestStaticCatalogFromSeeds(t *testing.T) {
	c, err := NewStaticCatalogFromSeeds([]Seed{{ID: "p1", Title: "Shirt", Price: "19.99"}})
	require.NoError(t, err)

	p, err := c.Lookup(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, money.Cents(1999), p.Price)

	_, err = NewStaticCatalogFromSeeds([]Seed{{ID: "bad", Price: "1.234"}})
	assert.ErrorContains(t, err, "bad")
}

func TestDemoProducts(t *testing.T) {
	products, err := DemoProducts()
	require.NoError(t, err)
	require.Len(t, products, len(DemoSeeds()))

	seen := map[string]bool{}
	for _, p := range products {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
		assert.NotEmpty(t, p.Title)
		assert.Positive(t, int64(p.Price))
	}
	assert.Equal(t, money.Cents(8999), products[0].Price)
}

func TestServiceGetProducts(t *testing.T) {
	catalog, err := NewStaticCatalogFromSeeds(DemoSeeds())
	require.NoError(t, err)
	svc := NewService(catalog)

	resp, err := svc.GetProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, resp.Total)
	assert.Equal(t, "$89.99", resp.Products[0].FormattedPrice)

	one, err := svc.GetProduct(context.Background(), "p2")
	require.NoError(t, err)
	assert.Equal(t, "Midnight Blue Sophistication", one.Title)

	_, err = svc.GetProduct(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
