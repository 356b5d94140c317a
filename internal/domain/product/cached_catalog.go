// internal/domain/product/cached_catalog.go
package product

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Cache is the subset of a key-value store the catalog cache needs.
// Get must return redis.Nil on a miss.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

// CachedCatalog is a read-through cache in front of another Catalog
type CachedCatalog struct {
	next   Catalog
	cache  Cache
	ttl    time.Duration
	logger *logrus.Logger
}

// NewCachedCatalog wraps next with cache
func NewCachedCatalog(next Catalog, cache Cache, ttl time.Duration, logger *logrus.Logger) *CachedCatalog {
	return &CachedCatalog{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

func cacheKey(id string) string {
	return fmt.Sprintf("catalog:product:%s", id)
}

// Lookup serves the product from cache, falling back to the wrapped catalog.
// Misses from the wrapped catalog are not cached.
func (c *CachedCatalog) Lookup(ctx context.Context, id string) (Product, error) {
	key := cacheKey(id)

	data, err := c.cache.Get(ctx, key)
	switch {
	case err == nil:
		var p Product
		jsonErr := json.Unmarshal([]byte(data), &p)
		if jsonErr == nil {
			return p, nil
		}
		c.logger.WithError(jsonErr).WithField("key", key).Warn("Discarding undecodable catalog cache entry")
	case errors.Is(err, redis.Nil):
	default:
		c.logger.WithError(err).WithField("key", key).Warn("Catalog cache read failed")
	}

	p, err := c.next.Lookup(ctx, id)
	if err != nil {
		return Product{}, err
	}

	encoded, err := json.Marshal(p)
	if err == nil {
		err = c.cache.Set(ctx, key, encoded, c.ttl)
	}
	if err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("Catalog cache write failed")
	}

	return p, nil
}

// List always reads from the wrapped catalog
func (c *CachedCatalog) List(ctx context.Context) ([]Product, error) {
	return c.next.List(ctx)
}
