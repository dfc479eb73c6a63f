package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type memoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache is the in-process fallback used when redis is not
// configured, and the default in tests.
func NewMemoryCache() Cache {
	// Purge expired entries every 10 minutes.
	return &memoryCache{cache: gocache.New(gocache.NoExpiration, 10*time.Minute)}
}

func (c *memoryCache) Get(_ context.Context, key string) (string, bool, error) {
	if v, found := c.cache.Get(key); found {
		return v.(string), true, nil
	}
	return "", false, nil
}

func (c *memoryCache) Set(_ context.Context, key, value string, ttl time.Duration) error {
	c.cache.Set(key, value, ttl)
	return nil
}
