package cache

import (
	"context"
	"time"
)

// Cache is a TTL key/value store. Get never errors on a missing or expired
// key; it reports a miss instead.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}
