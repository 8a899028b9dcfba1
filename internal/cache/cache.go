// Package cache is a small string key-value store with expiry, backed by
// redis when configured and by process memory otherwise.
package cache

import (
	"context"
	"time"
)

// Cache stores string values under keys until their TTL passes.
type Cache interface {
	// Get returns the value and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value for ttl. A non-positive ttl keeps the key forever.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
