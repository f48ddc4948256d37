// Package cache holds the content payload caches: Redis when configured and
// an in-process TTL map otherwise.
package cache

import (
	"context"
	"time"
)

// Cache is implemented by both backends.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Purge removes every key starting with prefix and reports how many went.
	Purge(ctx context.Context, prefix string) (int, error)
}

var (
	_ Cache = (*Memory)(nil)
	_ Cache = (*Redis)(nil)
)
