package domain

import (
	"context"
	"time"
)

// CacheError represents an error originating from the cache.
type CacheError string

func (e CacheError) Error() string {
	return string(e)
}

// ErrCacheMiss is returned when a key is not found in the cache.
const ErrCacheMiss = CacheError("cache: key not found")

// NoopCache satisfies ConversionCache when no Redis address is configured. Every
// lookup is a miss and every write is dropped.
type NoopCache struct{}

func (NoopCache) Get(ctx context.Context, key string) (string, error) {
	return "", ErrCacheMiss
}

func (NoopCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	return nil
}
