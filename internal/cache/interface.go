// Package cache provides the tag-indexed response cache for content queries.
package cache

import (
	"context"
	"time"
)

// Cacher defines the interface for cache implementations.
// All implementations must be thread-safe.
// Values are []byte to support both the in-memory and Redis backends.
type Cacher interface {
	// Get retrieves a value from the cache.
	// Returns nil and ErrCacheMiss if not found or expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the specified TTL.
	// If TTL is 0, uses the default TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key from the cache.
	Delete(ctx context.Context, key string) error

	// Clear removes all entries from the cache.
	Clear(ctx context.Context) error

	// Has checks if a key exists in the cache (and is not expired).
	Has(ctx context.Context, key string) (bool, error)

	// Close releases any resources held by the cache.
	Close() error
}

// Store is a cache that also maintains a tag index, so that all entries
// sharing an invalidation label can be busted together.
type Store interface {
	Cacher

	// Tag associates the given tags with a cached key. Tagging a key that
	// is later evicted is harmless; invalidation of a missing key is a no-op.
	Tag(ctx context.Context, key string, tags ...string) error

	// InvalidateTag removes every entry associated with the tag and returns
	// the number of entries removed. Invalidating an unknown tag removes
	// nothing and is not an error.
	InvalidateTag(ctx context.Context, tag string) (int, error)
}

// Error represents an error type for cache operations.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	// ErrCacheMiss indicates the key was not found in cache or has expired.
	ErrCacheMiss Error = "cache miss"

	// ErrCacheClosed indicates the cache has been closed.
	ErrCacheClosed Error = "cache closed"
)
