// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"time"
)

// Cache defines the interface for short-lived key/value storage.
// Nothing stored here survives a restart.
//
// Example usage:
//
//	// Store a value for an hour
//	err := cache.Set(ctx, "generation:123", data, 1*time.Hour)
//
//	// Retrieve a value
//	data, err := cache.Get(ctx, "generation:123")
//	if err != nil {
//		// handle error or cache miss
//	}
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns the cached data as []byte or an error if the key doesn't exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the cache's default expiration applies.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
