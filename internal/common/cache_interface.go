package common

import "time"

// CacheInterface is the contract shared by the in-memory and Redis caches.
// Analytics queries are slow and rate-limited upstream, so every provider
// and the report share-token store go through this interface.
type CacheInterface interface {
	// Set stores a value under key for the given duration
	Set(key string, value interface{}, duration time.Duration)

	// Get retrieves a value by key
	// Returns the value and true if found, nil and false otherwise
	Get(key string) (interface{}, bool)

	// Delete removes a value by key
	Delete(key string)

	// GetOrSet retrieves a value, or loads and stores it if not found
	GetOrSet(key string, duration time.Duration, loader func() (any, error)) (interface{}, error)

	// Close closes any underlying connections (for Redis, etc.)
	Close() error
}
