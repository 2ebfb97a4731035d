package common

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// In-memory cache tuning. Analytics responses only change when the upstream
// finishes its daily processing run, so entries default to surviving most of
// a reporting day; callers with fresher data (gateway snapshots, share
// tokens) pass their own duration per entry.
const (
	defaultEntryTTL = 16 * time.Hour
	sweepInterval   = 10 * time.Minute
)

// MemoryCache is the in-process CacheInterface implementation. Report query
// results and gateway snapshots fit comfortably in process memory, so this
// is the default when no Redis host is configured.
type MemoryCache struct {
	entries *cache.Cache
}

// Ensure MemoryCache implements CacheInterface
var _ CacheInterface = (*MemoryCache)(nil)

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: cache.New(defaultEntryTTL, sweepInterval)}
}

func (mc *MemoryCache) Set(key string, value interface{}, duration time.Duration) {
	mc.entries.Set(key, value, duration)
}

func (mc *MemoryCache) Get(key string) (interface{}, bool) {
	return mc.entries.Get(key)
}

func (mc *MemoryCache) Delete(key string) {
	mc.entries.Delete(key)
}

func (mc *MemoryCache) GetOrSet(
	key string,
	duration time.Duration,
	loader func() (any, error)) (interface{}, error) {
	if val, found := mc.Get(key); found {
		return val, nil
	}

	val, err := loader()
	if err != nil {
		return nil, err
	}

	mc.Set(key, val, duration)
	return val, nil
}

// Close closes the cache (no-op for the in-memory cache)
func (mc *MemoryCache) Close() error {
	return nil
}
