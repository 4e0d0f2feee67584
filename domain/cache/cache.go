package cache

import (
	"sync"
	"time"
)

// Cache is a simple in-memory cache with per-entry expiration.
type Cache struct {
	data sync.Map
}

type cacheEntry struct {
	value     interface{}
	expiresAt time.Time
}

// New creates a new cache.
func New() *Cache {
	return &Cache{}
}

// Set adds an item to the cache with a specified key, value and expiration
// duration. An expiration of zero means the entry never expires.
func (c *Cache) Set(key string, value interface{}, expiration time.Duration) {
	entry := cacheEntry{value: value}
	if expiration > 0 {
		entry.expiresAt = time.Now().Add(expiration)
	}
	c.data.Store(key, entry)
}

// Get retrieves the value associated with a key from the cache.
// Returns false if the key does not exist or the entry expired.
func (c *Cache) Get(key string) (interface{}, bool) {
	raw, ok := c.data.Load(key)
	if !ok {
		return nil, false
	}

	entry, ok := raw.(cacheEntry)
	if !ok {
		return nil, false
	}

	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		c.data.Delete(key)
		return nil, false
	}

	return entry.value, true
}

// Delete removes an item from the cache.
func (c *Cache) Delete(key string) {
	c.data.Delete(key)
}
