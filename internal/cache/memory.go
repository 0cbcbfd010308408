package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/ppiankov/actornet/internal/model"
)

// MemoryCache keeps decoded results in process, so a hit costs no decoding
type MemoryCache struct {
	items *gocache.Cache
}

// NewMemoryCache creates a memory cache; entries expire after defaultTTL
// and are swept every cleanupInterval
func NewMemoryCache(defaultTTL time.Duration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{items: gocache.New(defaultTTL, cleanupInterval)}
}

// Get returns the cached result for key
func (c *MemoryCache) Get(key string) (model.AnalysisResult, bool) {
	val, found := c.items.Get(key)
	if !found {
		return model.AnalysisResult{}, false
	}
	res, ok := val.(model.AnalysisResult)
	return res, ok
}

// Set stores res; ttl 0 uses the default TTL
func (c *MemoryCache) Set(key string, res model.AnalysisResult, ttl time.Duration) error {
	if ttl == 0 {
		ttl = gocache.DefaultExpiration
	}
	c.items.Set(key, res, ttl)
	return nil
}

// Delete drops one result
func (c *MemoryCache) Delete(key string) error {
	c.items.Delete(key)
	return nil
}

// Clear drops every result
func (c *MemoryCache) Clear() error {
	c.items.Flush()
	return nil
}

// Len returns the number of live entries
func (c *MemoryCache) Len() int {
	return c.items.ItemCount()
}
