package cache

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ppiankov/actornet/internal/model"
)

// memoryCleanup is how often expired memory entries are swept
const memoryCleanup = 10 * time.Minute

// LayeredCache checks decoded results in memory before JSON entries on
// disk, and writes through to both
type LayeredCache struct {
	memory *MemoryCache
	disk   *DiskCache
}

// NewLayeredCache creates a memory + disk store
func NewLayeredCache(memoryTTL time.Duration, diskDir string, diskTTL time.Duration) *LayeredCache {
	return &LayeredCache{
		memory: NewMemoryCache(memoryTTL, memoryCleanup),
		disk:   NewDiskCache(diskDir, diskTTL),
	}
}

// Get returns a memory hit, or decodes a disk hit and promotes it to
// memory. A disk entry that does not decode as a result is removed.
func (c *LayeredCache) Get(key string) (model.AnalysisResult, bool) {
	if res, found := c.memory.Get(key); found {
		return res, true
	}

	data, found := c.disk.Get(key)
	if !found {
		return model.AnalysisResult{}, false
	}
	var res model.AnalysisResult
	if err := json.Unmarshal(data, &res); err != nil {
		_ = c.disk.Delete(key)
		return model.AnalysisResult{}, false
	}
	_ = c.memory.Set(key, res, 0)
	return res, true
}

// Set stores res in memory with ttl and on disk with the disk default, so
// entries outlive a short memory TTL across runs
func (c *LayeredCache) Set(key string, res model.AnalysisResult, ttl time.Duration) error {
	if err := c.memory.Set(key, res, ttl); err != nil {
		return err
	}
	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return c.disk.Set(key, data, 0)
}

// Delete removes a result from both layers
func (c *LayeredCache) Delete(key string) error {
	_ = c.memory.Delete(key)
	return c.disk.Delete(key)
}

// Clear empties both layers
func (c *LayeredCache) Clear() error {
	_ = c.memory.Clear()
	return c.disk.Clear()
}

// Prune drops expired disk entries
func (c *LayeredCache) Prune() (int, error) {
	return c.disk.Prune()
}
