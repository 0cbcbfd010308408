package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/ppiankov/actornet/internal/model"
)

const keyPrefix = "actornet-v1-"

// Store caches synthesized phase results. Stored results are shared between
// callers and must not be mutated.
type Store interface {
	Get(key string) (model.AnalysisResult, bool)
	Set(key string, res model.AnalysisResult, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a namespaced cache key from its parts. Parts are
// separated so ("ab", "c") and ("a", "bc") never collide.
func Key(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return keyPrefix + hex.EncodeToString(h.Sum(nil))
}

// New builds the memory + disk store described by cfg, or nil when caching is disabled
func New(cfg model.CacheConfig) Store {
	if !cfg.Enabled {
		return nil
	}
	return NewLayeredCache(cfg.MemoryTTL, cfg.Dir, cfg.DiskTTL)
}
