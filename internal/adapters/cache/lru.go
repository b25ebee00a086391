// Package cache provides the in-memory processor result cache.
package cache

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/reel/internal/core/domain"
	"go.trai.ch/reel/internal/core/ports"
)

// DefaultSize is the default entry capacity of the processor cache.
const DefaultSize = 4096

// Cache is a ports.ProcessorCache backed by a 2Q cache, which keeps
// frequently reused expansions resident while scans from one-off
// evaluations age out quickly. Eviction order is approximate, which is
// fine: a miss only costs recomputation.
type Cache struct {
	entries *lru.TwoQueueCache[domain.Fingerprint, any]
}

var _ ports.ProcessorCache = (*Cache)(nil)

// New creates a Cache holding up to size entries.
func New(size int) (*Cache, error) {
	entries, err := lru.New2Q[domain.Fingerprint, any](size)
	if err != nil {
		return nil, err
	}
	return &Cache{entries: entries}, nil
}

// Insert stores value under key, displacing an older entry if full.
func (c *Cache) Insert(_ context.Context, key domain.Fingerprint, value any) {
	c.entries.Add(key, value)
}

// Get returns the value stored under key, if still resident.
func (c *Cache) Get(_ context.Context, key domain.Fingerprint) (any, bool) {
	return c.entries.Get(key)
}

// Invalidate drops the entry for key if present.
func (c *Cache) Invalidate(_ context.Context, key domain.Fingerprint) {
	c.entries.Remove(key)
}
