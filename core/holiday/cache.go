package holiday

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// CachedSource wraps a pack Lister with a TTL cache. Batch runs over many
// subjects reuse one bucket read instead of listing per subject.
// Singleflight collapses concurrent rebuilds into a single load.
type CachedSource struct {
	inner Lister
	ttl   time.Duration

	mu    sync.RWMutex
	packs []Pack
	built time.Time
	sf    singleflight.Group
}

// NewCachedSource wraps inner with the given TTL. A zero TTL disables
// caching entirely and every call passes through.
func NewCachedSource(inner Lister, ttl time.Duration) *CachedSource {
	return &CachedSource{inner: inner, ttl: ttl}
}

// ListPacks returns the cached pack list, rebuilding it when expired.
func (c *CachedSource) ListPacks(ctx context.Context) ([]Pack, error) {
	if c.ttl == 0 {
		return c.inner.ListPacks(ctx)
	}

	c.mu.RLock()
	packs, fresh := c.packs, time.Since(c.built) <= c.ttl && !c.built.IsZero()
	c.mu.RUnlock()
	if fresh {
		return packs, nil
	}

	result, err, _ := c.sf.Do("packs", func() (any, error) {
		// Re-check after winning the singleflight slot.
		c.mu.RLock()
		packs, fresh := c.packs, time.Since(c.built) <= c.ttl && !c.built.IsZero()
		c.mu.RUnlock()
		if fresh {
			return packs, nil
		}

		loaded, err := c.inner.ListPacks(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.packs = loaded
		c.built = time.Now()
		c.mu.Unlock()
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]Pack), nil
}

// Invalidate drops the cached list, forcing a rebuild on the next call.
func (c *CachedSource) Invalidate() {
	c.mu.Lock()
	c.packs = nil
	c.built = time.Time{}
	c.mu.Unlock()
}
