package catalog

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// cacheEntry is one loaded catalog and when it was built.
type cacheEntry struct {
	catalog *Catalog
	built   time.Time
}

// Cache keeps loaded catalogs for a TTL, keyed by source.
type Cache struct {
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]cacheEntry
	sf      singleflight.Group
	now     func() time.Time
}

// NewCache creates a cache. A zero ttl disables caching.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

func (c *Cache) expired(e cacheEntry) bool {
	if c.ttl == 0 {
		return true
	}
	return c.now().Sub(e.built) > c.ttl
}

// GetOrLoad returns the cached catalog for key, or calls load when it is missing or expired.
// Concurrent callers for the same key share a single load.
func (c *Cache) GetOrLoad(ctx context.Context, key string, load func(context.Context) (*Catalog, error)) (*Catalog, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && !c.expired(entry) {
		return entry.catalog, nil
	}

	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		c.mu.RLock()
		entry, ok := c.entries[key]
		c.mu.RUnlock()
		if ok && !c.expired(entry) {
			return entry.catalog, nil
		}

		loaded, err := load(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = cacheEntry{catalog: loaded, built: c.now()}
		c.mu.Unlock()
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Catalog), nil
}

// Invalidate drops the entry for key so the next call reloads it.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}
