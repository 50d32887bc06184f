package catalog

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultTTL keeps a fetched catalog fresh across one reconciliation burst:
// concurrent instances reconciling the same catalog share a single fetch,
// and the snapshot expires before the next periodic requeue.
const DefaultTTL = 5 * time.Minute

// Cache wraps a Client with a TTL snapshot and singleflight fetching.
// Safe for concurrent use by parallel reconcilers.
type Cache struct {
	client *Client
	ttl    time.Duration

	group singleflight.Group

	mu       sync.RWMutex
	snapshot *Catalog
}

// NewCache creates a cache around the given client. A zero ttl means
// DefaultTTL.
func NewCache(client *Client, ttl time.Duration) *Cache {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached catalog, fetching when the snapshot is missing or
// stale. Concurrent callers during a fetch share one network round trip.
func (c *Cache) Get(ctx context.Context) (*Catalog, error) {
	c.mu.RLock()
	snapshot := c.snapshot
	c.mu.RUnlock()

	if snapshot != nil && time.Since(snapshot.FetchedAt) < c.ttl {
		return snapshot, nil
	}

	v, err, _ := c.group.Do("fetch", func() (interface{}, error) {
		// Another caller may have refreshed while this one waited.
		c.mu.RLock()
		fresh := c.snapshot
		c.mu.RUnlock()
		if fresh != nil && time.Since(fresh.FetchedAt) < c.ttl {
			return fresh, nil
		}

		cat, err := c.client.Fetch(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.snapshot = cat
		c.mu.Unlock()
		return cat, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Catalog), nil
}

// Invalidate drops the snapshot so the next Get fetches fresh.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.snapshot = nil
	c.mu.Unlock()
}
