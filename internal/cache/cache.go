// Package cache provides a read-through TTL cache in front of the store.
package cache

import (
	"context"
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/itsalanvarghese/Royal-liquor/internal/model"
	"github.com/itsalanvarghese/Royal-liquor/internal/obs"
	"github.com/itsalanvarghese/Royal-liquor/internal/store"
)

const numShards = 16

type cacheEntry struct {
	rec     model.Product
	created time.Time
}

type shard struct {
	mu sync.Mutex
	m  map[string]cacheEntry
}

// Cache wraps the store with per-shard locking. A mutation and a read-through
// on the same identifier land on the same shard, so a reader can never
// repopulate a value older than the latest committed write. All critical
// sections only cover in-memory map and store operations.
type Cache struct {
	store  *store.Store
	ttl    time.Duration
	shards [numShards]shard

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

func New(s *store.Store, ttl time.Duration) *Cache {
	c := &Cache{store: s, ttl: ttl}
	for i := range c.shards {
		c.shards[i].m = make(map[string]cacheEntry)
	}
	return c
}

func (c *Cache) shardFor(id string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return &c.shards[h.Sum32()%numShards]
}

// Get returns the cached record for id if it is still live, reading through
// to the store otherwise. Expired entries are evicted on access.
func (c *Cache) Get(id string) (model.Product, error) {
	sh := c.shardFor(id)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if ent, ok := sh.m[id]; ok {
		if time.Since(ent.created) < c.ttl {
			c.hits.Add(1)
			return ent.rec, nil
		}
		delete(sh.m, id)
		c.evictions.Add(1)
	}
	c.misses.Add(1)
	rec, err := c.store.Read(id)
	if err != nil {
		return model.Product{}, err
	}
	sh.m[id] = cacheEntry{rec: rec, created: time.Now()}
	return rec, nil
}

// Create inserts a new record into the store. The shard lock is held across
// the write so no read-through can interleave on the same identifier.
func (c *Cache) Create(p model.Product) error {
	sh := c.shardFor(p.ID)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	delete(sh.m, p.ID)
	return c.store.Create(p)
}

// Update merges the patch into the stored record, invalidating the cache
// entry before the write.
func (c *Cache) Update(id string, patch model.ProductPatch) (model.Product, error) {
	sh := c.shardFor(id)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	delete(sh.m, id)
	return c.store.Update(id, patch)
}

// Delete removes the record from the store and the cache.
func (c *Cache) Delete(id string) error {
	sh := c.shardFor(id)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	delete(sh.m, id)
	return c.store.Delete(id)
}

// Sweep evicts expired entries, one shard at a time so lookups on other
// shards are never blocked.
func (c *Cache) Sweep() {
	cutoff := time.Now().Add(-c.ttl)
	for i := range c.shards {
		sh := &c.shards[i]
		sh.mu.Lock()
		for id, ent := range sh.m {
			if ent.created.Before(cutoff) {
				delete(sh.m, id)
				c.evictions.Add(1)
			}
		}
		sh.mu.Unlock()
	}
}

// StartJanitor sweeps expired entries periodically until ctx is done.
func (c *Cache) StartJanitor(ctx context.Context, every time.Duration) {
	if every <= 0 {
		return
	}
	t := time.NewTicker(every)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				c.Sweep()
				obs.Logger.Debug().Int("entries", c.Size()).Msg("cache sweep")
			}
		}
	}()
}

// Size returns the number of cached entries across all shards.
func (c *Cache) Size() int {
	n := 0
	for i := range c.shards {
		sh := &c.shards[i]
		sh.mu.Lock()
		n += len(sh.m)
		sh.mu.Unlock()
	}
	return n
}

// Stats returns hit, miss and eviction counters.
func (c *Cache) Stats() (hits, misses, evictions uint64) {
	return c.hits.Load(), c.misses.Load(), c.evictions.Load()
}
