package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/IvanBrykalov/dnscache/internal/util"
	"github.com/IvanBrykalov/dnscache/policy"
	"github.com/IvanBrykalov/dnscache/policy/fifo"
)

// ErrNoLoader is returned by ResolveOrLoad when no Loader was configured in Options.
var ErrNoLoader = errors.New("cache: no Loader provided")

// Cache is a bounded, sharded in-memory cache of resolved names.
// All methods are safe for concurrent use by multiple goroutines.
//
// Two lock domains exist: one RWMutex per shard, and the bookkeeping mutex
// guarding size and the eviction policy. Update holds the bookkeeping mutex
// for its whole probe/evict/insert sequence and takes shard locks inside it;
// Resolve only takes a shard read lock. Lock order is always bookkeeping
// before shard.
type Cache struct {
	shards   []*shard
	hash     func(string) uint64
	capacity int

	// ---- guarded by mu ----
	mu   sync.Mutex
	size int
	pol  policy.Evictor[string]

	// observer is pol when it orders by reads, nil otherwise.
	observer policy.GetObserver[string]

	evictions atomic.Uint64
	loads     atomic.Uint64

	opt Options
	log *slog.Logger

	// singleflight group for coalescing concurrent loads in ResolveOrLoad.
	sf singleflight.Group
}

// New constructs a cache with the provided Options.
// Shard count and capacity are fixed for the lifetime of the cache.
func New(opt Options) *Cache {
	if opt.Shards <= 0 {
		opt.Shards = DefaultShards
	}
	if opt.Capacity <= 0 {
		opt.Capacity = DefaultCapacity
	}
	if opt.Policy == nil {
		opt.Policy = fifo.New[string]()
	}
	if opt.Hash == nil {
		opt.Hash = HashXX
	}
	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}
	if opt.Logger == nil {
		opt.Logger = slog.New(slog.DiscardHandler)
	}

	shards := make([]*shard, opt.Shards)
	for i := range shards {
		shards[i] = &shard{}
	}

	c := &Cache{
		shards:   shards,
		hash:     opt.Hash,
		capacity: opt.Capacity,
		pol:      opt.Policy.New(opt.Capacity),
		opt:      opt,
		log:      opt.Logger,
	}
	c.observer, _ = c.pol.(policy.GetObserver[string])
	return c
}

// Resolve returns the cached value for key, or "" on a miss.
func (c *Cache) Resolve(key string) string {
	v, _ := c.Lookup(key)
	return v
}

// Lookup returns the cached value for key and whether it was present.
// Unlike Resolve it tells a stored empty value apart from a miss.
func (c *Cache) Lookup(key string) (string, bool) {
	s := c.shardOf(key)
	v, ok := s.resolve(key)
	if !ok {
		s.misses.Add(1)
		c.opt.Metrics.Miss()
		return "", false
	}
	s.hits.Add(1)
	c.opt.Metrics.Hit()

	// The shard lock is already released here; see lock order on Cache.
	if c.observer != nil {
		c.mu.Lock()
		c.observer.OnGet(key)
		c.mu.Unlock()
	}
	return v, true
}

// Update inserts key→value or overwrites the existing value.
//
// A new key arriving at capacity first evicts the policy's victim, which may
// live in another shard. Overwrites never change size or trigger eviction.
func (c *Cache) Update(key, value string) {
	s := c.shardOf(key)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, present := s.resolve(key); !present && c.size >= c.capacity {
		if !c.evictLocked() {
			c.log.Warn("dnscache: cache full and policy has no victim, update dropped",
				"key", key, "size", c.size)
			return
		}
	}

	if s.update(key, value) {
		c.pol.OnUpdate(key)
		return
	}
	c.size++
	c.pol.OnAdd(key)
	c.opt.Metrics.Size(c.size)
}

// Len returns the number of resident entries across all shards.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.size
}

// Capacity returns the maximum number of resident entries.
func (c *Cache) Capacity() int { return c.capacity }

// Shards returns the number of shards.
func (c *Cache) Shards() int { return len(c.shards) }

// Stats is a point-in-time snapshot of cache counters.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Loads     uint64
	Size      int
	Capacity  int
	Shards    int
}

// Stats returns a snapshot of the cache counters. Counters are read
// individually, so a snapshot taken under load is not atomic as a whole.
func (c *Cache) Stats() Stats {
	st := Stats{
		Evictions: c.evictions.Load(),
		Loads:     c.loads.Load(),
		Size:      c.Len(),
		Capacity:  c.capacity,
		Shards:    len(c.shards),
	}
	for _, s := range c.shards {
		st.Hits += s.hits.Load()
		st.Misses += s.misses.Load()
	}
	return st
}

// ResolveOrLoad returns the value for key; on miss it loads via Options.Loader,
// coalescing concurrent loads for the same key, and stores the result.
// Loader errors are returned wrapped and nothing is cached.
// If no Loader is configured, returns ErrNoLoader.
//
// Cancelling ctx unblocks only this caller. The load itself keeps the values
// of the starting caller's context but not its cancellation, so one caller
// leaving never fails the others waiting on the same key.
func (c *Cache) ResolveOrLoad(ctx context.Context, key string) (string, error) {
	// fast path
	if v, ok := c.Lookup(key); ok {
		return v, nil
	}
	if c.opt.Loader == nil {
		return "", ErrNoLoader
	}

	ch := c.sf.DoChan(key, func() (any, error) {
		// double-check after flight join
		if v, ok := c.shardOf(key).resolve(key); ok {
			return v, nil
		}
		start := time.Now()
		v, err := c.opt.Loader(context.WithoutCancel(ctx), key)
		c.loads.Add(1)
		c.opt.Metrics.Load(time.Since(start), err)
		if err != nil {
			c.log.Warn("dnscache: load failed", "key", key, "error", err)
			return "", fmt.Errorf("cache: load %q: %w", key, err)
		}
		c.Update(key, v)
		return v, nil
	})

	select {
	case r := <-ch:
		if r.Err != nil {
			return "", r.Err
		}
		return r.Val.(string), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// ---- helpers ----

// shardOf routes key to its shard: hash(key) mod N.
func (c *Cache) shardOf(key string) *shard {
	return c.shards[c.shardIndex(key)]
}

func (c *Cache) shardIndex(key string) int {
	return util.ShardIndex(c.hash(key), len(c.shards))
}

// evictLocked removes policy victims until there is room for one more entry.
// Reports false if the policy ran out of candidates first. mu must be held.
func (c *Cache) evictLocked() bool {
	for c.size >= c.capacity {
		victim, ok := c.pol.Victim()
		if !ok {
			return false
		}
		v, found := c.shardOf(victim).remove(victim)
		c.pol.OnRemove(victim)
		if !found {
			// Policy tracked a key no shard holds; it is forgotten now.
			c.log.Warn("dnscache: eviction victim not resident", "key", victim)
			continue
		}
		c.size--
		c.evictions.Add(1)
		c.opt.Metrics.Evict()
		c.opt.Metrics.Size(c.size)
		if cb := c.opt.OnEvict; cb != nil {
			cb(victim, v)
		}
		c.log.Debug("dnscache: evicted", "key", victim)
	}
	return true
}
