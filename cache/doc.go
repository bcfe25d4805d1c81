// Package cache provides a bounded, sharded in-memory cache meant to sit in
// front of a name-resolution service: callers resolve a hostname from the
// cache and, on a miss, store the freshly resolved address.
//
// Design
//
//   - Sharding: keys are routed to one of N shards (17 by default) by
//     hash(key) mod N. Routing is deterministic for the life of a Cache and
//     no operation touches more than one shard, except an eviction which
//     may remove the victim from another shard.
//
//   - Storage: each shard keeps a short slice of entries scanned linearly
//     under an RWMutex. Capacity is a small multiple of the shard count, so
//     chains stay short and no per-shard index is kept.
//
//   - Capacity: a single bookkeeping mutex guards the entry count and the
//     eviction policy. Update holds it across the absence probe, the
//     eviction and the insert, so the count always matches the shards once
//     an Update returns and never exceeds Capacity. Resolve never takes it
//     unless the policy orders by reads (LRU, 2Q).
//
//   - Policies: the eviction policy is pluggable via the policy package.
//     FIFO is the default. LRU and 2Q are provided, as is cursor, which
//     keeps only the most recently inserted key as its eviction candidate.
//
//   - ResolveOrLoad: coalesces concurrent loads for the same key using
//     singleflight. If Loader is nil, ResolveOrLoad returns ErrNoLoader.
//
//   - Metrics: Options.Metrics receives Hit/Miss/Evict/Size/Load signals.
//     By default NoopMetrics is used; plug the Prometheus adapter from
//     metrics/prom to export them.
//
// Basic usage
//
//	c := cache.New(cache.Options{Capacity: 1024, Shards: 31})
//	if ip := c.Resolve("example.org"); ip == "" {
//	    c.Update("example.org", lookup("example.org"))
//	}
//
// Process-wide instance
//
//	cache.Instance().Update("localhost", "127.0.0.1")
//
// With a loader
//
//	c := cache.New(cache.Options{
//	    Loader: func(ctx context.Context, host string) (string, error) {
//	        addrs, err := net.DefaultResolver.LookupHost(ctx, host)
//	        if err != nil {
//	            return "", err
//	        }
//	        return addrs[0], nil
//	    },
//	})
//	ip, err := c.ResolveOrLoad(ctx, "example.org")
//
// Using an alternative policy
//
//	c := cache.New(cache.Options{
//	    Capacity: 4096,
//	    Policy:   lru.New[string](),
//	})
package cache
