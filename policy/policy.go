// Package policy defines the eviction contract used by the cache controller.
//
// Unlike a per-shard policy, an Evictor sees the whole cache: the controller
// consults it only when an insert of a new key would exceed capacity, and the
// victim it names may live in any shard.
package policy

// Evictor tracks resident keys and names the next one to drop.
//
// Concurrency: all methods are invoked under the controller's bookkeeping
// lock, so implementations need no synchronisation of their own.
//
// Semantics:
//   - OnAdd is called after a new key became resident.
//   - OnUpdate is called after an existing key was overwritten.
//   - OnRemove is called after a key left the cache. Unknown keys are ignored.
//   - Victim returns the key to evict next, or false if nothing is tracked.
//     It must not mutate state; the controller calls OnRemove afterwards.
type Evictor[K comparable] interface {
	OnAdd(K)
	OnUpdate(K)
	OnRemove(K)
	Victim() (K, bool)
}

// GetObserver is implemented by evictors whose order depends on reads
// (e.g. LRU). The controller calls OnGet after a successful lookup, outside
// the shard lock; the key may already be gone, in which case it is ignored.
type GetObserver[K comparable] interface {
	OnGet(K)
}

// Policy is a factory that creates an Evictor for a cache of the given
// capacity (entry count).
type Policy[K comparable] interface {
	New(capacity int) Evictor[K]
}
