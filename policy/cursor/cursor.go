// Package cursor implements single-slot eviction: the only eviction
// candidate is the key most recently admitted as a new entry.
//
// Once the cache is full, every new key evicts the previous new key and then
// becomes the candidate itself; keys admitted before that are never
// revisited. The bound on entry count still holds. Use it to reproduce the
// behaviour of caches built around a "last inserted" cursor; prefer fifo or
// lru for a real bounded cache.
package cursor

import "github.com/IvanBrykalov/dnscache/policy"

type cursor[K comparable] struct {
	last K
	set  bool
}

type cursorPolicy[K comparable] struct{}

// New returns a Policy factory for single-slot eviction.
func New[K comparable]() policy.Policy[K] { return cursorPolicy[K]{} }

func (cursorPolicy[K]) New(int) policy.Evictor[K] { return &cursor[K]{} }

// OnAdd moves the cursor to the freshly admitted key.
func (c *cursor[K]) OnAdd(k K) { c.last, c.set = k, true }

// OnUpdate leaves the cursor alone: overwrites are not admissions.
func (c *cursor[K]) OnUpdate(K) {}

// OnRemove clears the cursor if it pointed at k.
func (c *cursor[K]) OnRemove(k K) {
	if c.set && c.last == k {
		var zero K
		c.last, c.set = zero, false
	}
}

func (c *cursor[K]) Victim() (K, bool) { return c.last, c.set }
