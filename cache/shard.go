package cache

import (
	"slices"
	"sync"

	"github.com/IvanBrykalov/dnscache/internal/util"
)

// entry is one resolved key/value pair.
type entry struct {
	key   string
	value string
}

// shard is an independently locked partition holding the entries whose key
// hashes to it. The chain is a slice scanned linearly: capacity is a small
// multiple of the shard count, so chains stay a handful of entries long and a
// scan beats a map on both memory and constant factors.
type shard struct {
	// ---- guarded by mu ----
	mu    sync.RWMutex
	chain []entry

	// ---- hot counters, bumped by Cache.Lookup (separate cache lines) ----
	_      util.CacheLinePad
	hits   util.PaddedAtomicUint64
	misses util.PaddedAtomicUint64
}

// resolve returns a copy of the value stored for key.
// Concurrent resolves share the read lock.
func (s *shard) resolve(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexLocked(key); i >= 0 {
		return s.chain[i].value, true
	}
	return "", false
}

// update overwrites the value for key and reports true, or appends a new
// entry and reports false.
func (s *shard) update(key, value string) (existed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexLocked(key); i >= 0 {
		s.chain[i].value = value
		return true
	}
	s.chain = append(s.chain, entry{key: key, value: value})
	return false
}

// remove deletes key and returns its last value. Absent keys are a no-op.
func (s *shard) remove(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(key)
	if i < 0 {
		return "", false
	}
	v := s.chain[i].value
	s.chain = slices.Delete(s.chain, i, i+1)
	return v, true
}

func (s *shard) indexLocked(key string) int {
	for i := range s.chain {
		if s.chain[i].key == key {
			return i
		}
	}
	return -1
}
