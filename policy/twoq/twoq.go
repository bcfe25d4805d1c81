// Package twoq implements the 2Q eviction policy.
package twoq

import (
	"container/list"

	"github.com/IvanBrykalov/dnscache/policy"
)

// twoQ implements the 2Q eviction policy over cache keys.
//
// Resident queues:
//   - A1in (younger queue): FIFO of first-time keys.
//   - Am   (mature queue):  LRU of keys that were read or overwritten while
//     in A1in, or re-admitted from the ghost queue.
//
// Ghost A1out: keys only, tracks recently evicted A1in keys to give them
// a second chance (bypass A1in on re-admission).
type twoQ[K comparable] struct {
	capIn    int
	capGhost int

	// A1in: newest at Front() -> oldest at Back()
	in    *list.List
	inIdx map[K]*list.Element

	// Am: MRU at Front() -> LRU at Back()
	am    *list.List
	amIdx map[K]*list.Element

	// A1out: MRU at Front() -> LRU at Back()
	ghost    *list.List
	ghostIdx map[K]*list.Element
}

type twoQPolicy[K comparable] struct {
	capIn    int
	capGhost int
}

// New constructs a 2Q policy factory.
// Non-positive sizes are derived from the cache capacity when the evictor is
// built: capIn ≈ 25% of capacity, capGhost ≈ 50% of capacity (both >= 1).
func New[K comparable](capIn, capGhost int) policy.Policy[K] {
	return twoQPolicy[K]{capIn: capIn, capGhost: capGhost}
}

func (p twoQPolicy[K]) New(capacity int) policy.Evictor[K] {
	capIn, capGhost := p.capIn, p.capGhost
	if capIn <= 0 {
		capIn = capacity / 4
	}
	if capGhost <= 0 {
		capGhost = capacity / 2
	}
	return &twoQ[K]{
		capIn:    max(capIn, 1),
		capGhost: max(capGhost, 1),
		in:       list.New(),
		inIdx:    make(map[K]*list.Element),
		am:       list.New(),
		amIdx:    make(map[K]*list.Element),
		ghost:    list.New(),
		ghostIdx: make(map[K]*list.Element),
	}
}

// OnAdd admission rules:
//   - If the key is a ghost, admit it directly to Am (MRU) and drop the ghost.
//   - Otherwise admit it into A1in.
func (q *twoQ[K]) OnAdd(k K) {
	if _, ok := q.inIdx[k]; ok {
		return
	}
	if _, ok := q.amIdx[k]; ok {
		return
	}
	if ge, ok := q.ghostIdx[k]; ok {
		q.ghost.Remove(ge)
		delete(q.ghostIdx, k)
		q.amIdx[k] = q.am.PushFront(k)
		return
	}
	q.inIdx[k] = q.in.PushFront(k)
}

// OnGet promotes an A1in key to Am, or refreshes an Am key.
func (q *twoQ[K]) OnGet(k K) {
	if el, ok := q.inIdx[k]; ok {
		q.in.Remove(el)
		delete(q.inIdx, k)
		q.amIdx[k] = q.am.PushFront(k)
		return
	}
	if el, ok := q.amIdx[k]; ok {
		q.am.MoveToFront(el)
	}
}

// OnUpdate follows OnGet semantics (updates count as recent use).
func (q *twoQ[K]) OnUpdate(k K) { q.OnGet(k) }

// OnRemove:
//   - If the key was in A1in, remember it as a ghost, respecting capGhost.
//   - Removals from Am do not populate ghosts.
func (q *twoQ[K]) OnRemove(k K) {
	if el, ok := q.amIdx[k]; ok {
		q.am.Remove(el)
		delete(q.amIdx, k)
		return
	}
	el, ok := q.inIdx[k]
	if !ok {
		return
	}
	q.in.Remove(el)
	delete(q.inIdx, k)

	if old := q.ghostIdx[k]; old != nil {
		q.ghost.Remove(old)
	}
	q.ghostIdx[k] = q.ghost.PushFront(k)
	for q.ghost.Len() > q.capGhost {
		tail := q.ghost.Back()
		delete(q.ghostIdx, tail.Value.(K))
		q.ghost.Remove(tail)
	}
}

// Victim prefers the oldest A1in key once A1in exceeds its share (or Am is
// empty); otherwise the LRU key of Am.
func (q *twoQ[K]) Victim() (K, bool) {
	if q.in.Len() > q.capIn || q.am.Len() == 0 {
		if el := q.in.Back(); el != nil {
			return el.Value.(K), true
		}
	}
	if el := q.am.Back(); el != nil {
		return el.Value.(K), true
	}
	var zero K
	return zero, false
}

var _ policy.GetObserver[string] = (*twoQ[string])(nil)
