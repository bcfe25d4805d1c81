// Package lru implements the LRU eviction policy.
package lru

import (
	"container/list"

	"github.com/IvanBrykalov/dnscache/policy"
)

// lru is a classic "move-to-front" Least-Recently-Used policy.
// Reads and overwrites both count as use.
type lru[K comparable] struct {
	ll  *list.List // MRU at Front(), LRU at Back()
	idx map[K]*list.Element
}

type lruPolicy[K comparable] struct{}

// New returns a Policy factory that constructs LRU evictors.
func New[K comparable]() policy.Policy[K] { return lruPolicy[K]{} }

// New implements policy.Policy.
func (lruPolicy[K]) New(capacity int) policy.Evictor[K] {
	return &lru[K]{ll: list.New(), idx: make(map[K]*list.Element, capacity)}
}

// OnAdd places the new key at MRU.
func (p *lru[K]) OnAdd(k K) {
	if el, ok := p.idx[k]; ok {
		p.ll.MoveToFront(el)
		return
	}
	p.idx[k] = p.ll.PushFront(k)
}

// OnGet promotes the key to MRU.
func (p *lru[K]) OnGet(k K) { p.touch(k) }

// OnUpdate promotes the key to MRU (updates are treated as recent use).
func (p *lru[K]) OnUpdate(k K) { p.touch(k) }

func (p *lru[K]) OnRemove(k K) {
	if el, ok := p.idx[k]; ok {
		p.ll.Remove(el)
		delete(p.idx, k)
	}
}

// Victim returns the least recently used key.
func (p *lru[K]) Victim() (K, bool) {
	if el := p.ll.Back(); el != nil {
		return el.Value.(K), true
	}
	var zero K
	return zero, false
}

func (p *lru[K]) touch(k K) {
	if el, ok := p.idx[k]; ok {
		p.ll.MoveToFront(el)
	}
}

var _ policy.GetObserver[string] = (*lru[string])(nil)
