// Package fifo implements strict insertion-order eviction.
package fifo

import (
	"container/list"

	"github.com/IvanBrykalov/dnscache/policy"
)

// fifo evicts the oldest resident key. Overwrites do not refresh a key.
type fifo[K comparable] struct {
	order *list.List // oldest at Front()
	idx   map[K]*list.Element
}

type fifoPolicy[K comparable] struct{}

// New returns a Policy factory for FIFO eviction.
func New[K comparable]() policy.Policy[K] { return fifoPolicy[K]{} }

func (fifoPolicy[K]) New(capacity int) policy.Evictor[K] {
	return &fifo[K]{
		order: list.New(),
		idx:   make(map[K]*list.Element, capacity),
	}
}

func (p *fifo[K]) OnAdd(k K) {
	if _, ok := p.idx[k]; ok {
		return
	}
	p.idx[k] = p.order.PushBack(k)
}

// OnUpdate is a no-op: position is fixed at admission.
func (p *fifo[K]) OnUpdate(K) {}

func (p *fifo[K]) OnRemove(k K) {
	if el, ok := p.idx[k]; ok {
		p.order.Remove(el)
		delete(p.idx, k)
	}
}

func (p *fifo[K]) Victim() (K, bool) {
	if el := p.order.Front(); el != nil {
		return el.Value.(K), true
	}
	var zero K
	return zero, false
}
