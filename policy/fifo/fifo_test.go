package fifo

import "testing"

// Victims come out in admission order; overwrites do not reorder.
func TestFIFO_Order(t *testing.T) {
	t.Parallel()

	p := New[string]().New(4)
	p.OnAdd("a")
	p.OnAdd("b")
	p.OnAdd("c")
	p.OnUpdate("a")

	for _, want := range []string{"a", "b", "c"} {
		k, ok := p.Victim()
		if !ok || k != want {
			t.Fatalf("victim want %q, got %q ok=%v", want, k, ok)
		}
		p.OnRemove(k)
	}
	if _, ok := p.Victim(); ok {
		t.Fatal("empty FIFO must not return a victim")
	}
}

// Duplicate admissions and unknown removals are ignored.
func TestFIFO_IdempotentBookkeeping(t *testing.T) {
	t.Parallel()

	p := New[string]().New(4).(*fifo[string])
	p.OnAdd("a")
	p.OnAdd("a")
	p.OnRemove("zzz")

	if p.order.Len() != 1 || len(p.idx) != 1 {
		t.Fatalf("want one tracked key, list=%d idx=%d", p.order.Len(), len(p.idx))
	}
}
