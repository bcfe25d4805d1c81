package cache

import (
	"strings"
	"testing"
)

// Fuzz Update/Resolve semantics under arbitrary string inputs.
// Guards against panics and ensures core invariants hold.
func FuzzCache_UpdateResolve(f *testing.F) {
	f.Add("", "")
	f.Add("localhost", "127.0.0.1")
	f.Add("example.org", "93.184.216.34")
	f.Add("ünïcödé.example", "::1")
	f.Add("long", strings.Repeat("x", 1024))

	f.Fuzz(func(t *testing.T, k, v string) {
		// Cap lengths to keep memory bounded during fuzzing.
		const limit = 1 << 12
		if len(k) > limit {
			k = k[:limit]
		}
		if len(v) > limit {
			v = v[:limit]
		}

		c := New(Options{Capacity: 2, Shards: 3})

		c.Update(k, v)
		if got, ok := c.Lookup(k); !ok || got != v {
			t.Fatalf("after Update: want %q, got %q ok=%v", v, got, ok)
		}

		// Overwrite keeps a single entry.
		c.Update(k, v+"*")
		if got := c.Resolve(k); got != v+"*" {
			t.Fatalf("after overwrite: want %q, got %q", v+"*", got)
		}
		if c.Len() != 1 {
			t.Fatalf("overwrite must not grow: Len=%d", c.Len())
		}

		// Two more distinct keys push k out under FIFO.
		c.Update(k+"#1", "a")
		c.Update(k+"#2", "b")
		if _, ok := c.Lookup(k); ok {
			t.Fatalf("oldest key must be evicted")
		}
		if c.Len() != 2 {
			t.Fatalf("Len want 2, got %d", c.Len())
		}
	})
}
