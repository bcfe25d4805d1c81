package twoq

import "testing"

// OnAdd of a first-time key should admit into A1in.
func TestTwoQ_AddGoesToA1in(t *testing.T) {
	t.Parallel()

	p := New[string](2, 4).New(8).(*twoQ[string])
	p.OnAdd("a")

	if p.in.Len() != 1 {
		t.Fatalf("A1in must have 1 element, got %d", p.in.Len())
	}
	if _, ok := p.inIdx["a"]; !ok {
		t.Fatal("a must be present in A1in index")
	}
}

// When A1in exceeds its share, the victim is its oldest key.
func TestTwoQ_OverflowVictimIsOldestOfA1in(t *testing.T) {
	t.Parallel()

	p := New[string](2, 4).New(8).(*twoQ[string])
	p.OnAdd("m")
	p.OnGet("m") // m -> Am
	p.OnAdd("a")
	p.OnAdd("b")
	p.OnAdd("c") // A1in: [c, b, a] > capIn

	if k, ok := p.Victim(); !ok || k != "a" {
		t.Fatalf("expected victim a (oldest of A1in), got %q ok=%v", k, ok)
	}
}

// Within its share, A1in is protected and Am's LRU goes first.
func TestTwoQ_VictimFromAmWhenA1inWithinShare(t *testing.T) {
	t.Parallel()

	p := New[string](2, 4).New(8).(*twoQ[string])
	p.OnAdd("x")
	p.OnAdd("y")
	p.OnGet("x")
	p.OnGet("y") // Am: [y, x]
	p.OnAdd("a") // A1in: [a]

	if k, ok := p.Victim(); !ok || k != "x" {
		t.Fatalf("expected victim x (LRU of Am), got %q ok=%v", k, ok)
	}
}

// Removing a key from A1in should place it into ghosts (A1out).
func TestTwoQ_OnRemoveFromA1inGoesToGhost(t *testing.T) {
	t.Parallel()

	p := New[string](2, 2).New(8).(*twoQ[string])
	p.OnAdd("a")
	p.OnRemove("a")

	if _, ok := p.inIdx["a"]; ok {
		t.Fatal("a must be removed from A1in")
	}
	if _, ok := p.ghostIdx["a"]; !ok {
		t.Fatal("key 'a' must be in ghost (A1out)")
	}
}

// Ghost capacity is enforced by dropping the oldest ghosts.
func TestTwoQ_GhostCapacity(t *testing.T) {
	t.Parallel()

	p := New[string](4, 2).New(8).(*twoQ[string])
	for _, k := range []string{"a", "b", "c"} {
		p.OnAdd(k)
		p.OnRemove(k)
	}
	if p.ghost.Len() != 2 {
		t.Fatalf("ghost len want 2, got %d", p.ghost.Len())
	}
	if _, ok := p.ghostIdx["a"]; ok {
		t.Fatal("oldest ghost 'a' must be dropped")
	}
}

// Re-admitting a ghost key should bypass A1in and go to Am.
func TestTwoQ_AddFromGhostGoesToAm(t *testing.T) {
	t.Parallel()

	p := New[string](1, 2).New(8).(*twoQ[string])
	p.OnAdd("a")
	p.OnRemove("a")
	p.OnAdd("a")

	if _, ok := p.inIdx["a"]; ok {
		t.Fatal("a must NOT be in A1in (should go to Am)")
	}
	if _, ok := p.amIdx["a"]; !ok {
		t.Fatal("a must be in Am")
	}
	if _, ok := p.ghostIdx["a"]; ok {
		t.Fatal("ghost entry must be consumed on re-admission")
	}
}

// Zero sizes are derived from capacity and clamped to at least one.
func TestTwoQ_DerivedSizes(t *testing.T) {
	t.Parallel()

	p := New[string](0, 0).New(17).(*twoQ[string])
	if p.capIn != 4 || p.capGhost != 8 {
		t.Fatalf("derived sizes want (4, 8), got (%d, %d)", p.capIn, p.capGhost)
	}
	small := New[string](0, 0).New(1).(*twoQ[string])
	if small.capIn != 1 || small.capGhost != 1 {
		t.Fatalf("clamped sizes want (1, 1), got (%d, %d)", small.capIn, small.capGhost)
	}
}
