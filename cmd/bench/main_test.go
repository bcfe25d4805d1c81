package main

import "testing"

func TestPolicyByName(t *testing.T) {
	for _, name := range []string{"fifo", "lru", "2q", "cursor"} {
		if p, err := policyByName(name); err != nil || p == nil {
			t.Fatalf("%s: p=%v err=%v", name, p, err)
		}
	}
	if _, err := policyByName("random"); err == nil {
		t.Fatal("unknown policy must fail")
	}
}

func TestAddrFor(t *testing.T) {
	if got := addrFor(0x010203); got != "10.1.2.3" {
		t.Fatalf("addrFor want 10.1.2.3, got %s", got)
	}
}
