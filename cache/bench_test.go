package cache

import (
	"math/rand"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/IvanBrykalov/dnscache/policy/lru"
)

// benchmarkMix exercises a read/write mix against a warm cache.
// RunParallel spawns GOMAXPROCS goroutines.
func benchmarkMix(b *testing.B, opt Options, readsPct int) {
	c := New(opt)

	// Preload the full capacity.
	for i := 0; i < c.Capacity(); i++ {
		c.Update("host-"+strconv.Itoa(i), "10.0.0.1")
	}

	b.ReportAllocs()
	b.ResetTimer()

	var seed int64 = 1
	keys := 2 * c.Capacity()

	b.RunParallel(func(pb *testing.PB) {
		r := rand.New(rand.NewSource(atomic.AddInt64(&seed, 1)))
		for pb.Next() {
			k := "host-" + strconv.Itoa(r.Intn(keys))
			if r.Intn(100) < readsPct {
				c.Resolve(k)
			} else {
				c.Update(k, "10.0.0.2")
			}
		}
	})
}

func BenchmarkCache_Default_90r10w(b *testing.B) { benchmarkMix(b, Options{}, 90) }
func BenchmarkCache_Default_50r50w(b *testing.B) { benchmarkMix(b, Options{}, 50) }

func BenchmarkCache_Wide_90r10w(b *testing.B) {
	benchmarkMix(b, Options{Shards: 127, Capacity: 127 * 4}, 90)
}

func BenchmarkCache_WideLRU_90r10w(b *testing.B) {
	benchmarkMix(b, Options{Shards: 127, Capacity: 127 * 4, Policy: lru.New[string]()}, 90)
}
