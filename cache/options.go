package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/IvanBrykalov/dnscache/internal/util"
	"github.com/IvanBrykalov/dnscache/policy"
)

const (
	// DefaultShards is the shard count used when Options.Shards <= 0.
	DefaultShards = util.DefaultShards
	// DefaultCapacity is the entry limit used when Options.Capacity <= 0.
	DefaultCapacity = DefaultShards
)

// Metrics exposes cache-level observability hooks.
// A NoopMetrics implementation is provided and used by default.
type Metrics interface {
	Hit()
	Miss()
	Evict()
	Size(entries int)
	// Load reports a Loader call made by ResolveOrLoad.
	Load(d time.Duration, err error)
}

// Options configures the cache. Zero values are safe;
// defaults are applied in New():
//   - Shards <= 0   => DefaultShards (17)
//   - Capacity <= 0 => DefaultCapacity (17)
//   - nil Policy    => FIFO
//   - nil Hash      => HashXX
//   - nil Metrics   => NoopMetrics
//   - nil Logger    => discard
type Options struct {
	// Shards is the fixed number of independently locked partitions.
	Shards int

	// Capacity is the maximum number of resident entries across all shards.
	Capacity int

	// Policy chooses which key to evict when a new key arrives at capacity.
	Policy policy.Policy[string]

	// Hash maps a key to a 64-bit value; the shard is hash mod Shards.
	Hash func(string) uint64

	// Loader produces a value on miss. Used by ResolveOrLoad only.
	Loader func(ctx context.Context, key string) (string, error)

	// OnEvict is called for every evicted entry while the bookkeeping lock is
	// held; keep it lightweight and never call back into the cache.
	OnEvict func(key, value string)

	Metrics Metrics
	Logger  *slog.Logger
}

// HashXX is the default key hasher (64-bit xxHash).
func HashXX(key string) uint64 { return util.XXHash(key) }

// HashFNV hashes keys with 64-bit FNV-1a.
func HashFNV(key string) uint64 { return util.Fnv64a(key) }
