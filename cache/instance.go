package cache

import "sync"

var instance = sync.OnceValue(func() *Cache { return New(Options{}) })

// Instance returns the process-wide cache, constructing it with default
// Options (17 shards, capacity 17, FIFO eviction) on first use. Concurrent
// first calls block until the single construction finishes. The cache lives
// for the rest of the process.
func Instance() *Cache { return instance() }
