// Package util contains internal helpers (hashing, sharding, padding).
//revive:disable:var-naming  // allow 'util' as an internal helpers package name
package util

import "github.com/cespare/xxhash/v2"

// XXHash hashes a key with 64-bit xxHash. It is the default shard hasher:
// it does not allocate for string input and spreads short hostnames well.
func XXHash(key string) uint64 { return xxhash.Sum64String(key) }

const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211
)

// Fnv64a hashes a key using 64-bit FNV-1a.
// Iterating the string directly avoids the []byte conversion.
func Fnv64a(key string) uint64 {
	h := uint64(fnvOffset64)
	for i := 0; i < len(key); i++ {
		h ^= uint64(key[i])
		h *= fnvPrime64
	}
	return h
}
