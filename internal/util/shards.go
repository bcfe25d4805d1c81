package util

// DefaultShards is the shard count used when none is configured.
// A prime keeps the modulo spread even for hashes with weak low bits.
const DefaultShards = 17

// ShardIndex maps a 64-bit hash to a shard index.
// Shard counts are usually not powers of two here (17 by default), so the
// modulo path is the common one; the mask path is kept for power-of-two tables.
func ShardIndex(hash uint64, shards int) int {
	if shards <= 1 {
		return 0
	}
	if IsPowerOfTwo(uint64(shards)) {
		return int(hash & uint64(shards-1))
	}
	return int(hash % uint64(shards))
}
