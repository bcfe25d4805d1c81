package cache

// Handle is the contract consumed by callers sitting in front of a name
// resolver. Pass a Handle explicitly where possible; Instance exists for code
// that cannot be wired that way.
type Handle interface {
	// Resolve returns the cached value for key, or "" if absent.
	// It never blocks beyond shard lock contention and never fails.
	Resolve(key string) string

	// Update inserts or overwrites key→value, evicting if needed.
	Update(key, value string)
}

var _ Handle = (*Cache)(nil)
