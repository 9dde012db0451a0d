// Package resolve implements the name-resolution core: a TTL-bounded cache
// from display names to stable identifiers, a resolver that consults the
// cache before the remote directory, and the precedence chain that decides
// which name an invocation resolves.
package resolve

import (
	"sync"
	"sync/atomic"
	"time"
)

// entry is stored by value so an expired read can remove exactly the entry
// it observed with CompareAndDelete, never a concurrently written fresh one.
type entry struct {
	value     string
	expiresAt time.Time
}

// Cache maps keys to string identifiers with a uniform TTL fixed at
// construction. It is safe for arbitrary concurrent Get/Put/Clear; the
// backing sync.Map keeps contention per key rather than behind one mutex.
// Expired entries are evicted lazily on the read that observes them; there
// is no background sweeper.
type Cache[K comparable] struct {
	ttl     time.Duration
	entries sync.Map // K -> entry
	hits    atomic.Uint64
	misses  atomic.Uint64
}

// NewCache creates an empty cache whose entries live for ttl after each Put.
func NewCache[K comparable](ttl time.Duration) *Cache[K] {
	return &Cache[K]{ttl: ttl}
}

// Get returns the cached identifier for key if an entry exists and is still
// valid (now < expiry). An expired entry is removed as a side effect of the
// read, so a stale value is never returned. Misses are not errors.
func (c *Cache[K]) Get(key K) (string, bool) {
	v, ok := c.entries.Load(key)
	if !ok {
		c.misses.Add(1)
		return "", false
	}
	e := v.(entry)
	if !time.Now().Before(e.expiresAt) {
		c.entries.CompareAndDelete(key, v)
		c.misses.Add(1)
		return "", false
	}
	c.hits.Add(1)
	return e.value, true
}

// Put unconditionally overwrites the entry for key with a fresh expiry of
// now + TTL. Last writer wins on race.
func (c *Cache[K]) Put(key K, value string) {
	c.entries.Store(key, entry{value: value, expiresAt: time.Now().Add(c.ttl)})
}

// Clear drops all entries regardless of expiry. Hit and miss counters are
// preserved; they describe the session, not the current contents.
func (c *Cache[K]) Clear() {
	c.entries.Clear()
}

// Len reports current occupancy, counting entries that have expired but not
// yet been read.
func (c *Cache[K]) Len() int {
	n := 0
	c.entries.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Stats is a point-in-time snapshot of cache occupancy and effectiveness.
type Stats struct {
	Entries int
	Hits    uint64
	Misses  uint64
}

// Stats returns the current occupancy together with session hit/miss counts.
func (c *Cache[K]) Stats() Stats {
	return Stats{
		Entries: c.Len(),
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
	}
}
