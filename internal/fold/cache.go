package fold

import (
	"sync"
	"sync/atomic"
)

// Source is the buffer surface the cache reads: a snapshot of the
// lines and a monotonically increasing revision counter bumped on
// every content mutation. *buffer.Buffer satisfies it.
type Source interface {
	Revision() uint64
	Lines() []string
}

// Cache memoizes a whole-buffer fold scan keyed on the source's
// revision. Queries in steady state are a slice index under a read
// lock; when the revision moves, the entire scan is recomputed, never
// patched incrementally. One Cache is owned per buffer and passed by
// reference to whoever answers fold queries.
type Cache struct {
	mu       sync.RWMutex
	src      Source
	revision uint64
	infos    []Info
	valid    bool

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewCache creates a cache over the given source. The first query
// populates it.
func NewCache(src Source) *Cache {
	return &Cache{src: src}
}

// Level returns the fold info for line n, rescanning first if the
// source's revision has moved. Returns ok=false for out-of-range n.
func (c *Cache) Level(n int) (Info, bool) {
	infos := c.snapshot()
	if n < 0 || n >= len(infos) {
		return Info{}, false
	}
	return infos[n], true
}

// Infos returns the fold info for every line. The returned slice is
// the cache's own; callers must not modify it.
func (c *Cache) Infos() []Info {
	return c.snapshot()
}

// snapshot returns the current scan, recomputing when stale.
func (c *Cache) snapshot() []Info {
	rev := c.src.Revision()

	c.mu.RLock()
	if c.valid && c.revision == rev {
		infos := c.infos
		c.mu.RUnlock()
		c.hits.Add(1)
		return infos
	}
	c.mu.RUnlock()

	c.misses.Add(1)

	// Scan outside the lock; the source hands out an independent copy
	// of its lines.
	lines := c.src.Lines()
	infos := Scan(lines)

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another caller may have rescanned at a newer revision meanwhile;
	// only keep this scan if it is not older than what is stored.
	if !c.valid || rev >= c.revision {
		c.revision = rev
		c.infos = infos
		c.valid = true
	}
	return infos
}

// Invalidate drops the cached scan regardless of revision. The next
// query recomputes.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.valid = false
	c.infos = nil
}

// Stats returns hit/miss counters for the cache.
func (c *Cache) Stats() CacheStats {
	hits := c.hits.Load()
	misses := c.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return CacheStats{Hits: hits, Misses: misses, HitRate: hitRate}
}

// CacheStats holds cache statistics.
type CacheStats struct {
	Hits    uint64
	Misses  uint64
	HitRate float64
}
