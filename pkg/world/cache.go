package world

import (
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

type cacheKey struct {
	window Window
	res    Resolution
}

func (k cacheKey) String() string {
	return fmt.Sprintf("%d:%d:%d:%d:%d", k.res, k.window.X, k.window.Z, k.window.Width, k.window.Depth)
}

// CacheStats is a snapshot of cache counters.
type CacheStats struct {
	Hits    uint64
	Misses  uint64
	Entries int
}

// Cache memoises region samples by window and resolution. It is bounded by
// an LRU policy; concurrent misses on the same key are collapsed so each
// sample is computed once and only complete samples are ever stored.
//
// Eviction changes how long a query takes, never what it returns. A cache
// owned by a generator only accepts samples that generator computed.
type Cache struct {
	entries *lru.Cache[cacheKey, *RegionSample] // nil when caching is disabled
	owner   *Generator
	flight  singleflight.Group
	hits    atomic.Uint64
	misses  atomic.Uint64
}

// NewCache creates a cache holding up to capacity samples. A capacity of
// zero or less disables caching; every query is then computed.
func NewCache(capacity int) *Cache {
	c := &Cache{}
	if capacity > 0 {
		// lru.New only fails for non-positive sizes.
		c.entries, _ = lru.New[cacheKey, *RegionSample](capacity)
	}
	return c
}

// Get returns the sample computed for window w at resolution res.
func (c *Cache) Get(w Window, res Resolution) (*RegionSample, bool) {
	if c.entries == nil {
		c.misses.Add(1)
		return nil, false
	}
	s, ok := c.entries.Get(cacheKey{window: w, res: res})
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return s, ok
}

// Put stores s under the window and resolution it was computed for. It
// reports false, storing nothing, when caching is disabled or s was
// computed by another generator.
func (c *Cache) Put(s *RegionSample) bool {
	if c.entries == nil || s == nil || s.owner != c.owner {
		return false
	}
	c.entries.Add(cacheKey{window: s.window, res: s.res}, s)
	return true
}

func (c *Cache) getOrCompute(w Window, res Resolution, compute func() *RegionSample) *RegionSample {
	if s, ok := c.Get(w, res); ok {
		return s
	}
	if c.entries == nil {
		return compute()
	}
	key := cacheKey{window: w, res: res}
	v, _, _ := c.flight.Do(key.String(), func() (interface{}, error) {
		// A flight for this key may have finished between Get and Do.
		if s, ok := c.entries.Peek(key); ok {
			return s, nil
		}
		s := compute()
		c.entries.Add(key, s)
		return s, nil
	})
	return v.(*RegionSample)
}

// Cleanup evicts every entry and returns how many were dropped. The caller
// must make sure no query runs concurrently, typically by calling it
// between generation passes.
func (c *Cache) Cleanup() int {
	if c.entries == nil {
		return 0
	}
	n := c.entries.Len()
	c.entries.Purge()
	return n
}

// Len returns the number of cached samples.
func (c *Cache) Len() int {
	if c.entries == nil {
		return 0
	}
	return c.entries.Len()
}

// Stats returns the hit and miss counters and the current entry count.
func (c *Cache) Stats() CacheStats {
	return CacheStats{Hits: c.hits.Load(), Misses: c.misses.Load(), Entries: c.Len()}
}
