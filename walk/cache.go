package walk

import "github.com/fwojciec/translatable"

// Cache memoizes extraction results by translatable.CacheKey.
//
// The cache has no eviction and no invalidation: entries live until Clear
// is called. It is not safe for concurrent use.
type Cache struct {
	entries map[string][]translatable.Item

	hits      int
	misses    int
	processed int
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string][]translatable.Item)}
}

// GetOrCompute returns the cached items for root and opts, calling compute
// and storing its items on a miss. When opts.EnableCache is false the
// store is neither read nor written and compute is always called.
// Returned slices are copies; callers may modify them freely.
func (c *Cache) GetOrCompute(root translatable.Node, opts translatable.Options, compute func() translatable.WalkResult) []translatable.Item {
	if !opts.EnableCache {
		return compute().Items
	}

	key := translatable.CacheKey(root, opts)
	if items, ok := c.entries[key]; ok {
		c.hits++
		return translatable.CloneItems(items)
	}

	c.misses++
	result := compute()
	c.processed += result.Visited
	c.entries[key] = translatable.CloneItems(result.Items)
	return result.Items
}

// Clear drops all entries and resets the counters.
func (c *Cache) Clear() {
	c.entries = make(map[string][]translatable.Item)
	c.hits = 0
	c.misses = 0
	c.processed = 0
}

// Stats reports the entry count and counters.
func (c *Cache) Stats() translatable.CacheStats {
	return translatable.CacheStats{
		Entries:        len(c.entries),
		Hits:           c.hits,
		Misses:         c.misses,
		ProcessedNodes: c.processed,
	}
}
