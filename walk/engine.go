package walk

import "github.com/fwojciec/translatable"

// Ensure Engine implements translatable.Extractor at compile time.
var _ translatable.Extractor = (*Engine)(nil)

// Engine extracts translatable content through a session-scoped cache.
// It is synchronous and not safe for concurrent use.
type Engine struct {
	// Walker performs uncached traversals. Defaults to a *Walker.
	Walker translatable.Walker

	cache *Cache
}

// NewEngine creates an Engine with the default Walker and an empty cache.
func NewEngine() *Engine {
	return &Engine{
		Walker: NewWalker(),
		cache:  NewCache(),
	}
}

// Extract returns the translatable items under root. A nil root yields an
// empty, non-nil slice.
func (e *Engine) Extract(root translatable.Node, opts translatable.Options) []translatable.Item {
	if root == nil {
		return []translatable.Item{}
	}
	return e.cache.GetOrCompute(root, opts, func() translatable.WalkResult {
		return e.Walker.Walk(root, opts)
	})
}

// ExtractDefault extracts with translatable.DefaultOptions.
func (e *Engine) ExtractDefault(root translatable.Node) []translatable.Item {
	return e.Extract(root, translatable.DefaultOptions())
}

// ClearCache drops all memoized results.
func (e *Engine) ClearCache() {
	e.cache.Clear()
}

// CacheStats reports the cache state.
func (e *Engine) CacheStats() translatable.CacheStats {
	return e.cache.Stats()
}
