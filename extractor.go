package translatable

// CacheStats reports the state of an extraction cache.
type CacheStats struct {
	Entries int `json:"entries"`
	Hits    int `json:"hits"`
	Misses  int `json:"misses"`

	// ProcessedNodes counts nodes visited by computations that went through
	// the cache. It is diagnostic only.
	ProcessedNodes int `json:"processedNodes"`
}

// Extractor extracts translatable content from a tree.
//
// Implementations are synchronous and not safe for concurrent use; callers
// serialize access and keep the tree stable for the duration of a call.
type Extractor interface {
	// Extract returns the translatable items under root in visitation
	// order. A nil root yields an empty result.
	Extract(root Node, opts Options) []Item

	// ClearCache drops all memoized results. Callers must clear the cache
	// when the underlying tree changes.
	ClearCache()

	// CacheStats reports cache entry counts and diagnostics.
	CacheStats() CacheStats
}

// ContentLocator finds the main content of an HTML page, dropping
// boilerplate such as navigation, footers and sidebars.
type ContentLocator interface {
	// Locate parses raw HTML and returns the root of its main content.
	Locate(rawHTML string) (Node, error)
}

// WalkResult is the outcome of one uncached traversal.
type WalkResult struct {
	Items []Item

	// Visited is the number of nodes taken off the work queue within the
	// depth bound, including nodes that were then skipped.
	Visited int
}

// Walker performs a single traversal of a tree without caching.
type Walker interface {
	Walk(root Node, opts Options) WalkResult
}
