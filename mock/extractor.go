package mock

import "github.com/fwojciec/translatable"

// Compile-time interface verification.
var (
	_ translatable.Extractor      = (*Extractor)(nil)
	_ translatable.Walker         = (*Walker)(nil)
	_ translatable.ContentLocator = (*ContentLocator)(nil)
)

// Extractor is a mock implementation of translatable.Extractor.
type Extractor struct {
	ExtractFn    func(root translatable.Node, opts translatable.Options) []translatable.Item
	ClearCacheFn func()
	CacheStatsFn func() translatable.CacheStats
}

func (e *Extractor) Extract(root translatable.Node, opts translatable.Options) []translatable.Item {
	return e.ExtractFn(root, opts)
}

func (e *Extractor) ClearCache() {
	e.ClearCacheFn()
}

func (e *Extractor) CacheStats() translatable.CacheStats {
	return e.CacheStatsFn()
}

// Walker is a mock implementation of translatable.Walker.
type Walker struct {
	WalkFn func(root translatable.Node, opts translatable.Options) translatable.WalkResult
}

func (w *Walker) Walk(root translatable.Node, opts translatable.Options) translatable.WalkResult {
	return w.WalkFn(root, opts)
}

// ContentLocator is a mock implementation of translatable.ContentLocator.
type ContentLocator struct {
	LocateFn func(rawHTML string) (translatable.Node, error)
}

func (l *ContentLocator) Locate(rawHTML string) (translatable.Node, error) {
	return l.LocateFn(rawHTML)
}
