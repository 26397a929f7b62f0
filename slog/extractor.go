// Package slog provides logging decorators for translatable services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/translatable"
)

// Ensure LoggingExtractor implements translatable.Extractor.
var _ translatable.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor and logs each extraction with the
// cache counters it moved.
type LoggingExtractor struct {
	next   translatable.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next translatable.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the item count and
// whether the result came from the cache.
func (e *LoggingExtractor) Extract(root translatable.Node, opts translatable.Options) (items []translatable.Item) {
	before := e.next.CacheStats()
	defer func(begin time.Time) {
		after := e.next.CacheStats()
		e.logger.Debug("extract",
			"root", identity(root),
			"strategy", string(opts.Strategy),
			"items", len(items),
			"cached", after.Hits > before.Hits,
			"visited", after.ProcessedNodes-before.ProcessedNodes,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.Extract(root, opts)
}

// ClearCache delegates to the wrapped extractor and logs the dropped entries.
func (e *LoggingExtractor) ClearCache() {
	entries := e.next.CacheStats().Entries
	e.next.ClearCache()
	e.logger.Debug("clear cache", "entries", entries)
}

// CacheStats delegates to the wrapped extractor.
func (e *LoggingExtractor) CacheStats() translatable.CacheStats {
	return e.next.CacheStats()
}

func identity(root translatable.Node) string {
	if root == nil {
		return "(nil)"
	}
	if hint := root.IdentityHint(); hint != "" {
		return hint
	}
	return "(anonymous)"
}
