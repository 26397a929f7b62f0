package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/translatable"
)

// Ensure LoggingExtractionService implements translatable.ExtractionService.
var _ translatable.ExtractionService = (*LoggingExtractionService)(nil)

// LoggingExtractionService wraps an ExtractionService with debug logging.
type LoggingExtractionService struct {
	next   translatable.ExtractionService
	logger *slog.Logger
}

// NewLoggingExtractionService creates a new LoggingExtractionService.
func NewLoggingExtractionService(next translatable.ExtractionService, logger *slog.Logger) *LoggingExtractionService {
	return &LoggingExtractionService{next: next, logger: logger}
}

func (s *LoggingExtractionService) CreateExtraction(ctx context.Context, e *translatable.Extraction) (err error) {
	defer func(begin time.Time) {
		s.logger.DebugContext(ctx, "create extraction",
			"source", e.Source,
			"items", len(e.Items),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateExtraction(ctx, e)
}

// FindExtraction logs lookups; ENOTFOUND is reported as a miss, not an error.
func (s *LoggingExtractionService) FindExtraction(ctx context.Context, key, contentHash string) (e *translatable.Extraction, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"hash", contentHash,
			"hit", err == nil,
			"duration", time.Since(begin),
		}
		if err != nil && translatable.ErrorCode(err) != translatable.ENOTFOUND {
			attrs = append(attrs, "err", err)
		}
		s.logger.DebugContext(ctx, "find extraction", attrs...)
	}(time.Now())
	return s.next.FindExtraction(ctx, key, contentHash)
}

func (s *LoggingExtractionService) DeleteExtractions(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		s.logger.InfoContext(ctx, "delete extractions",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteExtractions(ctx)
}
