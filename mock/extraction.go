package mock

import (
	"context"

	"github.com/fwojciec/translatable"
)

var _ translatable.ExtractionService = (*ExtractionService)(nil)

// ExtractionService is a mock implementation of translatable.ExtractionService.
type ExtractionService struct {
	CreateExtractionFn  func(ctx context.Context, e *translatable.Extraction) error
	FindExtractionFn    func(ctx context.Context, key, contentHash string) (*translatable.Extraction, error)
	DeleteExtractionsFn func(ctx context.Context) error
}

func (s *ExtractionService) CreateExtraction(ctx context.Context, e *translatable.Extraction) error {
	return s.CreateExtractionFn(ctx, e)
}

func (s *ExtractionService) FindExtraction(ctx context.Context, key, contentHash string) (*translatable.Extraction, error) {
	return s.FindExtractionFn(ctx, key, contentHash)
}

func (s *ExtractionService) DeleteExtractions(ctx context.Context) error {
	return s.DeleteExtractionsFn(ctx)
}
