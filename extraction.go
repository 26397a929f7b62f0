package translatable

import (
	"context"
	"time"
)

// Extraction is a persisted extraction result for one source document.
type Extraction struct {
	ID          string    `json:"id"`
	Key         string    `json:"key"`
	ContentHash string    `json:"contentHash"`
	Source      string    `json:"source"`
	Items       []Item    `json:"items"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the extraction contains invalid fields.
func (e *Extraction) Validate() error {
	if e.Key == "" {
		return Errorf(EINVALID, "extraction key required")
	}
	if e.ContentHash == "" {
		return Errorf(EINVALID, "extraction content hash required")
	}
	return nil
}

// ExtractionService persists extraction results across sessions.
// Unlike the in-memory cache, entries are looked up by content hash as well
// as key, so a changed document never returns a stale result.
type ExtractionService interface {
	// CreateExtraction stores an extraction, replacing any previous one
	// with the same key and content hash.
	CreateExtraction(ctx context.Context, e *Extraction) error

	// FindExtraction retrieves the extraction for key and content hash.
	// Returns ENOTFOUND if none exists.
	FindExtraction(ctx context.Context, key, contentHash string) (*Extraction, error)

	// DeleteExtractions removes all stored extractions.
	DeleteExtractions(ctx context.Context) error
}
