package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fwojciec/translatable"
	"github.com/fwojciec/translatable/bloom"
	"github.com/google/uuid"
)

// Bloom filter sizing for known extraction keys.
const (
	filterCapacity = 100_000
	filterFPRate   = 0.01
)

// Compile-time interface verification.
var _ translatable.ExtractionService = (*ExtractionService)(nil)

// ExtractionService implements translatable.ExtractionService using SQLite.
//
// Known (key, content hash) pairs are mirrored in a Bloom filter loaded on
// first use, so lookups for unseen documents return ENOTFOUND without a
// query.
type ExtractionService struct {
	db     *DB
	filter *bloom.Filter

	loadMu  sync.Mutex
	loaded  bool
	loadErr error
}

// NewExtractionService creates a new ExtractionService.
func NewExtractionService(db *DB) *ExtractionService {
	return &ExtractionService{
		db:     db,
		filter: bloom.NewFilter(filterCapacity, filterFPRate),
	}
}

// CreateExtraction stores e, replacing any row with the same key and
// content hash. ID and CreatedAt are assigned.
func (s *ExtractionService) CreateExtraction(ctx context.Context, e *translatable.Extraction) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if err := s.load(ctx); err != nil {
		return err
	}

	items := e.Items
	if items == nil {
		items = []translatable.Item{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode items: %w", err)
	}

	e.ID = uuid.New().String()
	e.CreatedAt = time.Now().UTC()

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO extractions (id, key, content_hash, source, items, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (key, content_hash) DO UPDATE SET
			id = excluded.id,
			source = excluded.source,
			items = excluded.items,
			created_at = excluded.created_at
	`, e.ID, e.Key, e.ContentHash, e.Source, string(data), e.CreatedAt.Format(time.RFC3339Nano)); err != nil {
		return err
	}

	s.filter.Add(bloom.Key(e.Key, e.ContentHash))
	return nil
}

// FindExtraction retrieves the extraction stored for key and contentHash.
func (s *ExtractionService) FindExtraction(ctx context.Context, key, contentHash string) (*translatable.Extraction, error) {
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	if !s.filter.MayContain(bloom.Key(key, contentHash)) {
		return nil, translatable.Errorf(translatable.ENOTFOUND, "extraction not found")
	}

	var e translatable.Extraction
	var items, createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, key, content_hash, source, items, created_at
		FROM extractions
		WHERE key = ? AND content_hash = ?
	`, key, contentHash).Scan(&e.ID, &e.Key, &e.ContentHash, &e.Source, &items, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, translatable.Errorf(translatable.ENOTFOUND, "extraction not found")
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(items), &e.Items); err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}
	if e.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}

	return &e, nil
}

// DeleteExtractions removes all stored extractions.
func (s *ExtractionService) DeleteExtractions(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM extractions`); err != nil {
		return err
	}
	s.filter.Reset()
	return nil
}

// load seeds the filter with every stored pair. A successful load or a
// database failure is remembered; a load interrupted by its context is
// retried on the next call.
func (s *ExtractionService) load(ctx context.Context) error {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	if s.loaded {
		return s.loadErr
	}

	err := s.seed(ctx)
	if err != nil && (ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
		return err
	}
	s.loaded, s.loadErr = true, err
	return err
}

func (s *ExtractionService) seed(ctx context.Context) error {
	rows, err := s.db.QueryContext(ctx, `SELECT key, content_hash FROM extractions`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var key, hash string
		if err := rows.Scan(&key, &hash); err != nil {
			return err
		}
		s.filter.Add(bloom.Key(key, hash))
	}
	return rows.Err()
}
