package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fwojciec/translatable"
	"github.com/fwojciec/translatable/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleExtraction(key, content string) *translatable.Extraction {
	return &translatable.Extraction{
		Key:         key,
		ContentHash: sqlite.HashContent(content),
		Source:      "https://example.com/",
		Items: []translatable.Item{
			{Type: translatable.ItemText, Path: translatable.Path{0, 1}, Content: "Hello", Depth: 2},
			{Type: translatable.ItemAttribute, Attribute: "alt", Path: translatable.Path{}, Content: "Logo"},
		},
	}
}

func TestExtractionService_CreateExtraction(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID and timestamp", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewExtractionService(setupTestDB(t))
		e := sampleExtraction("main-{}", "<p>Hello</p>")

		require.NoError(t, svc.CreateExtraction(context.Background(), e))

		assert.NotEmpty(t, e.ID)
		assert.False(t, e.CreatedAt.IsZero())
	})

	t.Run("returns EINVALID for missing key", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewExtractionService(setupTestDB(t))
		e := sampleExtraction("", "<p>Hello</p>")

		err := svc.CreateExtraction(context.Background(), e)

		require.Error(t, err)
		assert.Equal(t, translatable.EINVALID, translatable.ErrorCode(err))
	})

	t.Run("replaces extraction with the same key and hash", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewExtractionService(db)
		ctx := context.Background()

		first := sampleExtraction("main-{}", "<p>Hello</p>")
		require.NoError(t, svc.CreateExtraction(ctx, first))

		second := sampleExtraction("main-{}", "<p>Hello</p>")
		second.Items = second.Items[:1]
		require.NoError(t, svc.CreateExtraction(ctx, second))

		var count int
		require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM extractions").Scan(&count))
		assert.Equal(t, 1, count)

		found, err := svc.FindExtraction(ctx, "main-{}", second.ContentHash)
		require.NoError(t, err)
		assert.Equal(t, second.ID, found.ID)
		assert.Len(t, found.Items, 1)
	})

	t.Run("stores nil items as empty", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewExtractionService(setupTestDB(t))
		ctx := context.Background()
		e := sampleExtraction("empty-{}", "")
		e.Items = nil

		require.NoError(t, svc.CreateExtraction(ctx, e))

		found, err := svc.FindExtraction(ctx, "empty-{}", e.ContentHash)
		require.NoError(t, err)
		assert.NotNil(t, found.Items)
		assert.Empty(t, found.Items)
	})
}

func TestExtractionService_FindExtraction(t *testing.T) {
	t.Parallel()

	t.Run("round-trips items", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewExtractionService(setupTestDB(t))
		ctx := context.Background()
		e := sampleExtraction("main-{}", "<p>Hello</p>")
		require.NoError(t, svc.CreateExtraction(ctx, e))

		found, err := svc.FindExtraction(ctx, "main-{}", e.ContentHash)

		require.NoError(t, err)
		assert.Equal(t, e.Items, found.Items)
		assert.Equal(t, e.Source, found.Source)
		assert.True(t, e.CreatedAt.Equal(found.CreatedAt))
	})

	t.Run("returns ENOTFOUND for changed content", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewExtractionService(setupTestDB(t))
		ctx := context.Background()
		require.NoError(t, svc.CreateExtraction(ctx, sampleExtraction("main-{}", "<p>Hello</p>")))

		_, err := svc.FindExtraction(ctx, "main-{}", sqlite.HashContent("<p>Goodbye</p>"))

		require.Error(t, err)
		assert.Equal(t, translatable.ENOTFOUND, translatable.ErrorCode(err))
	})

	t.Run("finds rows written by an earlier service", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "store.db")
		ctx := context.Background()

		db := sqlite.NewDB(path)
		require.NoError(t, db.Open())
		e := sampleExtraction("main-{}", "<p>Hello</p>")
		require.NoError(t, sqlite.NewExtractionService(db).CreateExtraction(ctx, e))
		require.NoError(t, db.Close())

		reopened := sqlite.NewDB(path)
		require.NoError(t, reopened.Open())
		defer reopened.Close()

		found, err := sqlite.NewExtractionService(reopened).FindExtraction(ctx, "main-{}", e.ContentHash)
		require.NoError(t, err)
		assert.Equal(t, e.ID, found.ID)
	})

	t.Run("recovers after a lookup with a cancelled context", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "store.db")
		ctx := context.Background()

		db := sqlite.NewDB(path)
		require.NoError(t, db.Open())
		e := sampleExtraction("main-{}", "<p>Hello</p>")
		require.NoError(t, sqlite.NewExtractionService(db).CreateExtraction(ctx, e))
		require.NoError(t, db.Close())

		reopened := sqlite.NewDB(path)
		require.NoError(t, reopened.Open())
		defer reopened.Close()
		svc := sqlite.NewExtractionService(reopened)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := svc.FindExtraction(cancelled, "main-{}", e.ContentHash)
		require.ErrorIs(t, err, context.Canceled)

		found, err := svc.FindExtraction(ctx, "main-{}", e.ContentHash)
		require.NoError(t, err)
		assert.Equal(t, e.ID, found.ID)
	})
}

func TestExtractionService_DeleteExtractions(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewExtractionService(setupTestDB(t))
	ctx := context.Background()
	e := sampleExtraction("main-{}", "<p>Hello</p>")
	require.NoError(t, svc.CreateExtraction(ctx, e))

	require.NoError(t, svc.DeleteExtractions(ctx))

	_, err := svc.FindExtraction(ctx, "main-{}", e.ContentHash)
	assert.Equal(t, translatable.ENOTFOUND, translatable.ErrorCode(err))
}

func TestHashContent(t *testing.T) {
	t.Parallel()

	h := sqlite.HashContent("<p>Hello</p>")

	assert.Len(t, h, 16)
	assert.Equal(t, h, sqlite.HashContent("<p>Hello</p>"))
	assert.NotEqual(t, h, sqlite.HashContent("<p>Hello!</p>"))
}
