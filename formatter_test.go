package translatable_test

import (
	"testing"

	"github.com/fwojciec/translatable"
	"github.com/stretchr/testify/assert"
)

func TestFormatItems(t *testing.T) {
	t.Parallel()

	t.Run("formats text item with path", func(t *testing.T) {
		t.Parallel()

		items := []translatable.Item{
			{Type: translatable.ItemText, Path: translatable.Path{0, 2}, Content: "Hello"},
		}

		assert.Equal(t, `text 0/2 "Hello"`, translatable.FormatItems(items))
	})

	t.Run("formats attribute item with attribute name", func(t *testing.T) {
		t.Parallel()

		items := []translatable.Item{
			{Type: translatable.ItemAttribute, Attribute: "title", Path: translatable.Path{1}, Content: "Info"},
		}

		assert.Equal(t, `@title 1 "Info"`, translatable.FormatItems(items))
	})

	t.Run("uses dot for root path and quotes newlines", func(t *testing.T) {
		t.Parallel()

		items := []translatable.Item{
			{Type: translatable.ItemText, Content: "line one\nline two"},
		}

		assert.Equal(t, `text . "line one\nline two"`, translatable.FormatItems(items))
	})

	t.Run("separates items with newlines", func(t *testing.T) {
		t.Parallel()

		items := []translatable.Item{
			{Type: translatable.ItemText, Path: translatable.Path{0}, Content: "A"},
			{Type: translatable.ItemText, Path: translatable.Path{1}, Content: "B"},
		}

		assert.Equal(t, "text 0 \"A\"\ntext 1 \"B\"", translatable.FormatItems(items))
	})

	t.Run("returns empty string for no items", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, translatable.FormatItems(nil))
	})
}
