package walk_test

import (
	"testing"

	"github.com/fwojciec/translatable"
	"github.com/fwojciec/translatable/walk"
	"github.com/stretchr/testify/assert"
)

func englishOptions() translatable.Options {
	opts := translatable.DefaultOptions()
	opts.SourceLanguageIsEnglish = true
	opts.LanguageDetectionEnabled = false
	return opts
}

func TestContentFilter_Reason(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want walk.Rejection
	}{
		{"empty string", "", walk.RejectEmpty},
		{"whitespace only", "   \n\t ", walk.RejectWhitespace},
		{"carriage returns", "\r\n\r\n", walk.RejectWhitespace},
		{"plain email", "write to jane.doe@example.com today", walk.RejectEmail},
		{"obfuscated email", "contact us at jane[dot]doe[at]example[dot]gov", walk.RejectEmail},
		{"integer", "12345", walk.RejectNumeric},
		{"decimal", "12345.67", walk.RejectNumeric},
		{"padded number", "  42  ", walk.RejectNumeric},
		{"symbols only", "!!!###", walk.RejectNonLatin},
		{"devanagari", "नमस्ते", walk.RejectNonLatin},
		{"sentence", "Hello, world!", walk.Accepted},
		{"number with unit", "42 km", walk.Accepted},
		{"single letter", "a", walk.Accepted},
		{"one letter tld", "see a@b.c", walk.Accepted},
	}

	f := walk.NewContentFilter(englishOptions())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, f.Reason(tt.text))
			assert.Equal(t, tt.want == walk.Accepted, f.AcceptText(tt.text))
		})
	}
}

func TestContentFilter_NonLatinHeuristic(t *testing.T) {
	t.Parallel()

	t.Run("rejects symbols on english page without detection", func(t *testing.T) {
		t.Parallel()

		f := walk.NewContentFilter(englishOptions())

		assert.False(t, f.AcceptText("!!!###"))
	})

	t.Run("accepts symbols when language detection is enabled", func(t *testing.T) {
		t.Parallel()

		opts := englishOptions()
		opts.LanguageDetectionEnabled = true
		f := walk.NewContentFilter(opts)

		assert.True(t, f.AcceptText("!!!###"))
	})

	t.Run("accepts non-latin text when source is not english", func(t *testing.T) {
		t.Parallel()

		opts := englishOptions()
		opts.SourceLanguageIsEnglish = false
		f := walk.NewContentFilter(opts)

		assert.True(t, f.AcceptText("नमस्ते"))
	})

	t.Run("numeric rule still applies with detection enabled", func(t *testing.T) {
		t.Parallel()

		opts := englishOptions()
		opts.LanguageDetectionEnabled = true
		f := walk.NewContentFilter(opts)

		assert.Equal(t, walk.RejectNumeric, f.Reason("3.14"))
	})
}

func TestIsEmail(t *testing.T) {
	t.Parallel()

	assert.True(t, walk.IsEmail("info@example.org"))
	assert.True(t, walk.IsEmail("info[at]example[dot]org"))
	assert.True(t, walk.IsEmail("info[at]example.org"))
	assert.False(t, walk.IsEmail("info at example dot org"))
	assert.False(t, walk.IsEmail("@handle"))
}
