package walk

import (
	"regexp"
	"strings"

	"github.com/fwojciec/translatable"
)

var (
	emailRe    = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,7}`)
	numericRe  = regexp.MustCompile(`^[\d.]+$`)
	nonLatinRe = regexp.MustCompile(`^[^A-Za-z0-9]+$`)

	// Government sites write addresses as "name[at]agency[dot]gov".
	emailDeobfuscator = strings.NewReplacer("[dot]", ".", "[at]", "@")
)

// Rejection names the rule that rejected a text fragment.
type Rejection string

// Rejection constants, in precedence order.
const (
	Accepted         Rejection = ""
	RejectEmpty      Rejection = "empty"
	RejectWhitespace Rejection = "whitespace"
	RejectEmail      Rejection = "email"
	RejectNumeric    Rejection = "numeric"
	RejectNonLatin   Rejection = "non-latin"
)

// IsEmail reports whether text contains an email address, either literally
// or after replacing "[dot]" and "[at]" with their symbols.
func IsEmail(text string) bool {
	if emailRe.MatchString(text) {
		return true
	}
	normalized := emailDeobfuscator.Replace(text)
	return normalized != text && emailRe.MatchString(normalized)
}

// ContentFilter decides whether a text fragment is worth translating.
type ContentFilter struct {
	sourceIsEnglish   bool
	languageDetection bool
}

// NewContentFilter creates a ContentFilter for the language flags in opts.
func NewContentFilter(opts translatable.Options) *ContentFilter {
	return &ContentFilter{
		sourceIsEnglish:   opts.SourceLanguageIsEnglish,
		languageDetection: opts.LanguageDetectionEnabled,
	}
}

// AcceptText returns true if text should be kept as translatable.
func (f *ContentFilter) AcceptText(text string) bool {
	return f.Reason(text) == Accepted
}

// Reason returns the first rule that rejects text, or Accepted.
func (f *ContentFilter) Reason(text string) Rejection {
	if text == "" {
		return RejectEmpty
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return RejectWhitespace
	}

	if IsEmail(text) {
		return RejectEmail
	}

	if numericRe.MatchString(trimmed) {
		return RejectNumeric
	}

	// No Latin letter or digit at all. Only applies to English source pages
	// with language detection off.
	if f.sourceIsEnglish && !f.languageDetection && nonLatinRe.MatchString(trimmed) {
		return RejectNonLatin
	}

	return Accepted
}
