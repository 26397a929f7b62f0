package translatable

import (
	"encoding/json"
	"slices"
	"strings"
)

// Strategy selects the order in which the walker visits nodes.
type Strategy string

// Strategy constants.
const (
	// StrategyBFS visits the tree breadth-first at every depth.
	StrategyBFS Strategy = "bfs"

	// StrategyHybrid visits breadth-first above the hybrid depth threshold
	// and depth-first below it.
	StrategyHybrid Strategy = "hybrid"
)

// ParseStrategy converts a strategy name to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case StrategyBFS:
		return StrategyBFS, nil
	case StrategyHybrid:
		return StrategyHybrid, nil
	}
	return "", Errorf(EINVALID, "unknown strategy %q", s)
}

// Default option values.
const (
	DefaultMaxDepth              = 1000
	DefaultHybridDepthThreshold  = 3
	DefaultAncestorLookbackBound = 3
)

// Options configures a single extraction. Options is a value type; the
// engine never modifies the slices it holds.
type Options struct {
	// MaxDepth discards nodes deeper than this below the root.
	MaxDepth int `json:"maxDepth"`

	// EnableCache memoizes results by root identity and options.
	EnableCache bool `json:"enableCache"`

	Strategy Strategy `json:"strategy"`

	// HybridDepthThreshold is the depth at which the hybrid strategy
	// switches from breadth-first to depth-first admission.
	HybridDepthThreshold int `json:"hybridDepthThreshold"`

	// AncestorLookbackBound is how many parent levels are inspected when
	// deciding whether a node sits under a skipped element.
	AncestorLookbackBound int `json:"ancestorLookbackBound"`

	// Sets. Order is irrelevant and normalized in Canonical.
	SkipAttributeNames []string `json:"skipAttributeNames"`
	SkipClassNames     []string `json:"skipClassNames"`
	SkipTagNames       []string `json:"skipTagNames"`

	// ExtractableAttributeNames is ordered: attribute items of one element
	// are emitted in this order.
	ExtractableAttributeNames []string `json:"extractableAttributeNames"`

	SourceLanguageIsEnglish  bool `json:"sourceLanguageIsEnglish"`
	LanguageDetectionEnabled bool `json:"languageDetectionEnabled"`
}

// DefaultOptions returns the options used when a caller supplies none.
func DefaultOptions() Options {
	return Options{
		MaxDepth:                  DefaultMaxDepth,
		EnableCache:               true,
		Strategy:                  StrategyHybrid,
		HybridDepthThreshold:      DefaultHybridDepthThreshold,
		AncestorLookbackBound:     DefaultAncestorLookbackBound,
		SkipAttributeNames:        []string{"data-translated", "data-skip-translation"},
		SkipClassNames:            []string{"dont-translate", "bhashini-skip-translation"},
		SkipTagNames:              []string{"script", "style", "noscript"},
		ExtractableAttributeNames: []string{"placeholder", "title", "alt", "aria-label"},
		SourceLanguageIsEnglish:   true,
		LanguageDetectionEnabled:  false,
	}
}

// Validate returns an error if the options contain invalid fields.
func (o Options) Validate() error {
	if o.MaxDepth < 0 {
		return Errorf(EINVALID, "max depth must not be negative")
	}
	if o.HybridDepthThreshold < 0 {
		return Errorf(EINVALID, "hybrid depth threshold must not be negative")
	}
	if o.AncestorLookbackBound < 0 {
		return Errorf(EINVALID, "ancestor lookback bound must not be negative")
	}
	if _, err := ParseStrategy(string(o.Strategy)); err != nil {
		return err
	}
	return nil
}

// Canonical returns a deterministic serialization of the options. Set-valued
// fields are sorted so that two option values describing the same
// configuration serialize identically.
func (o Options) Canonical() string {
	c := o
	c.SkipAttributeNames = sortedCopy(o.SkipAttributeNames)
	c.SkipClassNames = sortedCopy(o.SkipClassNames)
	c.SkipTagNames = sortedCopy(o.SkipTagNames)
	if c.ExtractableAttributeNames == nil {
		c.ExtractableAttributeNames = []string{}
	}

	// Marshaling a struct of strings, ints and bools cannot fail.
	b, _ := json.Marshal(c)
	return string(b)
}

func sortedCopy(s []string) []string {
	out := slices.Clone(s)
	if out == nil {
		return []string{}
	}
	slices.Sort(out)
	return out
}

// CacheKey derives the memoization key for an extraction: the root's
// identity hint, a dash, and the canonical options. Two different roots
// sharing a hint collide; callers clear the cache when the tree changes.
func CacheKey(root Node, opts Options) string {
	hint := ""
	if root != nil {
		hint = root.IdentityHint()
	}
	return hint + "-" + opts.Canonical()
}
