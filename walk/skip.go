package walk

import (
	"strings"

	"github.com/fwojciec/translatable"
)

// SkipPolicy decides whether a node, and with it its whole subtree, is
// excluded from extraction.
type SkipPolicy struct {
	tags     map[string]struct{}
	classes  map[string]struct{}
	attrs    []string
	lookback int
}

// NewSkipPolicy creates a SkipPolicy from the skip sets and lookback bound
// in opts. Tag names match case-insensitively.
func NewSkipPolicy(opts translatable.Options) *SkipPolicy {
	p := &SkipPolicy{
		tags:     make(map[string]struct{}, len(opts.SkipTagNames)),
		classes:  make(map[string]struct{}, len(opts.SkipClassNames)),
		attrs:    opts.SkipAttributeNames,
		lookback: opts.AncestorLookbackBound,
	}
	for _, t := range opts.SkipTagNames {
		p.tags[strings.ToLower(t)] = struct{}{}
	}
	for _, c := range opts.SkipClassNames {
		p.classes[c] = struct{}{}
	}
	return p
}

// ShouldSkip returns true if n must not be extracted.
//
// An element is skipped when it, or an ancestor at most lookback levels
// above it, is skipped by IsMarked. A text node is checked the same way
// starting from its parent at level 1, and is also skipped when its text
// holds an email address. Nodes that are neither text nor elements are
// always skipped.
func (p *SkipPolicy) ShouldSkip(n translatable.Node) bool {
	if n == nil {
		return true
	}
	switch n.Kind() {
	case translatable.KindElement:
		return p.markedWithin(n, 0)
	case translatable.KindText:
		if p.markedWithin(n.Parent(), 1) {
			return true
		}
		return IsEmail(n.Text())
	default:
		return true
	}
}

// markedWithin walks up from n, which sits level levels above the node
// under test, until the lookback bound is passed.
func (p *SkipPolicy) markedWithin(n translatable.Node, level int) bool {
	for ; n != nil && level <= p.lookback; level++ {
		if p.IsMarked(n) {
			return true
		}
		n = n.Parent()
	}
	return false
}

// IsMarked applies the immediate rule to a single node: an element whose
// tag is a skip tag, that carries a skip class, or that has a skip
// attribute.
func (p *SkipPolicy) IsMarked(n translatable.Node) bool {
	if n.Kind() != translatable.KindElement {
		return false
	}
	if _, ok := p.tags[strings.ToLower(n.TagName())]; ok {
		return true
	}
	for _, c := range n.Classes() {
		if _, ok := p.classes[c]; ok {
			return true
		}
	}
	for _, a := range p.attrs {
		if _, ok := n.Attr(a); ok {
			return true
		}
	}
	return false
}
