package translatable

import "slices"

// ItemType distinguishes text items from attribute items.
type ItemType string

// ItemType constants.
const (
	ItemText      ItemType = "text"
	ItemAttribute ItemType = "attribute"
)

// Item is one unit of translatable content.
type Item struct {
	Type ItemType `json:"type"`

	// Attribute is the attribute name for ItemAttribute items.
	Attribute string `json:"attribute,omitempty"`

	// Path locates the source node relative to the extraction root.
	// See Resolve.
	Path Path `json:"path"`

	// Content is the trimmed text or attribute value.
	Content string `json:"content"`

	// Depth is the source node's depth below the extraction root.
	Depth int `json:"depth"`
}

// Label returns "text" for text items and "@name" for attribute items.
func (i Item) Label() string {
	if i.Type == ItemAttribute {
		return "@" + i.Attribute
	}
	return string(ItemText)
}

// CloneItems returns a deep copy of items.
func CloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	for i, item := range items {
		item.Path = slices.Clone(item.Path)
		out[i] = item
	}
	return out
}

// SameContent reports whether a and b hold the same multiset of contents,
// ignoring order. It is the equivalence check between traversal strategies.
func SameContent(a, b []Item) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[string]int, len(a))
	for _, item := range a {
		counts[item.Content]++
	}
	for _, item := range b {
		counts[item.Content]--
		if counts[item.Content] < 0 {
			return false
		}
	}
	return true
}
