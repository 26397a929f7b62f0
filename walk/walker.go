// Package walk implements the extraction engine: tree traversal with
// pluggable strategies, the skip policy, the content filter, and the
// memoizing cache.
package walk

import (
	"strings"

	"github.com/ef-ds/deque"
	"github.com/fwojciec/translatable"
)

// Ensure Walker implements translatable.Walker at compile time.
var _ translatable.Walker = (*Walker)(nil)

// Walker traverses a tree and collects translatable items.
// A Walker holds no state between calls.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// unit is one entry of the work queue.
type unit struct {
	node  translatable.Node
	depth int
	path  translatable.Path
}

// Walk traverses the tree under root and returns its translatable items in
// visitation order.
//
// Both strategies share one deque. BFS appends children to the back at
// every depth. Hybrid does the same while the parent is shallower than the
// hybrid threshold; from the threshold on, children are pushed to the front
// in reverse so they come off the deque next, in document order. The deep
// subtree is thus finished before siblings queued earlier are resumed.
func (w *Walker) Walk(root translatable.Node, opts translatable.Options) translatable.WalkResult {
	result := translatable.WalkResult{Items: []translatable.Item{}}
	if root == nil {
		return result
	}

	v := &visitor{
		opts:   opts,
		skip:   NewSkipPolicy(opts),
		filter: NewContentFilter(opts),
	}

	queue := deque.New()
	queue.PushBack(unit{node: root, path: translatable.Path{}})

	for queue.Len() > 0 {
		front, _ := queue.PopFront()
		u := front.(unit)
		if u.depth > opts.MaxDepth {
			continue
		}
		result.Visited++

		items, children, ok := v.visit(u)
		if !ok {
			continue
		}
		result.Items = append(result.Items, items...)

		if opts.Strategy == translatable.StrategyHybrid && u.depth >= opts.HybridDepthThreshold {
			for i := len(children) - 1; i >= 0; i-- {
				if children[i] != nil {
					queue.PushFront(unit{node: children[i], depth: u.depth + 1, path: u.path.Child(i)})
				}
			}
			continue
		}
		for i, child := range children {
			if child != nil {
				queue.PushBack(unit{node: child, depth: u.depth + 1, path: u.path.Child(i)})
			}
		}
	}

	return result
}

type visitor struct {
	opts   translatable.Options
	skip   *SkipPolicy
	filter *ContentFilter
}

// visit returns the items a node contributes and the children to admit.
// ok is false when the node is skipped or its adapter misbehaves; a panic
// inside the adapter only drops that node.
func (v *visitor) visit(u unit) (items []translatable.Item, children []translatable.Node, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			items, children, ok = nil, nil, false
		}
	}()

	if v.skip.ShouldSkip(u.node) {
		return nil, nil, false
	}

	switch u.node.Kind() {
	case translatable.KindText:
		text := u.node.Text()
		if v.filter.AcceptText(text) {
			items = append(items, translatable.Item{
				Type:    translatable.ItemText,
				Path:    u.path,
				Content: strings.TrimSpace(text),
				Depth:   u.depth,
			})
		}
	case translatable.KindElement:
		for _, name := range v.opts.ExtractableAttributeNames {
			value, exists := u.node.Attr(name)
			if !exists {
				continue
			}
			if value = strings.TrimSpace(value); value == "" {
				continue
			}
			items = append(items, translatable.Item{
				Type:      translatable.ItemAttribute,
				Attribute: name,
				Path:      u.path,
				Content:   value,
				Depth:     u.depth,
			})
		}
		children = u.node.Children()
	}

	return items, children, true
}
