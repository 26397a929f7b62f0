package translatable

import (
	"strconv"
	"strings"
)

// NodeKind identifies the variant of a tree node.
type NodeKind int

// NodeKind constants. Anything that is neither text nor an element
// (comments, doctypes, processing instructions) reports KindOther.
const (
	KindOther NodeKind = iota
	KindText
	KindElement
)

// String returns the kind name.
func (k NodeKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindElement:
		return "element"
	default:
		return "other"
	}
}

// Node is the capability set the extraction engine needs from a tree node.
// Implementations adapt a concrete tree (HTML, XML, in-memory) and must not
// be mutated while an extraction is running.
type Node interface {
	// Kind reports whether the node is text, an element, or something else.
	Kind() NodeKind

	// Children returns the node's children in document order.
	Children() []Node

	// Parent returns the parent node, or nil at the top of the tree.
	// It is a lookup, the node does not own its parent.
	Parent() Node

	// Text returns the text content of a text node.
	Text() string

	// TagName returns the lower-case tag name of an element.
	TagName() string

	// Attr returns the named attribute of an element.
	Attr(name string) (string, bool)

	// Classes returns the class list of an element.
	Classes() []string

	// IdentityHint returns a stable, non-unique label for the node used when
	// deriving cache keys. See DeriveIdentityHint.
	IdentityHint() string
}

// DeriveIdentityHint builds the identity hint adapters report: the id when
// present, otherwise the class list joined by ".", otherwise the tag name.
func DeriveIdentityHint(id string, classes []string, tag string) string {
	if id != "" {
		return id
	}
	if len(classes) > 0 {
		return strings.Join(classes, ".")
	}
	return tag
}

// Path locates a node by child indices, starting at an extraction root.
// The root itself has an empty path. Paths are lookup handles: they hold no
// reference to the tree and stay valid for as long as the tree is unchanged.
type Path []int

// Child returns a new path extended by the child index i.
// The receiver is never modified.
func (p Path) Child(i int) Path {
	child := make(Path, len(p)+1)
	copy(child, p)
	child[len(p)] = i
	return child
}

// String formats the path as slash-separated indices, e.g. "0/2/1".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, idx := range p {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, "/")
}

// ParsePath parses the output of Path.String.
func ParsePath(s string) (Path, error) {
	if s == "" {
		return Path{}, nil
	}
	parts := strings.Split(s, "/")
	p := make(Path, len(parts))
	for i, part := range parts {
		idx, err := strconv.Atoi(part)
		if err != nil || idx < 0 {
			return nil, Errorf(EINVALID, "invalid path segment %q", part)
		}
		p[i] = idx
	}
	return p, nil
}

// Resolve follows p from root and returns the node it points to.
// Returns nil if root is nil or the path does not exist in the tree.
func Resolve(root Node, p Path) Node {
	n := root
	for _, idx := range p {
		if n == nil {
			return nil
		}
		children := n.Children()
		if idx < 0 || idx >= len(children) {
			return nil
		}
		n = children[idx]
	}
	return n
}
