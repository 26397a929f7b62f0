package mock

import (
	"strings"

	"github.com/fwojciec/translatable"
)

var _ translatable.Node = (*Node)(nil)

// Node is an in-memory translatable.Node for building test trees.
// Build trees with Element and Text; Append links parents.
type Node struct {
	NodeKind translatable.NodeKind
	Tag      string
	Data     string
	Attrs    map[string]string

	// PanicOnChildren makes Children panic, simulating a broken adapter.
	PanicOnChildren bool

	parent   *Node
	children []*Node
}

// Element returns an element node with the given attributes and children.
// attrs may be nil.
func Element(tag string, attrs map[string]string, children ...*Node) *Node {
	n := &Node{NodeKind: translatable.KindElement, Tag: strings.ToLower(tag), Attrs: attrs}
	return n.Append(children...)
}

// Text returns a text node.
func Text(data string) *Node {
	return &Node{NodeKind: translatable.KindText, Data: data}
}

// Comment returns a node that is neither text nor an element.
func Comment(data string) *Node {
	return &Node{NodeKind: translatable.KindOther, Data: data}
}

// Append adds children to n and returns n.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		c.parent = n
		n.children = append(n.children, c)
	}
	return n
}

func (n *Node) Kind() translatable.NodeKind {
	return n.NodeKind
}

func (n *Node) Children() []translatable.Node {
	if n.PanicOnChildren {
		panic("mock: broken node")
	}
	out := make([]translatable.Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *Node) Parent() translatable.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *Node) Text() string {
	return n.Data
}

func (n *Node) TagName() string {
	return n.Tag
}

func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.Attrs[name]
	return v, ok
}

func (n *Node) Classes() []string {
	return strings.Fields(n.Attrs["class"])
}

func (n *Node) IdentityHint() string {
	return translatable.DeriveIdentityHint(n.Attrs["id"], n.Classes(), n.Tag)
}
