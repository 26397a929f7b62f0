// Package etree adapts github.com/beevik/etree XML trees to
// translatable.Node, so XML documents such as SVG, XHTML or XLIFF can be
// extracted with the same engine as HTML.
package etree

import (
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/translatable"
)

// Ensure Node implements translatable.Node at compile time.
var _ translatable.Node = (*Node)(nil)

// Node wraps an etree token. Elements report KindElement, character data
// (including CDATA) reports KindText, and everything else KindOther.
type Node struct {
	tok etree.Token
}

// NewNode wraps e. Returns nil if e is nil.
func NewNode(e *etree.Element) translatable.Node {
	if e == nil {
		return nil
	}
	return &Node{tok: e}
}

// Parse reads an XML document and returns its root element.
func Parse(r io.Reader) (translatable.Node, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, translatable.Errorf(translatable.EINVALID, "failed to parse XML: %v", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, translatable.Errorf(translatable.EINVALID, "XML document has no root element")
	}
	return NewNode(root), nil
}

func (n *Node) element() *etree.Element {
	e, _ := n.tok.(*etree.Element)
	return e
}

func (n *Node) Kind() translatable.NodeKind {
	switch n.tok.(type) {
	case *etree.Element:
		return translatable.KindElement
	case *etree.CharData:
		return translatable.KindText
	default:
		return translatable.KindOther
	}
}

func (n *Node) Children() []translatable.Node {
	e := n.element()
	if e == nil {
		return nil
	}
	children := make([]translatable.Node, 0, len(e.Child))
	for _, c := range e.Child {
		children = append(children, &Node{tok: c})
	}
	return children
}

// Parent returns the enclosing element, or nil for the document root.
func (n *Node) Parent() translatable.Node {
	p := n.tok.Parent()
	if p == nil || isDocument(p) {
		return nil
	}
	return &Node{tok: p}
}

// isDocument reports whether e is the container element embedded in an
// etree.Document rather than a real element.
func isDocument(e *etree.Element) bool {
	return e.Parent() == nil && e.Tag == "" && e.Space == ""
}

// Text returns the character data of a text node, or the concatenated
// character data below an element.
func (n *Node) Text() string {
	switch t := n.tok.(type) {
	case *etree.CharData:
		return t.Data
	case *etree.Element:
		var b strings.Builder
		collectText(t, &b)
		return b.String()
	}
	return ""
}

func collectText(e *etree.Element, b *strings.Builder) {
	for _, c := range e.Child {
		switch t := c.(type) {
		case *etree.CharData:
			b.WriteString(t.Data)
		case *etree.Element:
			collectText(t, b)
		}
	}
}

// TagName returns the lower-case local name, without namespace prefix.
func (n *Node) TagName() string {
	e := n.element()
	if e == nil {
		return ""
	}
	return strings.ToLower(e.Tag)
}

// Attr matches name against the attribute's full key, e.g. "xml:lang".
func (n *Node) Attr(name string) (string, bool) {
	e := n.element()
	if e == nil {
		return "", false
	}
	for i := range e.Attr {
		if e.Attr[i].FullKey() == name {
			return e.Attr[i].Value, true
		}
	}
	return "", false
}

func (n *Node) Classes() []string {
	class, _ := n.Attr("class")
	return strings.Fields(class)
}

func (n *Node) IdentityHint() string {
	id, ok := n.Attr("id")
	if !ok {
		id, _ = n.Attr("xml:id")
	}
	return translatable.DeriveIdentityHint(id, n.Classes(), n.TagName())
}
