// Package html adapts golang.org/x/net/html trees to translatable.Node.
package html

import (
	"io"
	"strings"

	"github.com/fwojciec/translatable"
	"golang.org/x/net/html"
)

// Ensure Node implements translatable.Node at compile time.
var _ translatable.Node = (*Node)(nil)

// Node wraps an *html.Node. The document node reports KindElement with an
// empty tag name so a whole document can be used as a root.
type Node struct {
	n *html.Node
}

// NewNode wraps n. Returns nil if n is nil.
func NewNode(n *html.Node) translatable.Node {
	if n == nil {
		return nil
	}
	return &Node{n: n}
}

// Unwrap returns the *html.Node behind a node created by this package, or
// nil for any other node.
func Unwrap(n translatable.Node) *html.Node {
	if hn, ok := n.(*Node); ok {
		return hn.n
	}
	return nil
}

// Parse parses an HTML document and returns its <html> element.
func Parse(r io.Reader) (translatable.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, translatable.Errorf(translatable.EINVALID, "failed to parse HTML: %v", err)
	}
	return DocumentElement(doc), nil
}

// DocumentElement returns the first element child of a document node, the
// <html> element for parsed HTML. Falls back to the document itself.
func DocumentElement(doc *html.Node) translatable.Node {
	if doc == nil {
		return nil
	}
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return NewNode(c)
		}
	}
	return NewNode(doc)
}

func (n *Node) Kind() translatable.NodeKind {
	switch n.n.Type {
	case html.TextNode:
		return translatable.KindText
	case html.ElementNode, html.DocumentNode:
		return translatable.KindElement
	default:
		return translatable.KindOther
	}
}

func (n *Node) Children() []translatable.Node {
	var children []translatable.Node
	for c := n.n.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, &Node{n: c})
	}
	return children
}

func (n *Node) Parent() translatable.Node {
	return NewNode(n.n.Parent)
}

// Text returns the data of a text node, or the concatenated text of all
// descendant text nodes for other nodes.
func (n *Node) Text() string {
	if n.n.Type == html.TextNode {
		return n.n.Data
	}
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n.n)
	return b.String()
}

func (n *Node) TagName() string {
	if n.n.Type != html.ElementNode {
		return ""
	}
	return strings.ToLower(n.n.Data)
}

func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func (n *Node) Classes() []string {
	class, _ := n.Attr("class")
	return strings.Fields(class)
}

func (n *Node) IdentityHint() string {
	id, _ := n.Attr("id")
	return translatable.DeriveIdentityHint(id, n.Classes(), n.TagName())
}
