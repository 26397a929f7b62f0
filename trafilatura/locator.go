package trafilatura

import (
	"strings"

	"github.com/fwojciec/translatable"
	transhtml "github.com/fwojciec/translatable/html"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// minCoverage is the share of the located content's words an element of
// the original page must contain to be taken as the content root.
const minCoverage = 0.8

// Ensure Locator implements translatable.ContentLocator at compile time.
var _ translatable.ContentLocator = (*Locator)(nil)

// Locator wraps go-trafilatura to find the main content of a page.
//
// Trafilatura rebuilds the content it keeps, merging block text, so its
// result is only used to recognize the content. The returned root is the
// smallest element of the original page that holds it, with the page's
// own block structure intact.
type Locator struct{}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Locate returns the root of the page's main content.
func (l *Locator) Locate(rawHTML string) (translatable.Node, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, translatable.Errorf(translatable.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}
	if result.ContentNode == nil {
		return nil, translatable.Errorf(translatable.ENOTFOUND, "no main content found")
	}

	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, translatable.Errorf(translatable.EINVALID, "failed to parse HTML: %v", err)
	}

	if n := matchContent(doc, words(result.ContentNode)); n != nil {
		return transhtml.NewNode(n), nil
	}
	return transhtml.NewNode(result.ContentNode), nil
}

// matchContent returns the element under doc with the fewest words that
// still covers minCoverage of want, or nil if none does.
func matchContent(doc *html.Node, want []string) *html.Node {
	if len(want) == 0 {
		return nil
	}
	need := make(map[string]int, len(want))
	for _, w := range want {
		need[w]++
	}
	threshold := int(float64(len(want)) * minCoverage)

	var (
		best      *html.Node
		bestWords int
	)
	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode || ignored(c) {
				continue
			}
			have := words(c)
			if covered(have, need) < threshold {
				continue
			}
			if best == nil || len(have) <= bestWords {
				best, bestWords = c, len(have)
			}
			visit(c)
		}
	}
	visit(doc)
	return best
}

// covered counts the words of have that match a remaining word in need.
func covered(have []string, need map[string]int) int {
	left := make(map[string]int, len(need))
	for w, c := range need {
		left[w] = c
	}
	n := 0
	for _, w := range have {
		if left[w] > 0 {
			left[w]--
			n++
		}
	}
	return n
}

// words returns the whitespace-separated words of the visible text under n.
func words(n *html.Node) []string {
	var b strings.Builder
	collectText(n, &b)
	return strings.Fields(b.String())
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteByte(' ')
		return
	}
	if n.Type == html.ElementNode && ignored(n) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

func ignored(n *html.Node) bool {
	switch n.DataAtom {
	case atom.Script, atom.Style, atom.Noscript, atom.Template:
		return true
	}
	return false
}
