package readability

import (
	"strings"

	"github.com/fwojciec/translatable"
	transhtml "github.com/fwojciec/translatable/html"
	"github.com/go-shiori/go-readability"
)

// Ensure Locator implements translatable.ContentLocator at compile time.
var _ translatable.ContentLocator = (*Locator)(nil)

// Locator wraps go-readability to find the main article of a page.
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

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}
	if article.Node == nil {
		return nil, translatable.Errorf(translatable.ENOTFOUND, "no main content found")
	}

	return transhtml.NewNode(article.Node), nil
}
