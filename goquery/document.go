// Package goquery provides HTML document handling for extraction: root
// selection by CSS selector, source-language detection, and the rewrite
// pass that writes translations back into the document.
package goquery

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/translatable"
	transhtml "github.com/fwojciec/translatable/html"
	"golang.org/x/net/html"
	"golang.org/x/text/language"
)

// Document is a parsed HTML document.
type Document struct {
	doc *goquery.Document
}

// Parse parses raw HTML into a Document.
func Parse(rawHTML string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, translatable.Errorf(translatable.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc}, nil
}

// Root returns the first element matching the CSS selector, to be used as
// an extraction root. An empty selector selects the <html> element.
// Returns EINVALID for a malformed selector and ENOTFOUND if nothing matches.
func (d *Document) Root(selector string) (translatable.Node, error) {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		selector = "html"
	}

	m, err := cascadia.Compile(selector)
	if err != nil {
		return nil, translatable.Errorf(translatable.EINVALID, "invalid selector %q: %v", selector, err)
	}

	sel := d.doc.FindMatcher(m)
	if sel.Length() == 0 {
		return nil, translatable.Errorf(translatable.ENOTFOUND, "no element matches %q", selector)
	}
	return transhtml.NewNode(sel.Get(0)), nil
}

// Language returns the page's declared language from <html lang>.
func (d *Document) Language() string {
	lang, _ := d.doc.Find("html").Attr("lang")
	return strings.TrimSpace(lang)
}

// SourceLanguageIsEnglish reports whether the declared page language is
// English. Pages without a parseable declaration count as English.
func (d *Document) SourceLanguageIsEnglish() bool {
	lang := d.Language()
	if lang == "" {
		return true
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return true
	}
	base, _ := tag.Base()
	english, _ := language.English.Base()
	return base == english
}

// Apply writes translations into the document at the locations of items,
// which must have been extracted from root. translations maps source
// content to translated content; items without a translation are left
// alone, as are items whose node no longer holds the extracted content.
// Text nodes keep their surrounding whitespace. Returns the number of
// substitutions made.
func (d *Document) Apply(root translatable.Node, items []translatable.Item, translations map[string]string) int {
	applied := 0
	for _, item := range items {
		translated, ok := translations[item.Content]
		if !ok {
			continue
		}
		n := transhtml.Unwrap(translatable.Resolve(root, item.Path))
		if n == nil {
			continue
		}

		switch item.Type {
		case translatable.ItemText:
			if n.Type != html.TextNode || strings.TrimSpace(n.Data) != item.Content {
				continue
			}
			lead := n.Data[:len(n.Data)-len(strings.TrimLeftFunc(n.Data, unicode.IsSpace))]
			trail := n.Data[len(strings.TrimRightFunc(n.Data, unicode.IsSpace)):]
			n.Data = lead + translated + trail
		case translatable.ItemAttribute:
			sel := d.doc.FindNodes(n)
			current, exists := sel.Attr(item.Attribute)
			if !exists || strings.TrimSpace(current) != item.Content {
				continue
			}
			sel.SetAttr(item.Attribute, translated)
		default:
			continue
		}
		applied++
	}
	return applied
}

// HTML renders the document.
func (d *Document) HTML() (string, error) {
	return d.doc.Html()
}
