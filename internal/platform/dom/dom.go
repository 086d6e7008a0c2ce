// Package dom exposes a rendered page as a tree of queryable nodes.
//
// Browser drivers snapshot the page once it has rendered and hand the result
// to Parse, so extraction code never talks to a live browser.
package dom

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Node is an element handle scoped for descendant CSS queries.
type Node interface {
	// QueryAll returns every descendant matching selector, in document order.
	QueryAll(selector string) []Node
	// QueryFirst returns the first matching descendant, or nil when nothing matches.
	QueryFirst(selector string) Node
	// Text returns the raw text content of the node and its descendants.
	Text() string
}

// Text returns the trimmed text of n, or "" when n is absent.
func Text(n Node) string {
	if n == nil {
		return ""
	}
	return strings.TrimSpace(n.Text())
}

func Parse(r io.Reader) (Node, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	return FromSelection(doc.Selection), nil
}

func ParseString(html string) (Node, error) {
	return Parse(strings.NewReader(html))
}

func FromSelection(sel *goquery.Selection) Node {
	return selection{sel: sel}
}

type selection struct {
	sel *goquery.Selection
}

func (s selection) QueryAll(selector string) []Node {
	found := s.sel.Find(selector)
	out := make([]Node, 0, found.Length())
	found.Each(func(_ int, item *goquery.Selection) {
		out = append(out, selection{sel: item})
	})
	return out
}

func (s selection) QueryFirst(selector string) Node {
	found := s.sel.Find(selector).First()
	if found.Length() == 0 {
		return nil
	}
	return selection{sel: found}
}

func (s selection) Text() string {
	return s.sel.Text()
}
