// Package document is a thin CSS-selector query layer over goquery.
// Lookups that may legitimately miss return an explicit ok flag instead of
// an empty selection, so callers branch on presence.
package document

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Node is one element (or the document root).
type Node struct {
	sel *goquery.Selection
}

// Parse parses html into a document root node.
func Parse(html string) (Node, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Node{}, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return Node{sel: doc.Selection}, nil
}

// SelectOne returns the first descendant matching selector.
func (n Node) SelectOne(selector string) (Node, bool) {
	found := n.sel.Find(selector).First()
	if found.Length() == 0 {
		return Node{}, false
	}
	return Node{sel: found}, true
}

// SelectAll returns every descendant matching selector in document order.
func (n Node) SelectAll(selector string) []Node {
	found := n.sel.Find(selector)
	nodes := make([]Node, 0, found.Length())
	found.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, Node{sel: s})
	})
	return nodes
}

// Count returns the number of descendants matching selector.
func (n Node) Count(selector string) int {
	return n.sel.Find(selector).Length()
}

// Text returns the combined text content of the node, untrimmed.
func (n Node) Text() string {
	if n.sel == nil {
		return ""
	}
	return n.sel.Text()
}
