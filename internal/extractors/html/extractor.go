package html

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/kennyvt/kennyvt.github.io/internal/core/ports/driven"
)

// Ensure Extractor implements both interfaces.
var (
	_ driven.ListingExtractor = (*Extractor)(nil)
	_ driven.BodyExtractor    = (*Extractor)(nil)
)

// Extractor parses HTML markup.
type Extractor struct{}

// New creates a new HTML extractor.
func New() *Extractor {
	return &Extractor{}
}

// ExtractAnchors returns the trimmed text of every <a> element in
// document order. Anchors without text are returned as empty strings;
// callers decide whether to keep them.
func (e *Extractor) ExtractAnchors(markup []byte) ([]string, error) {
	doc, err := parse(markup)
	if err != nil {
		return nil, err
	}

	anchors := []string{}
	for _, n := range elements(doc, atom.A) {
		anchors = append(anchors, strings.TrimSpace(textContent(n)))
	}
	return anchors, nil
}

// ExtractBody returns the trimmed text of every <div> joined with single
// spaces. Nested divs contribute their text once per enclosing div.
func (e *Extractor) ExtractBody(markup []byte) (string, error) {
	doc, err := parse(markup)
	if err != nil {
		return "", err
	}

	var parts []string
	for _, n := range elements(doc, atom.Div) {
		if text := strings.TrimSpace(textContent(n)); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " "), nil
}

func parse(markup []byte) (*html.Node, error) {
	doc, err := html.Parse(bytes.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return doc, nil
}

// elements returns every element of the given type in document order.
func elements(root *html.Node, a atom.Atom) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == a {
			found = append(found, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return found
}

// textContent concatenates the descendant text of n, skipping script and
// style elements.
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
			return
		case html.ElementNode:
			if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
