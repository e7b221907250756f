// Package goquery provides HTML-aware implementations of
// corpscan.Normalizer and corpscan.LinkFinder using CSS selectors.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mwalkiewicz/corpscan"
	"golang.org/x/net/html"
)

// Ensure Normalizer implements corpscan.Normalizer at compile time.
var _ corpscan.Normalizer = (*Normalizer)(nil)

// Normalizer reduces HTML to plain readable text. Scripts, styles, head
// metadata, and navigation are dropped; footers are kept because several
// pattern rules specifically target footer content.
type Normalizer struct{}

// NewNormalizer creates a new Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

var whitespaceRE = regexp.MustCompile(`\s+`)

// Text extracts readable text from HTML. Parsing is best-effort: the
// html parser repairs malformed markup rather than failing, so Text
// never errors and degrades to whatever text survives. Idempotent:
// already-plain text comes back unchanged.
func (n *Normalizer) Text(content string) string {
	if content == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		// Unparsable input: fall back to whitespace-collapsed raw text.
		return collapse(content)
	}

	doc.Find("script, style, head, nav").Remove()

	var b strings.Builder
	for _, node := range doc.Selection.Nodes {
		collectText(node, &b)
	}
	return collapse(b.String())
}

// collectText walks the node tree appending text nodes separated by
// spaces, so text from adjacent elements does not run together.
func collectText(node *html.Node, b *strings.Builder) {
	if node.Type == html.TextNode {
		b.WriteString(node.Data)
		b.WriteByte(' ')
		return
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, b)
	}
}

func collapse(s string) string {
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(s, " "))
}
