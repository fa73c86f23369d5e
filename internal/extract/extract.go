// Package extract derives card text from the semi-structured HTML
// descriptions of problem records.
package extract

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	// DefaultTitle is used when a description has no title row
	DefaultTitle = "Problem Statement"
	// SummaryLimit is the maximum card summary length in characters
	SummaryLimit = 150
	// Ellipsis marks a truncated summary
	Ellipsis = "..."

	titleLabel       = "Problem Statement Title"
	descriptionLabel = "Description"
)

// summaryPrefixes are section labels scraped pages repeat at the start of the
// description value. Checked in order; at most one is removed.
var summaryPrefixes = []string{"Problem Description", "Background", "Description"}

// Card is the preview shown for a problem
type Card struct {
	Title        string `json:"title"`
	ShortSummary string `json:"short_summary"`
}

// Extract derives a problem's card from its description markup. It never
// fails: missing rows and unparsable markup fall back to defaults.
func Extract(markup string) Card {
	doc := Parse(markup)

	title, ok := doc.Lookup(titleLabel)
	if !ok || title == "" {
		title = DefaultTitle
	}

	summary, ok := doc.Lookup(descriptionLabel)
	if !ok || summary == "" {
		summary = doc.Text()
	}

	return Card{
		Title:        title,
		ShortSummary: Truncate(StripPrefix(summary), SummaryLimit),
	}
}

// Document is a parsed description fragment
type Document struct {
	nodes []*html.Node
}

// Parse parses markup the way it would be parsed as the content of a <div>.
func Parse(markup string) *Document {
	div := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(markup), div)
	if err != nil {
		// keep the raw text so the plain-text fallback still has content
		nodes = []*html.Node{{Type: html.TextNode, Data: markup}}
	}
	return &Document{nodes: nodes}
}

// Lookup scans table rows in document order and returns the trimmed text of
// the second cell of the first row whose first cell contains label,
// ignoring case.
func (d *Document) Lookup(label string) (string, bool) {
	needle := strings.ToLower(label)

	for _, row := range d.rows() {
		cells := findAll(row, func(n *html.Node) bool {
			return n.DataAtom == atom.Td || n.DataAtom == atom.Th
		})
		if len(cells) < 2 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(textContent(cells[0])))
		if strings.Contains(key, needle) {
			return strings.TrimSpace(textContent(cells[1])), true
		}
	}
	return "", false
}

// Text returns the trimmed concatenation of every text node
func (d *Document) Text() string {
	var b strings.Builder
	for _, n := range d.nodes {
		collectText(n, &b)
	}
	return strings.TrimSpace(b.String())
}

func (d *Document) rows() []*html.Node {
	var rows []*html.Node
	for _, n := range d.nodes {
		if n.Type == html.ElementNode && n.DataAtom == atom.Tr {
			rows = append(rows, n)
		}
		rows = append(rows, findAll(n, func(c *html.Node) bool { return c.DataAtom == atom.Tr })...)
	}
	return rows
}

// findAll returns the element descendants of n (excluding n) matching match,
// in document order.
func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && match(c) {
			out = append(out, c)
		}
		out = append(out, findAll(c, match)...)
	}
	return out
}

func textContent(n *html.Node) string {
	var b strings.Builder
	collectText(n, &b)
	return b.String()
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// StripPrefix removes the first matching section label from the start of s,
// then the whitespace and single separator that usually follow it.
// Matching is literal and case-sensitive.
func StripPrefix(s string) string {
	for _, prefix := range summaryPrefixes {
		if !strings.HasPrefix(s, prefix) {
			continue
		}
		rest := strings.TrimSpace(s[len(prefix):])
		for _, sep := range []string{":", "-", "–", "—"} {
			if strings.HasPrefix(rest, sep) {
				rest = strings.TrimSpace(rest[len(sep):])
				break
			}
		}
		return rest
	}
	return s
}

// Truncate cuts s to limit characters and appends Ellipsis when it was
// longer. The cut is not word-aware.
func Truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + Ellipsis
}
