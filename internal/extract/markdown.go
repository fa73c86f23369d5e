package extract

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	multiNewlinePattern = regexp.MustCompile(`\n{3,}`)
	multiSpacePattern   = regexp.MustCompile(`[ \t]+`)
	spaceNewlinePattern = regexp.MustCompile(` *\n *`)
)

// maxDepth bounds recursion on pathological markup
const maxDepth = 64

// Markdown converts description markup into markdown suitable for terminal
// rendering. Label/value table rows become a bold label followed by the value.
func Markdown(markup string) string {
	return convert(markup, true)
}

// PlainText converts description markup into readable text, keeping block
// boundaries as line breaks.
func PlainText(markup string) string {
	return convert(markup, false)
}

func convert(markup string, markdown bool) string {
	doc := Parse(markup)
	w := &blockWriter{markdown: markdown}
	for _, n := range doc.nodes {
		w.walk(n, 0)
	}

	out := w.b.String()
	out = multiSpacePattern.ReplaceAllString(out, " ")
	out = spaceNewlinePattern.ReplaceAllString(out, "\n")
	out = multiNewlinePattern.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}

type blockWriter struct {
	b        strings.Builder
	markdown bool
}

func (w *blockWriter) walk(n *html.Node, depth int) {
	if depth > maxDepth {
		return
	}

	switch n.Type {
	case html.TextNode:
		w.b.WriteString(collapse(n.Data))
		return
	case html.ElementNode:
	default:
		w.children(n, depth)
		return
	}

	switch n.DataAtom {
	case atom.Script, atom.Style, atom.Noscript, atom.Iframe, atom.Svg:
		return
	case atom.Table:
		w.table(n)
		return
	case atom.Br:
		w.b.WriteString("\n")
		return
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		w.b.WriteString("\n\n")
		if w.markdown {
			level := int(n.Data[1] - '0')
			w.b.WriteString(strings.Repeat("#", level) + " ")
		}
		w.children(n, depth)
		w.b.WriteString("\n\n")
		return
	case atom.Li:
		if w.markdown {
			w.b.WriteString("\n- ")
		} else {
			w.b.WriteString("\n• ")
		}
		w.children(n, depth)
		return
	case atom.Strong, atom.B:
		w.wrap(n, depth, "**")
		return
	case atom.Em, atom.I:
		w.wrap(n, depth, "*")
		return
	case atom.P, atom.Div, atom.Ul, atom.Ol, atom.Section, atom.Blockquote:
		w.b.WriteString("\n\n")
		w.children(n, depth)
		w.b.WriteString("\n\n")
		return
	}

	w.children(n, depth)
}

func (w *blockWriter) children(n *html.Node, depth int) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c, depth+1)
	}
}

func (w *blockWriter) wrap(n *html.Node, depth int, marker string) {
	if !w.markdown {
		w.children(n, depth)
		return
	}
	inner := &blockWriter{markdown: true}
	inner.children(n, depth)
	text := strings.TrimSpace(inner.b.String())
	if text == "" {
		return
	}
	w.b.WriteString(marker + text + marker)
}

// table renders rows as label/value blocks; single-cell rows as paragraphs.
func (w *blockWriter) table(n *html.Node) {
	w.b.WriteString("\n\n")
	for _, row := range findAll(n, func(c *html.Node) bool { return c.DataAtom == atom.Tr }) {
		cells := findAll(row, func(c *html.Node) bool {
			return c.DataAtom == atom.Td || c.DataAtom == atom.Th
		})

		texts := make([]string, 0, len(cells))
		for _, cell := range cells {
			inner := &blockWriter{markdown: w.markdown}
			inner.children(cell, 0)
			if t := strings.TrimSpace(inner.b.String()); t != "" {
				texts = append(texts, t)
			}
		}

		switch {
		case len(texts) == 0:
			continue
		case len(texts) == 1:
			w.b.WriteString(texts[0])
		case w.markdown:
			w.b.WriteString("**" + texts[0] + "**\n\n" + strings.Join(texts[1:], "\n\n"))
		default:
			w.b.WriteString(texts[0] + ":\n" + strings.Join(texts[1:], "\n"))
		}
		w.b.WriteString("\n\n")
	}
}

// collapse applies HTML whitespace folding to a text node
func collapse(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		if s == "" {
			return ""
		}
		return " "
	}

	out := strings.Join(fields, " ")
	if isSpace(s[0]) {
		out = " " + out
	}
	if isSpace(s[len(s)-1]) {
		out += " "
	}
	return out
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\t' || c == '\r' || c == '\f'
}
