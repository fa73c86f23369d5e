package formatter

import (
	"fmt"
	"strings"

	"github.com/Siddiq2772/scapper-with-ui/internal/browser"
	"github.com/Siddiq2772/scapper-with-ui/internal/detail"
	"github.com/Siddiq2772/scapper-with-ui/internal/emoji"
	"github.com/Siddiq2772/scapper-with-ui/internal/extract"
	"github.com/Siddiq2772/scapper-with-ui/internal/projection"
	"github.com/yildizm/go-termfmt"
)

// terminalFormatter formats output as plain text for terminal display using go-termfmt
type terminalFormatter struct {
	opts *termfmt.TerminalOptions
}

// NewTerminal creates a new terminal formatter
func NewTerminal(color, useEmoji bool) Formatter {
	opts := termfmt.DefaultOptions()
	opts.Color = color
	opts.Emoji = useEmoji
	return &terminalFormatter{opts: opts}
}

func (f *terminalFormatter) symbol(key string) string {
	return emoji.Lookup(key, f.opts.Emoji)
}

func (f *terminalFormatter) FormatSnapshot(snap browser.Snapshot) ([]byte, error) {
	var b strings.Builder

	f.writeHeader(&b, viewTitle(snap.State.View()))
	b.WriteString(f.symbol("breadcrumb") + " " + breadcrumbPath(snap.Breadcrumbs) + "\n\n")

	if msg := emptyMessage(snap); msg != "" {
		b.WriteString(termfmt.GetEmoji("info", f.opts) + " " + msg + "\n")
		return []byte(b.String()), nil
	}

	f.writeItems(&b, snap.Result.Items)
	return []byte(b.String()), nil
}

// writeItems writes one tree entry per item; problems carry their summary
func (f *terminalFormatter) writeItems(b *strings.Builder, items []projection.Item) {
	tree := make([]termfmt.TreeItem, 0, len(items))
	for i, item := range items {
		entry := termfmt.TreeItem{
			Label: f.symbol(kindKey(item.Kind)) + " " + item.Label,
			Last:  i == len(items)-1,
		}
		if item.Kind == projection.KindProblem {
			entry.Value = "#" + itemID(item)
			if item.Card.ShortSummary != "" {
				entry.Children = []termfmt.TreeItem{
					{Label: item.Card.ShortSummary, Last: true},
				}
			}
		}
		tree = append(tree, entry)
	}

	b.WriteString(termfmt.TreeViewWithOptions(tree, f.opts) + "\n")
	fmt.Fprintf(b, "\n%s %d item(s)\n", termfmt.GetEmoji("statistics", f.opts), len(items))
}

func (f *terminalFormatter) FormatDetail(d detail.Detail) ([]byte, error) {
	var b strings.Builder

	f.writeHeader(&b, d.Organization)

	fields := []termfmt.TreeItem{
		{Label: f.symbol("number") + " ID", Value: d.ID},
		{Label: f.symbol("category") + " Category", Value: d.Category},
	}
	sections := d.Sections(extract.PlainText)
	for _, s := range sections[:len(sections)-1] {
		fields = append(fields, termfmt.TreeItem{Label: f.sectionSymbol(s.Title) + " " + s.Title, Value: s.Body})
	}
	fields[len(fields)-1].Last = true
	b.WriteString(termfmt.TreeViewWithOptions(fields, f.opts) + "\n\n")

	statement := sections[len(sections)-1]
	b.WriteString(f.symbol("problem") + " " + statement.Title + "\n")
	b.WriteString(statement.Body + "\n")

	return []byte(b.String()), nil
}

func (f *terminalFormatter) sectionSymbol(title string) string {
	switch title {
	case detail.SectionTheme:
		return f.symbol("theme")
	case detail.SectionSubmissions:
		return f.symbol("submissions")
	case detail.SectionDeadline:
		return f.symbol("deadline")
	default:
		return f.symbol("problem")
	}
}

// writeHeader writes a boxed title
func (f *terminalFormatter) writeHeader(b *strings.Builder, title string) {
	width := len([]rune(title))

	b.WriteString("╔" + strings.Repeat("═", width+2) + "╗\n")
	b.WriteString("║ " + title + " ║\n")
	b.WriteString("╚" + strings.Repeat("═", width+2) + "╝\n\n")
}
