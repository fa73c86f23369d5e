package formatter

import (
	"fmt"
	"strings"

	"github.com/Siddiq2772/scapper-with-ui/internal/browser"
	"github.com/Siddiq2772/scapper-with-ui/internal/detail"
	"github.com/Siddiq2772/scapper-with-ui/internal/navigation"
	"github.com/Siddiq2772/scapper-with-ui/internal/projection"
)

// markdownFormatter formats output as Markdown
type markdownFormatter struct{}

// NewMarkdown creates a new Markdown formatter
func NewMarkdown() Formatter {
	return &markdownFormatter{}
}

func (f *markdownFormatter) FormatSnapshot(snap browser.Snapshot) ([]byte, error) {
	var b strings.Builder

	b.WriteString("# " + viewTitle(snap.State.View()) + "\n\n")
	b.WriteString("_" + breadcrumbPath(snap.Breadcrumbs) + "_\n\n")

	if msg := emptyMessage(snap); msg != "" {
		b.WriteString("> " + msg + "\n")
		return []byte(b.String()), nil
	}

	if snap.State.View() == navigation.Problems {
		f.writeProblems(&b, snap.Result.Items)
	} else {
		for _, item := range snap.Result.Items {
			b.WriteString("- " + item.Label + "\n")
		}
	}

	return []byte(b.String()), nil
}

// writeProblems writes one section per problem card
func (f *markdownFormatter) writeProblems(b *strings.Builder, items []projection.Item) {
	for _, item := range items {
		fmt.Fprintf(b, "## %s\n\n", item.Label)
		fmt.Fprintf(b, "`%s`", itemID(item))
		if item.Card.ShortSummary != "" {
			b.WriteString(" " + item.Card.ShortSummary)
		}
		b.WriteString("\n\n")
	}
}

func (f *markdownFormatter) FormatDetail(d detail.Detail) ([]byte, error) {
	return []byte(d.Markdown()), nil
}
