package formatter

import (
	"fmt"

	"github.com/Siddiq2772/scapper-with-ui/internal/browser"
	"github.com/Siddiq2772/scapper-with-ui/internal/detail"
)

// Formatter defines the interface for output formatting
type Formatter interface {
	FormatSnapshot(snap browser.Snapshot) ([]byte, error)
	FormatDetail(d detail.Detail) ([]byte, error)
}

// Formats lists the supported output format names
var Formats = []string{"text", "json", "markdown", "csv"}

// New returns the formatter for format. Color and emoji only affect text.
func New(format string, color, emoji bool) (Formatter, error) {
	switch format {
	case "json":
		return NewJSON(), nil
	case "markdown", "md":
		return NewMarkdown(), nil
	case "csv":
		return NewCSV(), nil
	case "text", "":
		return NewTerminal(color, emoji), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
