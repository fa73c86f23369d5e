package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/Siddiq2772/scapper-with-ui/internal/browser"
	"github.com/Siddiq2772/scapper-with-ui/internal/detail"
	"github.com/Siddiq2772/scapper-with-ui/internal/extract"
)

// csvFormatter formats items as CSV rows
type csvFormatter struct{}

// NewCSV creates a new CSV formatter
func NewCSV() Formatter {
	return &csvFormatter{}
}

func (f *csvFormatter) FormatSnapshot(snap browser.Snapshot) ([]byte, error) {
	rows := [][]string{{"Kind", "Label", "ID", "Summary"}}
	for _, item := range snap.Result.Items {
		rows = append(rows, []string{
			item.Kind.String(),
			item.Label,
			itemID(item),
			item.Card.ShortSummary,
		})
	}
	return writeCSV(rows)
}

func (f *csvFormatter) FormatDetail(d detail.Detail) ([]byte, error) {
	rows := [][]string{
		{"ID", "Organization", "Category", "Theme", "Submissions", "Deadline", "Description"},
		{d.ID, d.Organization, d.Category, d.Theme, d.Submissions, d.Deadline, extract.PlainText(d.Description)},
	}
	return writeCSV(rows)
}

func writeCSV(rows [][]string) ([]byte, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)

	for _, record := range rows {
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return b.Bytes(), nil
}
