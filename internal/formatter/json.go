package formatter

import (
	"encoding/json"

	"github.com/Siddiq2772/scapper-with-ui/internal/browser"
	"github.com/Siddiq2772/scapper-with-ui/internal/detail"
	"github.com/Siddiq2772/scapper-with-ui/internal/extract"
)

// jsonFormatter formats output as JSON
type jsonFormatter struct{}

// NewJSON creates a new JSON formatter
func NewJSON() Formatter {
	return &jsonFormatter{}
}

// SnapshotOutput is the JSON form of a snapshot
type SnapshotOutput struct {
	View  string        `json:"view"`
	Path  []string      `json:"path"`
	Items []*ItemOutput `json:"items"`
	Empty string        `json:"empty,omitempty"`
}

// ItemOutput is one projected item
type ItemOutput struct {
	Kind    string `json:"kind"`
	Label   string `json:"label"`
	ID      string `json:"id,omitempty"`
	Summary string `json:"summary,omitempty"`
}

// DetailOutput is the JSON form of a problem detail
type DetailOutput struct {
	detail.Detail
	Text string `json:"text"`
}

func (f *jsonFormatter) FormatSnapshot(snap browser.Snapshot) ([]byte, error) {
	return json.MarshalIndent(createSnapshotOutput(snap), "", "  ")
}

func (f *jsonFormatter) FormatDetail(d detail.Detail) ([]byte, error) {
	return json.MarshalIndent(&DetailOutput{Detail: d, Text: extract.PlainText(d.Description)}, "", "  ")
}

// createSnapshotOutput flattens a snapshot for serialization
func createSnapshotOutput(snap browser.Snapshot) *SnapshotOutput {
	output := &SnapshotOutput{
		View:  snap.State.View().String(),
		Path:  make([]string, 0, len(snap.Breadcrumbs)),
		Items: make([]*ItemOutput, 0, len(snap.Result.Items)),
		Empty: emptyMessage(snap),
	}

	for _, seg := range snap.Breadcrumbs {
		output.Path = append(output.Path, seg.Label)
	}
	for _, item := range snap.Result.Items {
		output.Items = append(output.Items, &ItemOutput{
			Kind:    item.Kind.String(),
			Label:   item.Label,
			ID:      itemID(item),
			Summary: item.Card.ShortSummary,
		})
	}

	return output
}
