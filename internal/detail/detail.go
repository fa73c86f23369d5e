// Package detail assembles the full display template for one problem record.
package detail

import (
	"strings"

	"github.com/Siddiq2772/scapper-with-ui/internal/dataset"
	"github.com/Siddiq2772/scapper-with-ui/internal/extract"
)

// NotAvailable replaces absent optional fields
const NotAvailable = "N/A"

// Section titles, in display order after the header
const (
	SectionTheme       = "THEME"
	SectionSubmissions = "SUBMISSIONS"
	SectionDeadline    = "DEADLINE"
	SectionStatement   = "PROBLEM STATEMENT"
)

// Detail is the full view of a single record. Description is the raw,
// untruncated markup.
type Detail struct {
	ID           string `json:"id"`
	Organization string `json:"organization"`
	Category     string `json:"category"`
	Theme        string `json:"theme"`
	Submissions  string `json:"submitted_idea_count"`
	Deadline     string `json:"deadline"`
	Description  string `json:"description"`
}

// Section is a titled block of the detail view
type Section struct {
	Title string
	Body  string
}

// Assemble maps rec onto the display template
func Assemble(rec dataset.ProblemRecord) Detail {
	return Detail{
		ID:           rec.ID.String(),
		Organization: rec.Organization,
		Category:     rec.Category,
		Theme:        orNA(rec.Theme),
		Submissions:  countOrNA(rec.SubmittedIdeaCount.String()),
		Deadline:     orNA(rec.Deadline.String()),
		Description:  rec.Description,
	}
}

func orNA(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}

// countOrNA treats a zero idea count as absent; the scraper writes 0 when a
// page lists no submissions.
func countOrNA(s string) string {
	if s == "0" {
		return NotAvailable
	}
	return orNA(s)
}

// Sections returns the titled blocks below the header. The statement body is
// converted with convert, or left raw when convert is nil.
func (d Detail) Sections(convert func(string) string) []Section {
	statement := d.Description
	if convert != nil {
		statement = convert(statement)
	}
	return []Section{
		{Title: SectionTheme, Body: d.Theme},
		{Title: SectionSubmissions, Body: d.Submissions},
		{Title: SectionDeadline, Body: d.Deadline},
		{Title: SectionStatement, Body: statement},
	}
}

// Markdown renders the detail as a markdown document
func (d Detail) Markdown() string {
	var b strings.Builder

	b.WriteString("`ID: " + d.ID + "`\n\n")
	b.WriteString("# " + d.Organization + "\n\n")
	if d.Category != "" {
		b.WriteString("*" + d.Category + "*\n\n")
	}

	for _, s := range d.Sections(extract.Markdown) {
		b.WriteString("## " + s.Title + "\n\n")
		b.WriteString(s.Body + "\n\n")
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// PlainText renders the detail as unformatted text
func (d Detail) PlainText() string {
	var b strings.Builder

	b.WriteString("ID: " + d.ID + "\n")
	b.WriteString(d.Organization + "\n")
	b.WriteString(d.Category + "\n\n")

	for _, s := range d.Sections(extract.PlainText) {
		b.WriteString(s.Title + "\n")
		b.WriteString(s.Body + "\n\n")
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}
