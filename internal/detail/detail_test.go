package detail

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Siddiq2772/scapper-with-ui/internal/dataset"
)

func TestAssemble(t *testing.T) {
	tests := []struct {
		name string
		rec  dataset.ProblemRecord
		want Detail
	}{
		{
			name: "all fields present",
			rec: dataset.ProblemRecord{
				ID:                 "SIH1",
				Category:           "Software",
				Theme:              "Health",
				Organization:       "Acme",
				Description:        "<p>full text</p>",
				SubmittedIdeaCount: "12",
				Deadline:           "31-12-2024",
			},
			want: Detail{
				ID:           "SIH1",
				Organization: "Acme",
				Category:     "Software",
				Theme:        "Health",
				Submissions:  "12",
				Deadline:     "31-12-2024",
				Description:  "<p>full text</p>",
			},
		},
		{
			name: "optional fields fall back",
			rec: dataset.ProblemRecord{
				ID:           "2",
				Category:     "Hardware",
				Organization: "Beta",
			},
			want: Detail{
				ID:           "2",
				Organization: "Beta",
				Category:     "Hardware",
				Theme:        NotAvailable,
				Submissions:  NotAvailable,
				Deadline:     NotAvailable,
			},
		},
		{
			name: "zero idea count is not available",
			rec: dataset.ProblemRecord{
				ID:                 "3",
				Category:           "Software",
				Theme:              "Health",
				Organization:       "Gamma",
				SubmittedIdeaCount: "0",
				Deadline:           "0",
			},
			want: Detail{
				ID:           "3",
				Organization: "Gamma",
				Category:     "Software",
				Theme:        "Health",
				Submissions:  NotAvailable,
				Deadline:     "0",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Assemble(tt.rec)); diff != "" {
				t.Errorf("Assemble mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDescriptionIsNotTruncated(t *testing.T) {
	long := strings.Repeat("a", 500)
	if got := Assemble(dataset.ProblemRecord{Description: long}).Description; got != long {
		t.Errorf("Expected full description, got %d bytes", len(got))
	}
}

func TestMarkdown(t *testing.T) {
	d := Assemble(dataset.ProblemRecord{
		ID:           "7",
		Category:     "Software",
		Organization: "Acme",
		Description:  "<table><tr><td>Description</td><td>Background: cure stuff</td></tr></table>",
	})

	got := d.Markdown()
	for _, want := range []string{
		"`ID: 7`",
		"# Acme",
		"*Software*",
		"## THEME\n\nN/A",
		"## SUBMISSIONS\n\nN/A",
		"## DEADLINE\n\nN/A",
		"## PROBLEM STATEMENT\n\n**Description**\n\nBackground: cure stuff",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected markdown to contain %q:\n%s", want, got)
		}
	}

	order := []string{SectionTheme, SectionSubmissions, SectionDeadline, SectionStatement}
	last := -1
	for _, title := range order {
		idx := strings.Index(got, "## "+title)
		if idx <= last {
			t.Errorf("Expected section %s after previous sections", title)
		}
		last = idx
	}
}

func TestPlainText(t *testing.T) {
	d := Assemble(dataset.ProblemRecord{ID: "1", Organization: "Acme", Description: "<b>bold</b> text"})
	got := d.PlainText()

	if !strings.HasPrefix(got, "ID: 1\nAcme\n") {
		t.Errorf("Unexpected header: %q", got)
	}
	if !strings.Contains(got, "PROBLEM STATEMENT\nbold text") {
		t.Errorf("Expected markup removed from statement, got %q", got)
	}
}

func TestSectionsRawWithoutConverter(t *testing.T) {
	d := Detail{Description: "<p>x</p>"}
	sections := d.Sections(nil)
	if got := sections[len(sections)-1].Body; got != "<p>x</p>" {
		t.Errorf("Expected raw markup, got %q", got)
	}
}
