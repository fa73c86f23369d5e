package dataset

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTextUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Text
		wantErr bool
	}{
		{name: "string", input: `"31-12-2024"`, want: "31-12-2024"},
		{name: "integer", input: `42`, want: "42"},
		{name: "decimal keeps literal", input: `1.50`, want: "1.50"},
		{name: "null", input: `null`, want: ""},
		{name: "bool rejected", input: `true`, wantErr: true},
		{name: "object rejected", input: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Text
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error for %s", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRecordDecoding(t *testing.T) {
	input := `{"id": 1728, "category": "Software", "theme": "Smart Automation",
		"organization": "Ministry of Jal Shakti", "description": "<p>x</p>",
		"submitted_idea_count": 12}`

	var rec ProblemRecord
	if err := json.Unmarshal([]byte(input), &rec); err != nil {
		t.Fatalf("Failed to decode record: %v", err)
	}

	want := ProblemRecord{
		ID:                 "1728",
		Category:           "Software",
		Theme:              "Smart Automation",
		Organization:       "Ministry of Jal Shakti",
		Description:        "<p>x</p>",
		SubmittedIdeaCount: "12",
	}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestDatasetIsolation(t *testing.T) {
	records := []ProblemRecord{{ID: "1", Category: "Health"}}
	ds := New(records)

	records[0].Category = "Changed"
	if got := ds.At(0).Category; got != "Health" {
		t.Errorf("Dataset observed caller mutation: got %s", got)
	}

	out := ds.Records()
	out[0].Category = "Changed again"
	if got := ds.At(0).Category; got != "Health" {
		t.Errorf("Dataset observed mutation through Records(): got %s", got)
	}
}

func TestDatasetByID(t *testing.T) {
	ds := New([]ProblemRecord{
		{ID: "1", Organization: "first"},
		{ID: "2", Organization: "second"},
		{ID: "1", Organization: "duplicate"},
	})

	rec, ok := ds.ByID("1")
	if !ok {
		t.Fatal("Expected record 1 to be found")
	}
	if rec.Organization != "first" {
		t.Errorf("Expected first occurrence to win, got %s", rec.Organization)
	}

	if _, ok := ds.ByID("missing"); ok {
		t.Error("Expected missing id not to be found")
	}
}

func TestNilDataset(t *testing.T) {
	var ds *Dataset

	if ds.Len() != 0 {
		t.Errorf("Expected nil dataset to be empty, got %d", ds.Len())
	}
	if ds.Records() != nil {
		t.Error("Expected nil records from nil dataset")
	}
	if _, ok := ds.ByID("1"); ok {
		t.Error("Expected no records in nil dataset")
	}

	calls := 0
	ds.Range(func(int, ProblemRecord) bool {
		calls++
		return true
	})
	if calls != 0 {
		t.Errorf("Expected no Range calls, got %d", calls)
	}
}

func TestRangeStopsEarly(t *testing.T) {
	ds := New([]ProblemRecord{{ID: "1"}, {ID: "2"}, {ID: "3"}})

	var seen []string
	ds.Range(func(_ int, rec ProblemRecord) bool {
		seen = append(seen, rec.ID.String())
		return len(seen) < 2
	})

	if diff := cmp.Diff([]string{"1", "2"}, seen); diff != "" {
		t.Errorf("Range order mismatch (-want +got):\n%s", diff)
	}
}
