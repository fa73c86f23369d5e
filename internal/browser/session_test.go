package browser

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Siddiq2772/scapper-with-ui/internal/dataset"
	"github.com/Siddiq2772/scapper-with-ui/internal/navigation"
	"github.com/Siddiq2772/scapper-with-ui/internal/projection"
)

func scenario() *dataset.Dataset {
	return dataset.New([]dataset.ProblemRecord{{
		ID:           "1",
		Category:     "Health",
		Theme:        "AI",
		Organization: "Acme",
		Description:  "<table><tr><td>Description</td><td>Background: cure stuff</td></tr></table>",
	}})
}

func labels(items []projection.Item) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Label)
	}
	return out
}

func TestEndToEndDrillDown(t *testing.T) {
	s := NewSession(scenario())

	for _, want := range []string{"Health", "AI", "Acme"} {
		snap := s.Snapshot()
		if diff := cmp.Diff([]string{want}, labels(snap.Result.Items)); diff != "" {
			t.Fatalf("At %v (-want +got):\n%s", snap.State.View(), diff)
		}
		if _, opened := s.Open(snap.Result.Items[0]); opened {
			t.Fatalf("Opening a group item should not open a detail")
		}
	}

	snap := s.Snapshot()
	if snap.State.View() != navigation.Problems {
		t.Fatalf("Expected problems view, got %v", snap.State.View())
	}
	if len(snap.Result.Items) != 1 {
		t.Fatalf("Expected exactly one card, got %d", len(snap.Result.Items))
	}

	card := snap.Result.Items[0].Card
	if card.Title != "Problem Statement" {
		t.Errorf("Expected default title, got %q", card.Title)
	}
	if card.ShortSummary != "cure stuff" {
		t.Errorf("Expected summary %q, got %q", "cure stuff", card.ShortSummary)
	}

	if diff := cmp.Diff([]string{"Categories", "Health", "AI", "Acme"}, segmentLabels(snap.Breadcrumbs)); diff != "" {
		t.Errorf("Breadcrumbs mismatch (-want +got):\n%s", diff)
	}
}

func segmentLabels(segments []navigation.Segment) []string {
	out := make([]string, 0, len(segments))
	for _, seg := range segments {
		out = append(out, seg.Label)
	}
	return out
}

func TestOpenProblemKeepsState(t *testing.T) {
	s := NewSession(scenario())
	if err := s.Goto("Health", "AI", "Acme"); err != nil {
		t.Fatalf("Goto failed: %v", err)
	}
	before := s.State()

	d, opened := s.Open(s.Snapshot().Result.Items[0])
	if !opened {
		t.Fatal("Expected problem item to open a detail")
	}
	if d.ID != "1" || d.Theme != "AI" || d.Deadline != "N/A" {
		t.Errorf("Unexpected detail: %+v", d)
	}
	if s.State() != before {
		t.Error("Expected navigation state to be unchanged by opening a detail")
	}
}

func TestGoto(t *testing.T) {
	s := NewSession(scenario())

	tests := []struct {
		path []string
		want navigation.View
	}{
		{path: nil, want: navigation.Categories},
		{path: []string{"Health"}, want: navigation.Themes},
		{path: []string{"Health", "AI"}, want: navigation.Organizations},
		{path: []string{"Health", "AI", "Acme"}, want: navigation.Problems},
	}
	for _, tt := range tests {
		if err := s.Goto(tt.path...); err != nil {
			t.Fatalf("Goto(%v) failed: %v", tt.path, err)
		}
		if got := s.State().View(); got != tt.want {
			t.Errorf("Goto(%v) view = %v, want %v", tt.path, got, tt.want)
		}
	}

	if err := s.Goto("a", "b", "c", "d"); !errors.Is(err, ErrTooDeep) {
		t.Errorf("Expected ErrTooDeep, got %v", err)
	}
}

func TestFollowAndUp(t *testing.T) {
	s := NewSession(scenario())
	_ = s.Goto("Health", "AI", "Acme")

	crumbs := s.Snapshot().Breadcrumbs
	s.Follow(crumbs[1])
	if s.State().View() != navigation.Themes {
		t.Fatalf("Expected themes view after following category crumb, got %v", s.State().View())
	}

	s.Up()
	if s.State() != navigation.New() {
		t.Errorf("Expected categories after Up, got %v", s.State().View())
	}
	s.Up()
	if s.State() != navigation.New() {
		t.Error("Expected Up at categories to be a no-op")
	}
}

func TestReplaceResetsState(t *testing.T) {
	s := NewSession(scenario())
	_ = s.Goto("Health", "AI")

	s.Replace(dataset.New(nil))
	if s.State() != navigation.New() {
		t.Error("Expected reload to reset navigation")
	}
	if got := s.Snapshot().Result.Empty; got != projection.NoData {
		t.Errorf("Expected %q, got %q", projection.NoData, got)
	}
}

func TestLookup(t *testing.T) {
	s := NewSession(scenario())

	d, err := s.Lookup("1")
	if err != nil || d.Organization != "Acme" {
		t.Errorf("Expected Acme detail, got %+v (%v)", d, err)
	}
	if _, err := s.Lookup("nope"); !errors.Is(err, dataset.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestSessionTransitions(t *testing.T) {
	s := NewSession(scenario())

	s.SelectCategory("Health")
	s.SelectTheme("AI")
	s.SelectOrganization("Acme")
	if want := navigation.New().ToOrganizations("Health", "AI").SelectOrganization("Acme"); s.State() != want {
		t.Fatalf("Expected problems of Acme, got %+v", s.State())
	}

	s.ToOrganizations("Health", "AI")
	if s.State().View() != navigation.Organizations {
		t.Errorf("Expected organizations view, got %v", s.State().View())
	}

	s.ToThemes("Health")
	if c, _ := s.State().Category(); s.State().View() != navigation.Themes || c != "Health" {
		t.Errorf("Expected themes of Health, got %+v", s.State())
	}

	s.ToCategories()
	if s.State() != navigation.New() {
		t.Errorf("Expected categories view, got %+v", s.State())
	}
}
