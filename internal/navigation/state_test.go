package navigation

import (
	"testing"
)

// walk drives a state through the full drill-down
func walk() []State {
	s0 := New()
	s1 := s0.SelectCategory("Health")
	s2 := s1.SelectTheme("AI")
	s3 := s2.SelectOrganization("Acme")
	return []State{s0, s1, s2, s3}
}

func TestInitialState(t *testing.T) {
	s := New()
	if s.View() != Categories {
		t.Errorf("Expected Categories, got %s", s.View())
	}
	if _, ok := s.Category(); ok {
		t.Error("Expected no category selected")
	}
	if _, ok := s.Theme(); ok {
		t.Error("Expected no theme selected")
	}
	if _, ok := s.Organization(); ok {
		t.Error("Expected no organization selected")
	}
}

func TestDrillDown(t *testing.T) {
	states := walk()
	final := states[3]

	if final.View() != Problems {
		t.Fatalf("Expected Problems, got %s", final.View())
	}
	if c, _ := final.Category(); c != "Health" {
		t.Errorf("Expected category Health, got %s", c)
	}
	if th, _ := final.Theme(); th != "AI" {
		t.Errorf("Expected theme AI, got %s", th)
	}
	if o, ok := final.Organization(); !ok || o != "Acme" {
		t.Errorf("Expected organization Acme, got %q (%v)", o, ok)
	}
}

func TestSelectionPrefixInvariant(t *testing.T) {
	for _, s := range walk() {
		_, hasCategory := s.Category()
		_, hasTheme := s.Theme()
		_, hasOrg := s.Organization()

		set := 0
		for _, ok := range []bool{hasCategory, hasTheme, hasOrg} {
			if ok {
				set++
			}
		}
		if set != s.Depth() {
			t.Errorf("%s: expected %d selections, got %d", s.View(), s.Depth(), set)
		}
		// prefix: a deeper selection implies every shallower one
		if hasTheme && !hasCategory {
			t.Errorf("%s: theme set without category", s.View())
		}
		if hasOrg && !hasTheme {
			t.Errorf("%s: organization set without theme", s.View())
		}
	}
}

func TestJumpsResetDeeperLevels(t *testing.T) {
	deep := walk()[3]

	tests := []struct {
		name     string
		got      State
		wantView View
	}{
		{name: "to categories", got: deep.ToCategories(), wantView: Categories},
		{name: "to themes", got: deep.ToThemes("Energy"), wantView: Themes},
		{name: "to organizations", got: deep.ToOrganizations("Energy", "Grid"), wantView: Organizations},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.View() != tt.wantView {
				t.Errorf("Expected %s, got %s", tt.wantView, tt.got.View())
			}
			if _, ok := tt.got.Organization(); ok {
				t.Error("Expected organization cleared")
			}
			if tt.wantView < Organizations {
				if _, ok := tt.got.Theme(); ok {
					t.Error("Expected theme cleared")
				}
			}
		})
	}

	if th, _ := deep.ToOrganizations("Energy", "Grid").Theme(); th != "Grid" {
		t.Errorf("Expected theme Grid, got %s", th)
	}
}

func TestToCategoriesIdempotent(t *testing.T) {
	for _, s := range walk() {
		once := s.ToCategories()
		twice := once.ToCategories()
		if once != twice {
			t.Errorf("ToCategories not idempotent from %s: %+v vs %+v", s.View(), once, twice)
		}
		if once != New() {
			t.Errorf("ToCategories from %s did not reset: %+v", s.View(), once)
		}
	}
}

func TestSelectOutsideItsViewKeepsHeldAncestors(t *testing.T) {
	states := walk()

	tests := []struct {
		name string
		got  State
		want State
	}{
		{
			name: "category from problems",
			got:  states[3].SelectCategory("Energy"),
			want: New().ToThemes("Energy"),
		},
		{
			name: "theme from problems",
			got:  states[3].SelectTheme("Grid"),
			want: New().ToOrganizations("Health", "Grid"),
		},
		{
			name: "theme from categories",
			got:  states[0].SelectTheme("AI"),
			want: New().ToOrganizations("", "AI"),
		},
		{
			name: "organization from problems",
			got:  states[3].SelectOrganization("Beta"),
			want: states[2].SelectOrganization("Beta"),
		},
		{
			name: "organization from themes",
			got:  states[1].SelectOrganization("Acme"),
			want: New().ToOrganizations("Health", "").SelectOrganization("Acme"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, tt.got)
			}
		})
	}

	if o, ok := states[3].SelectOrganization("Beta").Organization(); !ok || o != "Beta" {
		t.Errorf("Expected organization Beta, got %q (%v)", o, ok)
	}
}

func TestEmptyStringIsAValidSelection(t *testing.T) {
	s := New().SelectCategory("")
	c, ok := s.Category()
	if !ok || c != "" {
		t.Errorf("Expected empty category to be selected, got %q (%v)", c, ok)
	}
	if len(Breadcrumbs(s)) != 2 {
		t.Errorf("Expected a breadcrumb for the empty category, got %d segments", len(Breadcrumbs(s)))
	}
}
