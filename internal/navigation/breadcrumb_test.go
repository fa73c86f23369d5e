package navigation

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func labels(segments []Segment) []string {
	out := make([]string, 0, len(segments))
	for _, seg := range segments {
		out = append(out, seg.Label)
	}
	return out
}

func TestBreadcrumbLabels(t *testing.T) {
	states := walk()
	want := [][]string{
		{"Categories"},
		{"Categories", "Health"},
		{"Categories", "Health", "AI"},
		{"Categories", "Health", "AI", "Acme"},
	}

	for i, s := range states {
		if diff := cmp.Diff(want[i], labels(Breadcrumbs(s))); diff != "" {
			t.Errorf("%s breadcrumbs mismatch (-want +got):\n%s", s.View(), diff)
		}
	}
}

func TestBreadcrumbActiveCount(t *testing.T) {
	for _, s := range walk() {
		segments := Breadcrumbs(s)

		inactive := 0
		for i, seg := range segments {
			if seg.Active != (i == len(segments)-1) {
				t.Errorf("%s: segment %d active=%v", s.View(), i, seg.Active)
			}
			if !seg.Active {
				inactive++
			}
		}
		if inactive != s.Depth() {
			t.Errorf("%s: expected %d clickable segments, got %d", s.View(), s.Depth(), inactive)
		}
	}
}

func TestFollowBreadcrumbs(t *testing.T) {
	deep := walk()[3]
	segments := Breadcrumbs(deep)

	wantViews := []View{Categories, Themes, Organizations, Problems}
	for i, seg := range segments {
		got := Follow(deep, seg)
		if got.View() != wantViews[i] {
			t.Errorf("segment %q: expected %s, got %s", seg.Label, wantViews[i], got.View())
		}
	}

	if got := Follow(deep, segments[2]); got != deep.ToOrganizations("Health", "AI") {
		t.Errorf("Theme segment should re-invoke ToOrganizations, got %+v", got)
	}
	if got := Follow(deep, segments[3]); got != deep {
		t.Errorf("Active segment should keep state, got %+v", got)
	}
}

func TestParent(t *testing.T) {
	states := walk()

	if got := Parent(states[0]); got != states[0] {
		t.Errorf("Categories parent should be itself, got %+v", got)
	}
	for i := 1; i < len(states); i++ {
		if got := Parent(states[i]); got != states[i-1] {
			t.Errorf("Parent of %s: expected %+v, got %+v", states[i].View(), states[i-1], got)
		}
	}
}
