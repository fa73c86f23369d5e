package navigation

// RootLabel is the label of the first breadcrumb segment
const RootLabel = "Categories"

// Segment is one entry of the breadcrumb trail
type Segment struct {
	Label string
	// Target is the state reached by following the segment.
	Target State
	// Active marks the segment for the current view; it has no target to
	// follow.
	Active bool
}

// Breadcrumbs derives the trail for s: Categories, then each selection held,
// in hierarchy order. The last segment is the active one.
func Breadcrumbs(s State) []Segment {
	segments := make([]Segment, 0, s.Depth()+1)
	segments = append(segments, Segment{Label: RootLabel, Target: s.ToCategories()})

	if c, ok := s.Category(); ok {
		segments = append(segments, Segment{Label: c, Target: s.ToThemes(c)})
	}
	if t, ok := s.Theme(); ok {
		segments = append(segments, Segment{Label: t, Target: s.ToOrganizations(s.category, t)})
	}
	if o, ok := s.Organization(); ok {
		segments = append(segments, Segment{Label: o, Target: s})
	}

	last := len(segments) - 1
	segments[last].Active = true
	segments[last].Target = s
	return segments
}

// Follow returns the state a breadcrumb segment navigates to. Following the
// active segment keeps the current state.
func Follow(current State, seg Segment) State {
	if seg.Active {
		return current
	}
	return seg.Target
}

// Parent returns the state one level above s; the category list is its own
// parent.
func Parent(s State) State {
	segments := Breadcrumbs(s)
	if len(segments) < 2 {
		return s
	}
	return segments[len(segments)-2].Target
}
