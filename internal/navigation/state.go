// Package navigation holds the drill-down state of the browser: which
// hierarchy level is shown and which ancestors were selected to reach it.
//
// State is a comparable value. Transitions return a new State and never fail;
// the selections held are always exactly the ancestors of the current view.
package navigation

// View is a level of the category → theme → organization → problem hierarchy
type View int

const (
	Categories View = iota
	Themes
	Organizations
	Problems
)

// String returns the level name
func (v View) String() string {
	switch v {
	case Categories:
		return "categories"
	case Themes:
		return "themes"
	case Organizations:
		return "organizations"
	case Problems:
		return "problems"
	default:
		return "unknown"
	}
}

// State is the current view and its ancestor selections
type State struct {
	view         View
	category     string
	theme        string
	organization string
}

// New returns the initial state: the category list with nothing selected
func New() State {
	return State{view: Categories}
}

// View returns the active hierarchy level
func (s State) View() View {
	return s.view
}

// Category returns the selected category; ok is false above the theme level.
func (s State) Category() (category string, ok bool) {
	return s.category, s.view >= Themes
}

// Theme returns the selected theme; ok is false above the organization level.
func (s State) Theme() (theme string, ok bool) {
	return s.theme, s.view >= Organizations
}

// Organization returns the selected organization; ok is true only on the
// problem level.
func (s State) Organization() (organization string, ok bool) {
	return s.organization, s.view == Problems
}

// Depth is the number of selections in effect
func (s State) Depth() int {
	return int(s.view)
}

// SelectCategory descends from the category list into c's themes. Like
// every transition it is total: from any view it behaves as ToThemes(c).
func (s State) SelectCategory(c string) State {
	return s.ToThemes(c)
}

// SelectTheme descends from the theme list into t's organizations, keeping
// the held category
func (s State) SelectTheme(t string) State {
	return s.ToOrganizations(s.category, t)
}

// SelectOrganization descends from the organization list into o's problems,
// keeping the held category and theme
func (s State) SelectOrganization(o string) State {
	return State{view: Problems, category: s.category, theme: s.theme, organization: o}
}

// ToCategories jumps to the category list and clears every selection
func (s State) ToCategories() State {
	return New()
}

// ToThemes jumps to the themes of category c
func (s State) ToThemes(c string) State {
	return State{view: Themes, category: c}
}

// ToOrganizations jumps to the organizations of category c and theme t
func (s State) ToOrganizations(c, t string) State {
	return State{view: Organizations, category: c, theme: t}
}
