// Package browser ties the dataset, navigation state and projections into a
// single session that front ends drive with discrete user actions.
package browser

import (
	"errors"
	"fmt"

	"github.com/Siddiq2772/scapper-with-ui/internal/dataset"
	"github.com/Siddiq2772/scapper-with-ui/internal/detail"
	"github.com/Siddiq2772/scapper-with-ui/internal/navigation"
	"github.com/Siddiq2772/scapper-with-ui/internal/projection"
)

// ErrTooDeep is returned by Goto for paths longer than the hierarchy
var ErrTooDeep = errors.New("path deeper than category/theme/organization")

// Snapshot is everything a front end needs to render the current state
type Snapshot struct {
	State       navigation.State
	Breadcrumbs []navigation.Segment
	Result      projection.Result
}

// Session owns the loaded dataset and the current navigation state
type Session struct {
	ds    *dataset.Dataset
	state navigation.State
}

// NewSession starts a session at the categories view
func NewSession(ds *dataset.Dataset) *Session {
	return &Session{ds: ds, state: navigation.New()}
}

// Dataset returns the loaded dataset
func (s *Session) Dataset() *dataset.Dataset {
	return s.ds
}

// State returns the current navigation state
func (s *Session) State() navigation.State {
	return s.state
}

// Replace swaps in a reloaded dataset and resets to the categories view
func (s *Session) Replace(ds *dataset.Dataset) {
	s.ds = ds
	s.state = navigation.New()
}

// SelectCategory descends into the themes of c
func (s *Session) SelectCategory(c string) {
	s.state = s.state.SelectCategory(c)
}

// SelectTheme descends into the organizations of t
func (s *Session) SelectTheme(t string) {
	s.state = s.state.SelectTheme(t)
}

// SelectOrganization descends into the problems of o
func (s *Session) SelectOrganization(o string) {
	s.state = s.state.SelectOrganization(o)
}

// ToCategories returns to the category list
func (s *Session) ToCategories() {
	s.state = s.state.ToCategories()
}

// ToThemes jumps to the themes of category c
func (s *Session) ToThemes(c string) {
	s.state = s.state.ToThemes(c)
}

// ToOrganizations jumps to the organizations of c and t
func (s *Session) ToOrganizations(c, t string) {
	s.state = s.state.ToOrganizations(c, t)
}

// Follow applies a clicked breadcrumb segment
func (s *Session) Follow(seg navigation.Segment) {
	s.state = navigation.Follow(s.state, seg)
}

// Up ascends one level; a no-op at the categories view
func (s *Session) Up() {
	s.state = navigation.Parent(s.state)
}

// Open activates an item. Group items descend one level and return false.
// Problem items leave the state untouched and return their detail.
func (s *Session) Open(item projection.Item) (detail.Detail, bool) {
	switch item.Kind {
	case projection.KindCategory:
		s.SelectCategory(item.Label)
	case projection.KindTheme:
		s.SelectTheme(item.Label)
	case projection.KindOrganization:
		s.SelectOrganization(item.Label)
	case projection.KindProblem:
		if item.Record != nil {
			return detail.Assemble(*item.Record), true
		}
	}
	return detail.Detail{}, false
}

// Goto jumps to the state implied by path: no elements for categories, then
// category, theme and organization in order.
func (s *Session) Goto(path ...string) error {
	switch len(path) {
	case 0:
		s.ToCategories()
	case 1:
		s.ToThemes(path[0])
	case 2:
		s.ToOrganizations(path[0], path[1])
	case 3:
		s.state = s.state.ToOrganizations(path[0], path[1]).SelectOrganization(path[2])
	default:
		return fmt.Errorf("%w: %d elements", ErrTooDeep, len(path))
	}
	return nil
}

// Snapshot projects the current state
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		State:       s.state,
		Breadcrumbs: navigation.Breadcrumbs(s.state),
		Result:      projection.Project(s.ds, s.state),
	}
}

// Lookup returns the detail for the record with the given id
func (s *Session) Lookup(id string) (detail.Detail, error) {
	rec, ok := s.ds.ByID(id)
	if !ok {
		return detail.Detail{}, fmt.Errorf("%w: %q", dataset.ErrNotFound, id)
	}
	return detail.Assemble(rec), nil
}
