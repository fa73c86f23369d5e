// Package projection computes what the browser shows at each hierarchy
// level: the distinct, sorted child values of the current selection, or the
// matching problem records.
package projection

import (
	"sort"

	"github.com/Siddiq2772/scapper-with-ui/internal/dataset"
	"github.com/Siddiq2772/scapper-with-ui/internal/extract"
	"github.com/Siddiq2772/scapper-with-ui/internal/navigation"
)

// Empty-state messages. Each is distinct from the loading and error states.
const (
	NoData     = "No data available."
	NoItems    = "No items found."
	NoProblems = "No problem statements found."
)

// Kind tags a display item with its hierarchy level
type Kind int

const (
	KindCategory Kind = iota
	KindTheme
	KindOrganization
	KindProblem
)

// String returns the kind name used in output formats
func (k Kind) String() string {
	switch k {
	case KindCategory:
		return "category"
	case KindTheme:
		return "theme"
	case KindOrganization:
		return "organization"
	case KindProblem:
		return "problem"
	default:
		return "unknown"
	}
}

// Item is one card of a projection. Problem items carry their record and
// extracted card text; group items carry only the grouping value.
type Item struct {
	Kind   Kind
	Label  string
	Record *dataset.ProblemRecord
	Card   extract.Card
}

// Result is the projection for one navigation state
type Result struct {
	View  navigation.View
	Items []Item
	// Empty is the placeholder to show when Items is empty
	Empty string
}

// Categories returns the distinct category values, ascending
func Categories(ds *dataset.Dataset) []string {
	return distinct(ds, func(dataset.ProblemRecord) bool { return true },
		func(rec dataset.ProblemRecord) string { return rec.Category })
}

// Themes returns the distinct themes within category, ascending
func Themes(ds *dataset.Dataset, category string) []string {
	return distinct(ds,
		func(rec dataset.ProblemRecord) bool { return rec.Category == category },
		func(rec dataset.ProblemRecord) string { return rec.Theme })
}

// Organizations returns the distinct organizations within category and
// theme, ascending
func Organizations(ds *dataset.Dataset, category, theme string) []string {
	return distinct(ds,
		func(rec dataset.ProblemRecord) bool { return rec.Category == category && rec.Theme == theme },
		func(rec dataset.ProblemRecord) string { return rec.Organization })
}

// Problems returns the records matching all three keys in dataset order
func Problems(ds *dataset.Dataset, category, theme, organization string) []dataset.ProblemRecord {
	var out []dataset.ProblemRecord
	ds.Range(func(_ int, rec dataset.ProblemRecord) bool {
		if rec.Category == category && rec.Theme == theme && rec.Organization == organization {
			out = append(out, rec)
		}
		return true
	})
	return out
}

// distinct collects key(rec) for every record passing keep, deduplicated by
// exact string equality and sorted by byte order.
func distinct(ds *dataset.Dataset, keep func(dataset.ProblemRecord) bool, key func(dataset.ProblemRecord) string) []string {
	seen := make(map[string]bool)
	values := make([]string, 0)

	ds.Range(func(_ int, rec dataset.ProblemRecord) bool {
		if !keep(rec) {
			return true
		}
		v := key(rec)
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
		return true
	})

	sort.Strings(values)
	return values
}

// Project computes the items for state s
func Project(ds *dataset.Dataset, s navigation.State) Result {
	category, _ := s.Category()
	theme, _ := s.Theme()
	organization, _ := s.Organization()

	switch s.View() {
	case navigation.Themes:
		return groups(s.View(), KindTheme, Themes(ds, category), NoItems)
	case navigation.Organizations:
		return groups(s.View(), KindOrganization, Organizations(ds, category, theme), NoItems)
	case navigation.Problems:
		records := Problems(ds, category, theme, organization)
		items := make([]Item, 0, len(records))
		for i := range records {
			card := extract.Extract(records[i].Description)
			items = append(items, Item{
				Kind:   KindProblem,
				Label:  card.Title,
				Record: &records[i],
				Card:   card,
			})
		}
		return Result{View: s.View(), Items: items, Empty: NoProblems}
	default:
		empty := NoItems
		if ds.Len() == 0 {
			empty = NoData
		}
		return groups(s.View(), KindCategory, Categories(ds), empty)
	}
}

func groups(view navigation.View, kind Kind, values []string, empty string) Result {
	items := make([]Item, 0, len(values))
	for _, v := range values {
		items = append(items, Item{Kind: kind, Label: v})
	}
	return Result{View: view, Items: items, Empty: empty}
}
