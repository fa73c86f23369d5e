package projection

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// itemSource adapts items to fuzzy.Source
type itemSource []Item

func (s itemSource) String(i int) string {
	item := s[i]
	if item.Kind != KindProblem || item.Record == nil {
		return item.Label
	}
	return item.Label + " " + item.Record.ID.String() + " " + item.Card.ShortSummary
}

func (s itemSource) Len() int { return len(s) }

// Filter narrows items to those fuzzily matching query, best match first.
// A blank query returns items unchanged.
func Filter(items []Item, query string) []Item {
	query = strings.TrimSpace(query)
	if query == "" {
		return items
	}

	matches := fuzzy.FindFrom(query, itemSource(items))
	out := make([]Item, 0, len(matches))
	for _, match := range matches {
		out = append(out, items[match.Index])
	}
	return out
}
