package formatter

import (
	"strings"

	"github.com/Siddiq2772/scapper-with-ui/internal/browser"
	"github.com/Siddiq2772/scapper-with-ui/internal/navigation"
	"github.com/Siddiq2772/scapper-with-ui/internal/projection"
)

// PathSeparator joins breadcrumb labels in text and markdown output
const PathSeparator = " › "

// breadcrumbPath joins segment labels
func breadcrumbPath(segments []navigation.Segment) string {
	labels := make([]string, 0, len(segments))
	for _, seg := range segments {
		labels = append(labels, seg.Label)
	}
	return strings.Join(labels, PathSeparator)
}

// itemID returns the problem id of item, or "" for group items
func itemID(item projection.Item) string {
	if item.Record == nil {
		return ""
	}
	return item.Record.ID.String()
}

// emptyMessage returns the placeholder when snap has no items
func emptyMessage(snap browser.Snapshot) string {
	if len(snap.Result.Items) > 0 {
		return ""
	}
	return snap.Result.Empty
}

// kindKey maps an item kind to its emoji key
func kindKey(kind projection.Kind) string {
	return kind.String()
}

// viewTitle capitalizes the view name for headings
func viewTitle(v navigation.View) string {
	name := v.String()
	return strings.ToUpper(name[:1]) + name[1:]
}
