package ui

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

var (
	mdRendererMu sync.Mutex
	// keyed by style and wrap width
	mdRenderers = map[string]*glamour.TermRenderer{}
)

// renderMarkdown renders md for the given width, returning md unchanged if
// the renderer cannot be built.
func renderMarkdown(md, style string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	style = resolveMarkdownStyle(style)
	key := style + ":" + strconv.Itoa(width)

	mdRendererMu.Lock()
	r := mdRenderers[key]
	mdRendererMu.Unlock()

	if r == nil {
		// WithAutoStyle queries the terminal background and can block
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		mdRendererMu.Lock()
		if existing := mdRenderers[key]; existing != nil {
			r = existing
		} else {
			mdRenderers[key] = rr
			r = rr
		}
		mdRendererMu.Unlock()
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

// resolveMarkdownStyle maps "auto" to dark or light without querying the
// terminal. COLORFGBG is "fg;bg"; a background of 7 or 15 is light.
func resolveMarkdownStyle(style string) string {
	switch style {
	case "dark", "light", "notty":
		return style
	}
	if IsColorDisabled() {
		return "notty"
	}
	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		switch parts[len(parts)-1] {
		case "7", "15":
			return "light"
		}
	}
	return "dark"
}
