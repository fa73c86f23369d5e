package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Siddiq2772/scapper-with-ui/internal/emoji"
	"github.com/Siddiq2772/scapper-with-ui/internal/navigation"
	"github.com/Siddiq2772/scapper-with-ui/internal/projection"
)

// Screen rows: title at 0, breadcrumbs, filter, then cards from listTop
const (
	breadcrumbRow = 1
	listTop       = 3
	footerLines   = 1
)

// Overlay space taken by border, padding, header and footer
const (
	overlayChromeWidth  = 4
	overlayChromeHeight = 4
	overlayMaxWidth     = 100
)

const crumbSeparator = " › "

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// span is a half-open column range on one row
type span struct {
	start, end int
}

// View renders the model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case ScreenLoading:
		return m.renderLoading()
	case ScreenError:
		return m.renderError()
	}

	if m.detail != nil {
		return m.renderDetail()
	}
	return m.renderBrowse()
}

func (m *Model) render(style lipgloss.Style, text string) string {
	return m.styles.Theme.StyledText(text, &style)
}

func (m *Model) renderLoading() string {
	loading := m.spinner.View() + " " + m.render(m.styles.Title, "Loading problem statements...")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, loading)
}

func (m *Model) renderError() string {
	message := m.render(m.styles.Error, emoji.GetEmoji("error")+" "+LoadErrorMessage)
	body := lipgloss.Place(m.width, m.height-listTop-footerLines, lipgloss.Center, lipgloss.Center, message)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTitle(),
		"",
		"",
		body,
		m.renderHelp([]key.Binding{m.keys.Quit}),
	)
}

func (m *Model) renderBrowse() string {
	lines := []string{
		m.renderTitle(),
		m.renderBreadcrumbs(),
		m.renderFilterLine(),
	}
	lines = append(lines, m.renderCards()...)

	for len(lines) < m.height-footerLines {
		lines = append(lines, "")
	}
	lines = append(lines, m.renderHelp(m.keys.browseHelp()))
	return strings.Join(lines, "\n")
}

func (m *Model) renderTitle() string {
	title := m.render(m.styles.Title, "psbrowse")
	if m.session != nil {
		title += m.render(m.styles.Muted, " · "+m.session.State().View().String())
	}
	if m.status != "" {
		title += "  " + m.render(m.styles.Info, m.status)
	}
	return ansi.Truncate(title, m.width, "…")
}

func (m *Model) renderBreadcrumbs() string {
	parts := make([]string, 0, len(m.snapshot.Breadcrumbs))
	for _, seg := range m.snapshot.Breadcrumbs {
		if seg.Active {
			parts = append(parts, m.render(m.styles.BreadcrumbActive, seg.Label))
		} else {
			parts = append(parts, m.render(m.styles.Breadcrumb, seg.Label))
		}
	}
	return ansi.Truncate(strings.Join(parts, m.render(m.styles.Muted, crumbSeparator)), m.width, "…")
}

// crumbSpans returns the columns covered by each breadcrumb label
func (m *Model) crumbSpans() []span {
	spans := make([]span, 0, len(m.snapshot.Breadcrumbs))
	x := 0
	sep := ansi.StringWidth(crumbSeparator)
	for _, seg := range m.snapshot.Breadcrumbs {
		w := ansi.StringWidth(seg.Label)
		spans = append(spans, span{start: x, end: x + w})
		x += w + sep
	}
	return spans
}

func (m *Model) renderFilterLine() string {
	if m.filtering || m.filter.Value() != "" {
		return m.filter.View()
	}
	return ""
}

// cardHeight is the number of rows per card in the current view
func (m *Model) cardHeight() int {
	if m.session != nil && m.session.State().View() == navigation.Problems {
		return 2
	}
	return 1
}

func (m *Model) listHeight() int {
	h := m.height - listTop - footerLines
	if h < 1 {
		return 1
	}
	return h
}

func (m *Model) visibleCards() int {
	n := m.listHeight() / m.cardHeight()
	if n < 1 {
		return 1
	}
	return n
}

func (m *Model) renderCards() []string {
	if len(m.items) == 0 {
		msg := m.snapshot.Result.Empty
		if m.filter.Value() != "" {
			msg = projection.NoItems
		}
		return []string{m.render(m.styles.Muted, "  "+msg)}
	}

	end := m.offset + m.visibleCards()
	if end > len(m.items) {
		end = len(m.items)
	}

	lines := make([]string, 0, (end-m.offset)*m.cardHeight())
	for i := m.offset; i < end; i++ {
		lines = append(lines, m.renderCard(m.items[i], i == m.cursor)...)
	}
	return lines
}

func (m *Model) renderCard(item projection.Item, selected bool) []string {
	prefix := "  "
	style := m.styles.Card
	if selected {
		prefix = "▸ "
		style = m.styles.CardSelected
	}

	head := prefix + emoji.GetEmoji(item.Kind.String()) + " " + item.Label
	if item.Kind != projection.KindProblem {
		return []string{m.render(style, ansi.Truncate(head, m.width, "…"))}
	}

	id := ""
	if item.Record != nil {
		id = "  #" + item.Record.ID.String()
	}
	width := m.width - ansi.StringWidth(id)
	if width < 1 {
		width = 1
	}
	summary := ansi.Truncate("    "+item.Card.ShortSummary, m.width, "…")

	return []string{
		m.render(style, ansi.Truncate(head, width, "…")) + m.render(m.styles.Muted, id),
		m.render(m.styles.CardSummary, summary),
	}
}

func (m *Model) renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return m.render(m.styles.Footer, ansi.Truncate(strings.Join(parts, " • "), m.width, "…"))
}

// overlayRect is where the detail overlay is drawn, matching lipgloss.Place
// centering
func (m *Model) overlayRect() rect {
	w := m.width - 4
	if w > overlayMaxWidth {
		w = overlayMaxWidth
	}
	if w < 20 {
		w = m.width
	}
	h := m.height - 2
	if h < overlayChromeHeight+2 {
		h = m.height
	}
	return rect{
		x: (m.width - w + 1) / 2,
		y: (m.height - h + 1) / 2,
		w: w,
		h: h,
	}
}

func (m *Model) renderDetail() string {
	r := m.overlayRect()
	inner := r.w - overlayChromeWidth

	header := m.render(m.styles.Title, ansi.Truncate("ID: "+m.detail.ID+" · "+m.detail.Organization, inner, "…"))
	footer := m.renderHelp(m.keys.detailHelp())

	box := m.styles.Overlay.
		Width(r.w - 2).
		Height(r.h - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View(), footer))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// handleMouse maps clicks onto cards, breadcrumbs and the overlay
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.screen != ScreenBrowse {
		return m, nil
	}

	if m.detail != nil {
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress &&
			!m.overlayRect().contains(msg.X, msg.Y) {
			m.detail = nil
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.moveCursor(-1)
	case tea.MouseButtonWheelDown:
		m.moveCursor(1)
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		return m.handleClick(msg.X, msg.Y)
	}
	return m, nil
}

func (m *Model) handleClick(x, y int) (tea.Model, tea.Cmd) {
	if y == breadcrumbRow {
		for i, s := range m.crumbSpans() {
			if x >= s.start && x < s.end {
				return m.handleCrumb(i)
			}
		}
		return m, nil
	}

	if y < listTop || y >= listTop+m.listHeight() {
		return m, nil
	}
	index := m.offset + (y-listTop)/m.cardHeight()
	if index >= len(m.items) {
		return m, nil
	}
	m.cursor = index
	return m.handleOpen(index)
}
