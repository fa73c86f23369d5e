package ui

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Siddiq2772/scapper-with-ui/internal/browser"
	"github.com/Siddiq2772/scapper-with-ui/internal/dataset"
	"github.com/Siddiq2772/scapper-with-ui/internal/detail"
	"github.com/Siddiq2772/scapper-with-ui/internal/emoji"
	"github.com/Siddiq2772/scapper-with-ui/internal/logger"
	"github.com/Siddiq2772/scapper-with-ui/internal/navigation"
	"github.com/Siddiq2772/scapper-with-ui/internal/projection"
)

// LoadErrorMessage is shown in place of the content when no dataset loads
const LoadErrorMessage = "Error loading data. Make sure to run the scraper first."

// Default terminal size until the first WindowSizeMsg arrives
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Screen is the top-level state of the browser
type Screen int

const (
	ScreenLoading Screen = iota
	ScreenError
	ScreenBrowse
)

// Options configures a browser model
type Options struct {
	Context context.Context
	Loader  *dataset.Loader
	// Watcher, if set, triggers a reload whenever the dataset files change
	Watcher       *dataset.Watcher
	Log           *logger.Logger
	MarkdownStyle string
	// Clipboard defaults to the system clipboard
	Clipboard func(string) error
}

// Model is the interactive problem statement browser
type Model struct {
	ctx     context.Context
	loader  *dataset.Loader
	watcher *dataset.Watcher
	log     *logger.Logger
	clip    func(string) error
	mdStyle string

	keys   keyMap
	styles *Styles

	width  int
	height int

	screen  Screen
	err     error
	spinner spinner.Model
	status  string

	session  *browser.Session
	snapshot browser.Snapshot
	items    []projection.Item
	cursor   int
	offset   int

	filtering bool
	filter    textinput.Model

	detail   *detail.Detail
	viewport viewport.Model

	quitting bool
}

// NewModel creates a browser model in the loading state
func NewModel(opts Options) *Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.Log
	if log == nil {
		log = logger.Discard()
	}
	write := opts.Clipboard
	if write == nil {
		write = clipboard.WriteAll
	}

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	styles := GetStyles()
	sp.Style = styles.Title

	filter := textinput.New()
	filter.Prompt = "/ "
	filter.Placeholder = "filter"
	filter.CharLimit = 120

	return &Model{
		ctx:      ctx,
		loader:   opts.Loader,
		watcher:  opts.Watcher,
		log:      log.WithComponent("ui"),
		clip:     write,
		mdStyle:  opts.MarkdownStyle,
		keys:     defaultKeyMap(),
		styles:   styles,
		width:    defaultWidth,
		height:   defaultHeight,
		screen:   ScreenLoading,
		spinner:  sp,
		filter:   filter,
		viewport: viewport.New(defaultWidth, defaultHeight),
	}
}

// Init starts the dataset load
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.loader != nil {
		cmds = append(cmds, LoadDatasetCommand(m.ctx, m.loader))
	}
	if m.watcher != nil {
		cmds = append(cmds, WatchDatasetCommand(m.ctx, m.watcher))
	}
	return tea.Batch(cmds...)
}

// Screen returns the current top-level state
func (m *Model) Screen() Screen {
	return m.screen
}

// State returns the navigation state, or the initial state before loading
func (m *Model) State() navigation.State {
	if m.session == nil {
		return navigation.New()
	}
	return m.session.State()
}

// Update handles messages and navigation
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case spinner.TickMsg:
		return m.handleSpinner(msg)
	case datasetLoadedMsg:
		return m.handleDatasetLoaded(msg)
	case datasetErrorMsg:
		return m.handleDatasetError(msg)
	case datasetChangedMsg:
		return m.handleDatasetChanged(msg)
	case watchErrorMsg:
		return m.handleWatchError(msg)
	case clipboardMsg:
		return m.handleClipboard(msg)
	}

	return m, nil
}

func (m *Model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.clampOffset()
	if m.detail != nil {
		m.layoutDetail()
	}
	return m, nil
}

func (m *Model) handleSpinner(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	if m.screen != ScreenLoading {
		return m, nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m *Model) handleDatasetLoaded(msg datasetLoadedMsg) (tea.Model, tea.Cmd) {
	// a failed initial load is final
	if m.screen == ScreenError {
		return m, nil
	}

	m.log.DebugWithFields("dataset ready", []logger.Field{
		logger.Count(msg.ds.Len()),
		logger.Duration(msg.elapsed),
	})

	if m.session == nil {
		m.session = browser.NewSession(msg.ds)
	} else {
		m.session.Replace(msg.ds)
		m.status = emoji.GetEmoji("reload") + fmt.Sprintf(" Reloaded %d problem statements", msg.ds.Len())
	}

	m.screen = ScreenBrowse
	m.err = nil
	m.detail = nil
	m.refresh()
	return m, nil
}

func (m *Model) handleDatasetError(msg datasetErrorMsg) (tea.Model, tea.Cmd) {
	if m.screen == ScreenError {
		return m, nil
	}
	if m.session != nil {
		// a failed reload keeps the current dataset
		m.log.WarnWithFields("reload failed", []logger.Field{logger.Error(msg.err)})
		m.status = emoji.GetEmoji("warning") + " Reload failed, keeping current data"
		return m, nil
	}

	m.log.Error("dataset load failed: %v", msg.err)
	m.screen = ScreenError
	m.err = msg.err
	return m, nil
}

func (m *Model) handleDatasetChanged(msg datasetChangedMsg) (tea.Model, tea.Cmd) {
	m.log.InfoWithFields("dataset changed", []logger.Field{logger.F("path", msg.path)})

	// Only reload over a loaded dataset. While the initial load is pending
	// the change is picked up by it; after it failed there is no retry.
	if m.screen != ScreenBrowse {
		if m.screen == ScreenLoading && m.watcher != nil {
			return m, WatchDatasetCommand(m.ctx, m.watcher)
		}
		return m, nil
	}

	cmds := []tea.Cmd{}
	if m.loader != nil {
		cmds = append(cmds, LoadDatasetCommand(m.ctx, m.loader))
	}
	if m.watcher != nil {
		cmds = append(cmds, WatchDatasetCommand(m.ctx, m.watcher))
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleWatchError(msg watchErrorMsg) (tea.Model, tea.Cmd) {
	if m.ctx.Err() == nil {
		m.log.WarnWithFields("watch stopped", []logger.Field{logger.Error(msg.err)})
	}
	return m, nil
}

func (m *Model) handleClipboard(msg clipboardMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.log.WarnWithFields("clipboard write failed", []logger.Field{logger.Error(msg.err)})
		m.status = emoji.GetEmoji("error") + " Could not copy to clipboard"
		return m, nil
	}
	m.status = emoji.GetEmoji("clipboard") + " Copied " + msg.id
	return m, nil
}

// handleKeyPress routes keys by screen
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.handleQuit()
	}

	switch {
	case m.screen != ScreenBrowse:
		if key.Matches(msg, m.keys.Quit) {
			return m.handleQuit()
		}
		return m, nil
	case m.detail != nil:
		return m.handleDetailKey(msg)
	case m.filtering:
		return m.handleFilterKey(msg)
	}

	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.handleQuit()
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.visibleCards())
	case key.Matches(msg, m.keys.PageDn):
		m.moveCursor(m.visibleCards())
	case key.Matches(msg, m.keys.Open):
		return m.handleOpen(m.cursor)
	case key.Matches(msg, m.keys.Back):
		return m.handleBack()
	case key.Matches(msg, m.keys.Home):
		m.session.ToCategories()
		m.refresh()
	case key.Matches(msg, m.keys.Crumb):
		return m.handleCrumb(int(msg.String()[0] - '1'))
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		return m, m.filter.Focus()
	case key.Matches(msg, m.keys.Copy):
		return m.handleCopy()
	}
	return m, nil
}

func (m *Model) handleQuit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// handleBack clears an applied filter first, then ascends
func (m *Model) handleBack() (tea.Model, tea.Cmd) {
	if m.filter.Value() != "" {
		m.clearFilter()
		m.applyFilter()
		return m, nil
	}
	m.session.Up()
	m.refresh()
	return m, nil
}

func (m *Model) handleCrumb(index int) (tea.Model, tea.Cmd) {
	crumbs := m.snapshot.Breadcrumbs
	if index < 0 || index >= len(crumbs) {
		return m, nil
	}
	m.session.Follow(crumbs[index])
	m.refresh()
	return m, nil
}

// handleOpen activates the item at index
func (m *Model) handleOpen(index int) (tea.Model, tea.Cmd) {
	if index < 0 || index >= len(m.items) {
		return m, nil
	}

	d, opened := m.session.Open(m.items[index])
	if opened {
		m.detail = &d
		m.layoutDetail()
		return m, nil
	}

	m.refresh()
	return m, nil
}

func (m *Model) handleCopy() (tea.Model, tea.Cmd) {
	id := ""
	switch {
	case m.detail != nil:
		id = m.detail.ID
	case m.cursor < len(m.items) && m.items[m.cursor].Record != nil:
		id = m.items[m.cursor].Record.ID.String()
	}
	if id == "" {
		return m, nil
	}
	return m, copyCommand(m.clip, id)
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.clearFilter()
		m.applyFilter()
		return m, nil
	case tea.KeyEnter:
		m.filtering = false
		m.filter.Blur()
		return m, nil
	case tea.KeyUp, tea.KeyDown:
		if msg.Type == tea.KeyUp {
			m.moveCursor(-1)
		} else {
			m.moveCursor(1)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.handleQuit()
	case key.Matches(msg, m.keys.Dismiss):
		m.detail = nil
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		return m.handleCopy()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// refresh re-projects the session and resets the filter and cursor
func (m *Model) refresh() {
	m.snapshot = m.session.Snapshot()
	m.clearFilter()
	m.items = m.snapshot.Result.Items
	m.cursor = 0
	m.offset = 0
}

func (m *Model) clearFilter() {
	m.filtering = false
	m.filter.Blur()
	m.filter.SetValue("")
}

func (m *Model) applyFilter() {
	m.items = projection.Filter(m.snapshot.Result.Items, m.filter.Value())
	m.cursor = 0
	m.offset = 0
}

func (m *Model) moveCursor(delta int) {
	if len(m.items) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	m.clampOffset()
}

// clampOffset keeps the cursor inside the visible window
func (m *Model) clampOffset() {
	visible := m.visibleCards()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// layoutDetail sizes the overlay viewport and renders the open detail
func (m *Model) layoutDetail() {
	r := m.overlayRect()
	width := r.w - overlayChromeWidth
	height := r.h - overlayChromeHeight
	if height < 1 {
		height = 1
	}

	m.viewport.Width = width
	m.viewport.Height = height
	m.viewport.SetContent(renderMarkdown(m.detail.Markdown(), m.mdStyle, width))
	m.viewport.GotoTop()
}
