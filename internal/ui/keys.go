package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap binds browser actions to keys
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	PageUp  key.Binding
	PageDn  key.Binding
	Open    key.Binding
	Back    key.Binding
	Home    key.Binding
	Crumb   key.Binding
	Filter  key.Binding
	Copy    key.Binding
	Quit    key.Binding
	Dismiss key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:  key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDn:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back:    key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		Home:    key.NewBinding(key.WithKeys("h", "home"), key.WithHelp("h", "categories")),
		Crumb:   key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "jump")),
		Filter:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Copy:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy id")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

// browseHelp lists the bindings shown in the footer while browsing
func (k keyMap) browseHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Back, k.Home, k.Crumb, k.Filter, k.Copy, k.Quit}
}

// detailHelp lists the bindings shown in the detail overlay
func (k keyMap) detailHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Copy, k.Dismiss, k.Quit}
}
