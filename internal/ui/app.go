package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// RunOptions controls the terminal program
type RunOptions struct {
	Mouse     bool
	AltScreen bool
}

// Run runs the browser until the user quits
func Run(opts Options, run RunOptions) error {
	model := NewModel(opts)

	programOpts := []tea.ProgramOption{}
	if run.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if run.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	if opts.Context != nil {
		programOpts = append(programOpts, tea.WithContext(opts.Context))
	}

	p := tea.NewProgram(model, programOpts...)
	_, err := p.Run()
	return err
}
