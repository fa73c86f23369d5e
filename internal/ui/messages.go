package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Siddiq2772/scapper-with-ui/internal/dataset"
)

// Message types shared by the browser model
type datasetLoadedMsg struct {
	ds      *dataset.Dataset
	elapsed time.Duration
}

type datasetErrorMsg struct {
	err error
}

type datasetChangedMsg struct {
	path string
}

type watchErrorMsg struct {
	err error
}

type clipboardMsg struct {
	id  string
	err error
}

// LoadDatasetCommand creates a tea command that resolves the dataset
func LoadDatasetCommand(ctx context.Context, loader *dataset.Loader) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		ds, err := loader.Load(ctx)
		if err != nil {
			return datasetErrorMsg{err: err}
		}
		return datasetLoadedMsg{ds: ds, elapsed: time.Since(start)}
	}
}

// WatchDatasetCommand waits for the next change to the dataset files
func WatchDatasetCommand(ctx context.Context, w *dataset.Watcher) tea.Cmd {
	return func() tea.Msg {
		path, err := w.Next(ctx)
		if err != nil {
			return watchErrorMsg{err: err}
		}
		return datasetChangedMsg{path: path}
	}
}

// copyCommand writes id to the clipboard
func copyCommand(write func(string) error, id string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{id: id, err: write(id)}
	}
}
