package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "data.json", "[]")
	other := writeFile(t, dir, "notes.txt", "")

	w, err := NewWatcher(path, "https://example.com/data.json")
	if err != nil {
		t.Fatalf("Failed to create watcher: %v", err)
	}
	defer func() {
		_ = w.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan string, 1)
	errs := make(chan error, 1)
	go func() {
		changed, err := w.Next(ctx)
		if err != nil {
			errs <- err
			return
		}
		done <- changed
	}()

	// unrelated files in the same directory are ignored
	if err := os.WriteFile(other, []byte("x"), 0o600); err != nil {
		t.Fatalf("Failed to write: %v", err)
	}
	if err := os.WriteFile(path, []byte(sampleJSON), 0o600); err != nil {
		t.Fatalf("Failed to write: %v", err)
	}

	select {
	case changed := <-done:
		if filepath.Base(changed) != "data.json" {
			t.Errorf("Expected data.json change, got %s", changed)
		}
	case err := <-errs:
		t.Fatalf("Watcher failed: %v", err)
	case <-ctx.Done():
		t.Fatal("Timed out waiting for change")
	}
}

func TestWatcherHonoursContext(t *testing.T) {
	path := writeFile(t, t.TempDir(), "data.json", "[]")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("Failed to create watcher: %v", err)
	}
	defer func() {
		_ = w.Close()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := w.Next(ctx); err == nil {
		t.Error("Expected cancelled context to stop Next")
	}
}
