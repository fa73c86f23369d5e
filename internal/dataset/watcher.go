package dataset

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce coalesces the burst of events editors and scrapers emit for
// a single save.
const reloadDebounce = 150 * time.Millisecond

// Watcher reports changes to local dataset files. Parent directories are
// watched rather than the files themselves so atomic replace-by-rename is
// still observed.
type Watcher struct {
	watcher *fsnotify.Watcher
	files   map[string]bool
}

// NewWatcher watches the given local paths. Remote locations are skipped.
func NewWatcher(paths ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	w := &Watcher{watcher: fw, files: make(map[string]bool)}
	dirs := make(map[string]bool)
	for _, p := range paths {
		if p == "" || isRemote(p) {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}

	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	return w, nil
}

// Next blocks until one of the watched files changes and returns its path.
func (w *Watcher) Next(ctx context.Context) (string, error) {
	var changed string
	var quiet <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-quiet:
			return changed, nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return "", fmt.Errorf("watcher closed")
			}
			if !w.relevant(event) {
				continue
			}
			changed = event.Name
			quiet = time.After(reloadDebounce)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return "", fmt.Errorf("watcher closed")
			}
			return "", fmt.Errorf("watch error: %w", err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	abs, err := filepath.Abs(event.Name)
	if err != nil || !w.files[abs] {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

// Close stops watching
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
