package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// contentFiles are the data files a reload cares about; everything else
// in the directory (editor swap files, art scratch) is ignored.
var contentFiles = map[string]bool{
	"rooms.json": true,
	"doors.json": true,
	"items.json": true,
}

// ContentWatcher watches a content directory and reports when the game
// data files settle after a change.
type ContentWatcher struct {
	watcher  *fsnotify.Watcher
	dir      string
	debounce time.Duration
	onChange func(path string)
}

// NewContentWatcher creates a watcher over dir. onChange fires with the
// last changed path once writes settle.
func NewContentWatcher(dir string, debounce time.Duration, onChange func(path string)) (*ContentWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if debounce == 0 {
		debounce = 500 * time.Millisecond
	}
	return &ContentWatcher{
		watcher:  w,
		dir:      dir,
		debounce: debounce,
		onChange: onChange,
	}, nil
}

// Run starts the event loop. It blocks until the context is cancelled.
func (w *ContentWatcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	if err := w.watcher.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}

	var lastPath string
	debouncer := NewDebouncer(w.debounce, func() {
		if w.onChange != nil {
			w.onChange(lastPath)
		}
	})
	defer debouncer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
				continue
			}
			if !contentFiles[filepath.Base(event.Name)] {
				continue
			}
			lastPath = event.Name
			debouncer.Trigger()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}
