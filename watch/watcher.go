// Package watch revalidates a hook configuration file whenever it changes
// on disk. Editors typically replace files on save, so the watcher observes
// the containing directory rather than the file itself.
package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/hooktools/hookcfg/logging"
	"github.com/sirupsen/logrus"
)

// Watcher watches a configuration file for changes and invokes a callback.
type Watcher struct {
	watcher    *fsnotify.Watcher
	path       string
	debounceMs int
	lastChange time.Time
	mu         sync.Mutex
	logger     *logrus.Entry
	onChange   func(path string)
}

// New creates a Watcher for the given configuration file. The debounceMs
// parameter controls how long rapid successive writes are collapsed for.
// The onChange callback is called with the file path after each change.
func New(path string, debounceMs int, onChange func(string)) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		watcher.Close()
		return nil, err
	}

	// Watch the directory: saves that replace the file would otherwise
	// drop the watch.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, err
	}

	if debounceMs <= 0 {
		debounceMs = 100
	}

	return &Watcher{
		watcher:    watcher,
		path:       abs,
		debounceMs: debounceMs,
		logger:     logging.NewLogger("watch"),
		onChange:   onChange,
	}, nil
}

// Start begins watching for changes. It blocks until the context is
// cancelled.
func (w *Watcher) Start(ctx context.Context) {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.logger.Debugf("fsnotify event: %s op=%v", event.Name, event.Op)

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				if sameFile(event.Name, w.path) {
					w.handleChange()
				}
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Errorf("Watcher error: %v", err)
		case <-ctx.Done():
			w.watcher.Close()
			return
		}
	}
}

// handleChange processes a file change with debouncing.
func (w *Watcher) handleChange() {
	w.mu.Lock()
	elapsed := time.Since(w.lastChange)
	if elapsed < time.Duration(w.debounceMs)*time.Millisecond {
		w.logger.Debugf("Debounced: %s (only %v since last change)", filepath.Base(w.path), elapsed)
		w.mu.Unlock()
		return
	}
	w.lastChange = time.Now()
	w.mu.Unlock()

	w.logger.Infof("Configuration changed: %s", filepath.Base(w.path))
	if w.onChange != nil {
		w.onChange(w.path)
	}
}

func sameFile(a, b string) bool {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false
	}
	return absA == b
}
