// Package watch implements driven.TreeWatcher with fsnotify.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/kennyvt/kennyvt.github.io/internal/core/domain"
	"github.com/kennyvt/kennyvt.github.io/internal/core/ports/driven"
	"github.com/kennyvt/kennyvt.github.io/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.TreeWatcher = (*Watcher)(nil)

// DefaultDebounce is the quiet period used when none is configured.
const DefaultDebounce = 500 * time.Millisecond

// Watcher reports changes to document trees. Bursts of events are
// coalesced into one notification once the trees have been quiet for the
// debounce period.
type Watcher struct {
	debounce time.Duration
	rules    domain.ClassifyRules

	// ready is called once every root is being watched.
	ready func()
}

// New creates a watcher. Directories matching rules are not watched and
// only files the builder would index trigger a notification.
func New(debounce time.Duration, rules domain.ClassifyRules) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{debounce: debounce, rules: rules}
}

// Watch blocks until ctx is cancelled, calling onChange after each burst of
// relevant changes. onChange runs on the watching goroutine; events that
// arrive meanwhile are coalesced into the next notification.
func (w *Watcher) Watch(ctx context.Context, roots []string, onChange func()) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	for _, root := range roots {
		if err := w.addRecursive(fw, root); err != nil {
			return fmt.Errorf("watch %s: %w", root, err)
		}
	}
	logger.Debug("Watching %d directories", len(fw.WatchList()))
	if w.ready != nil {
		w.ready()
	}

	var quiet <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(fw, event) {
				continue
			}
			logger.Debug("Change: %s %s", event.Op, event.Name)
			quiet = time.After(w.debounce)

		case <-quiet:
			quiet = nil
			onChange()

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}

// relevant reports whether event should trigger a rebuild. New
// directories are added to the watch list as a side effect.
func (w *Watcher) relevant(fw *fsnotify.Watcher, event fsnotify.Event) bool {
	name := filepath.Base(event.Name)

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if w.rules.ShouldPrune(name) {
				return false
			}
			if err := w.addRecursive(fw, event.Name); err != nil {
				logger.Warn("Error watching %s: %v", event.Name, err)
			}
			return true
		}
	}

	if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		// A removed directory may have held indexed files.
		if filepath.Ext(name) == "" && !w.rules.ShouldPrune(name) {
			return true
		}
	}

	return w.rules.Classify(name) != domain.CategoryIgnore
}

// addRecursive adds dir and every non-pruned subdirectory.
func (w *Watcher) addRecursive(fw *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			logger.Warn("Error walking %s: %v", path, err)
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && w.rules.ShouldPrune(d.Name()) {
			return filepath.SkipDir
		}
		if err := fw.Add(path); err != nil {
			if errors.Is(err, fsnotify.ErrClosed) {
				return err
			}
			logger.Warn("Error watching %s: %v", path, err)
		}
		return nil
	})
}
