// Package watcher turns filesystem events under the docs root into coalesced
// refresh triggers. Every relevant event class means the same thing to the
// index cache (it is stale), so bursts of events collapse into one trigger
// after a quiet period.
package watcher

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// IgnoreChecker is used by the watcher to skip excluded paths.
type IgnoreChecker interface {
	ShouldIgnoreDir(absolutePath string) bool
	ShouldIgnore(absolutePath string) bool
}

// Watcher provides recursive watching of the documentation tree.
type Watcher struct {
	fsWatcher     *fsnotify.Watcher
	ignoreChecker IgnoreChecker
	rootDir       string
	logger        *slog.Logger

	quiet    time.Duration
	mu       sync.Mutex
	timer    *time.Timer
	triggers chan struct{}
}

// NewWatcher creates a recursive watcher on the docs root, registering all
// non-ignored subdirectories.
func NewWatcher(rootDir string, ignoreChecker IgnoreChecker, logger *slog.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsWatcher:     fsWatcher,
		ignoreChecker: ignoreChecker,
		rootDir:       rootDir,
		logger:        logger,
		quiet:         250 * time.Millisecond,
		triggers:      make(chan struct{}, 1),
	}

	err = filepath.WalkDir(rootDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // skip entries that can't be read
		}
		if !d.IsDir() {
			return nil
		}
		if path != rootDir && ignoreChecker.ShouldIgnoreDir(path) {
			return filepath.SkipDir
		}
		if watchErr := fsWatcher.Add(path); watchErr != nil {
			w.logger.Warn("failed to watch directory", "path", path, "error", watchErr)
		}
		return nil
	})
	if err != nil {
		fsWatcher.Close()
		return nil, err
	}

	return w, nil
}

// Triggers returns the channel that receives coalesced refresh triggers.
func (w *Watcher) Triggers() <-chan struct{} {
	return w.triggers
}

// Start begins listening for filesystem events. Call this in a goroutine; it
// runs until the watcher is closed.
func (w *Watcher) Start() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher error", "error", err)
		}
	}
}

// handleEvent filters one fsnotify event and arms the trigger timer when the
// event can affect the index.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	path := event.Name

	// A newly created directory needs watching before anything inside it
	// produces events.
	if event.Has(fsnotify.Create) {
		info, err := os.Stat(path)
		if err == nil && info.IsDir() {
			if !w.ignoreChecker.ShouldIgnoreDir(path) {
				if err := w.fsWatcher.Add(path); err != nil {
					w.logger.Warn("failed to watch new directory", "path", path, "error", err)
				}
				w.arm()
			}
			return
		}
	}

	if !w.relevant(path) {
		return
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}
	w.arm()
}

// relevant reports whether a file path can affect the index: Markdown files
// and the .docsignore file count, everything else is noise.
func (w *Watcher) relevant(path string) bool {
	base := filepath.Base(path)
	if base == ".docsignore" {
		return true
	}
	if !strings.HasSuffix(base, ".md") {
		return false
	}
	return !w.ignoreChecker.ShouldIgnore(path)
}

// arm (re)starts the quiet-period timer; when it fires a single trigger is
// emitted for the whole burst.
func (w *Watcher) arm() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.quiet, func() {
		select {
		case w.triggers <- struct{}{}:
		default:
			// A trigger is already pending; one refresh covers both.
		}
	})
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	return w.fsWatcher.Close()
}
