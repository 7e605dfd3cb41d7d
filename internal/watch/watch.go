// Package watch re-indexes wiki pages as they change on disk
package watch

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gerunddev/vimwiki/internal/index"
	"github.com/gerunddev/vimwiki/internal/logger"
)

// Change reports the outcome of re-indexing one page
type Change struct {
	Path    string
	Removed bool
	Doc     *index.Document
	Failure *index.Failure
	Err     error
}

// Watcher watches the wiki directories and refreshes changed pages once
// events for them have settled for the debounce interval
type Watcher struct {
	watcher  *fsnotify.Watcher
	indexer  *index.Indexer
	debounce time.Duration
	logger   *logger.Logger

	// OnChange, when set, is called from the watch loop for every page
	// that was refreshed or removed
	OnChange func(Change)
}

// New creates a watcher over dirs, feeding changes to ix. fsnotify is
// not recursive, so every directory below the wiki roots is added now and
// directories created later are added as they appear
func New(ix *index.Indexer, dirs []string, debounce time.Duration) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher:  watcher,
		indexer:  ix,
		debounce: debounce,
		logger:   logger.Discard(),
	}
	for _, dir := range dirs {
		if _, err := w.addTree(dir); err != nil {
			watcher.Close()
			return nil, err
		}
	}
	return w, nil
}

// SetLogger sets the logger used for watch events
func (w *Watcher) SetLogger(l *logger.Logger) {
	w.logger = l
}

// Run handles events until ctx is done, then closes the watcher
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	pending := make(map[string]fsnotify.Op)
	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					pages, err := w.addTree(event.Name)
					if err != nil {
						w.logger.FileError(event.Name, err)
					}
					// pages moved in with the directory send no events of their own
					for _, page := range pages {
						w.logger.WatchEvent(page, fsnotify.Create.String())
						pending[page] |= fsnotify.Create
					}
					if len(pages) > 0 {
						timer.Reset(w.debounce)
					}
					continue
				}
			}
			if !w.indexer.Accepts(event.Name) || event.Op == fsnotify.Chmod {
				continue
			}
			w.logger.WatchEvent(event.Name, event.Op.String())
			pending[event.Name] |= event.Op
			timer.Reset(w.debounce)

		case <-timer.C:
			w.flush(pending)
			pending = make(map[string]fsnotify.Op)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", "error", err)
		}
	}
}

// flush refreshes every pending page in path order
func (w *Watcher) flush(pending map[string]fsnotify.Op) {
	paths := make([]string, 0, len(pending))
	for path := range pending {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		change := Change{Path: path}
		change.Doc, change.Failure, change.Err = w.indexer.Refresh(path)
		if change.Doc == nil && change.Failure == nil && change.Err == nil {
			change.Removed = true
		}
		if change.Err != nil && !errors.Is(change.Err, index.ErrTooLarge) {
			w.logger.FileError(path, change.Err)
		}
		if w.OnChange != nil {
			w.OnChange(change)
		}
	}
}

// addTree watches root and every directory below it, returning the pages
// already inside
func (w *Watcher) addTree(root string) ([]string, error) {
	var pages []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.watcher.Add(path)
		}
		if w.indexer.Accepts(path) {
			pages = append(pages, path)
		}
		return nil
	})
	return pages, err
}
