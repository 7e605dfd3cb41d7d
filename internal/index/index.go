// Package index parses every page of the configured wikis and keeps the
// resulting documents in a Store
package index

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/gerunddev/vimwiki/internal/config"
	"github.com/gerunddev/vimwiki/internal/logger"
	"github.com/gerunddev/vimwiki/internal/state"
	"github.com/gerunddev/vimwiki/parser"
)

// ErrTooLarge is returned by Refresh for pages above the configured size
var ErrTooLarge = errors.New("page exceeds max_file_size")

// Failure describes a page that could not be parsed. Line and Column point
// at the block that no production accepted; Context names the production
// that got furthest
type Failure struct {
	Path    string
	Line    int
	Column  int
	Context string
	Err     error
}

// Result represents the result of a scan
type Result struct {
	Parsed    int
	Skipped   int
	Bytes     int64
	Failures  []Failure
	Errors    []error
	StartTime time.Time
	EndTime   time.Time
}

// String returns a human-readable summary of the scan result
func (r *Result) String() string {
	duration := r.EndTime.Sub(r.StartTime)
	return fmt.Sprintf(
		"Scan complete: %d pages parsed (%s), %d failed, %d skipped, %d errors (took %v)",
		r.Parsed,
		humanize.Bytes(uint64(r.Bytes)),
		len(r.Failures),
		r.Skipped,
		len(r.Errors),
		duration.Round(time.Millisecond),
	)
}

// Indexer parses wiki pages into a store and records outcomes in state
type Indexer struct {
	config *config.Config
	state  *state.State
	store  *Store
	logger *logger.Logger

	mu sync.Mutex // guards state and the result of a running scan
}

// NewIndexer creates a new indexer instance
func NewIndexer(cfg *config.Config, st *state.State, store *Store) *Indexer {
	return &Indexer{
		config: cfg,
		state:  st,
		store:  store,
		logger: logger.Discard(),
	}
}

// SetLogger sets the logger used for scan events
func (ix *Indexer) SetLogger(l *logger.Logger) {
	ix.logger = l
}

// Store returns the store the indexer fills
func (ix *Indexer) Store() *Store {
	return ix.store
}

// Scan parses every page below the configured wiki directories using a
// bounded pool of workers. Unless force is set, pages that did not change
// since they were last stored are skipped. Pages that disappeared from
// disk are forgotten. A page that fails to parse is recorded as a failure
// and never aborts the scan
func (ix *Indexer) Scan(ctx context.Context, force bool) (*Result, error) {
	result := &Result{StartTime: time.Now()}
	ix.logger.ScanStarted(ix.config.WikiDirs, ix.config.Workers)

	var files []string
	seen := make(map[string]bool)
	indexed := make(map[string]bool)
	for _, dir := range ix.config.WikiDirs {
		found, err := ScanDirectory(dir, ix.config.Extension)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
		}
		for _, path := range found {
			if seen[path] {
				continue
			}
			seen[path] = true
			if ix.config.IsExcluded(dir, path) {
				ix.logger.Skipped(path, "excluded")
				result.Skipped++
				continue
			}
			files = append(files, path)
			indexed[path] = true
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(ix.config.Workers)
	for _, path := range files {
		path := path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ix.scanFile(path, force, result)
			return nil
		})
	}
	err := g.Wait()
	result.EndTime = time.Now()
	if err != nil {
		return result, err
	}

	ix.mu.Lock()
	for _, path := range ix.state.Paths() {
		if !indexed[path] {
			ix.state.Remove(path)
			ix.store.Delete(path)
		}
	}
	ix.mu.Unlock()

	ix.logger.ScanCompleted(result.Parsed, len(result.Failures), result.Skipped, result.EndTime.Sub(result.StartTime))
	return result, nil
}

func (ix *Indexer) scanFile(path string, force bool, result *Result) {
	info, err := os.Stat(path)
	if err != nil {
		ix.logger.FileError(path, err)
		ix.record(result, func() { result.Errors = append(result.Errors, err) })
		return
	}
	if info.Size() > ix.config.MaxFileSize {
		ix.logger.Skipped(path, "too large: "+humanize.Bytes(uint64(info.Size())))
		ix.record(result, func() { result.Skipped++ })
		return
	}

	if !force && ix.unchanged(path) {
		ix.logger.Skipped(path, "unchanged")
		ix.record(result, func() { result.Skipped++ })
		return
	}

	_, failure, err := ix.IndexFile(path)
	switch {
	case err != nil:
		ix.record(result, func() { result.Errors = append(result.Errors, err) })
	case failure != nil:
		ix.record(result, func() { result.Failures = append(result.Failures, *failure) })
	default:
		ix.record(result, func() {
			result.Parsed++
			result.Bytes += info.Size()
		})
	}
}

func (ix *Indexer) record(result *Result, update func()) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	update()
}

// unchanged reports whether the stored document for path is still current
func (ix *Indexer) unchanged(path string) bool {
	if _, ok := ix.store.Get(path); !ok {
		return false
	}
	ix.mu.Lock()
	defer ix.mu.Unlock()
	changed, err := ix.state.HasChanged(path)
	return err == nil && !changed
}

// IndexFile parses the page at path and stores it. A page that does not
// parse is removed from the store and described by the returned Failure;
// the error is reserved for files that could not be read
func (ix *Indexer) IndexFile(path string) (*Document, *Failure, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		ix.logger.FileError(path, err)
		return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	start := time.Now()
	page, parseErr := parser.Parse(string(data))
	duration := time.Since(start)

	if parseErr != nil {
		failure := describeFailure(path, parseErr)
		ix.logger.ParseFailed(path, failure.Line, failure.Column, failure.Context)
		ix.store.Delete(path)
		ix.updateState(path, state.Outcome{
			Err:    failure.Context,
			Line:   failure.Line,
			Column: failure.Column,
		})
		return nil, failure, nil
	}

	doc := &Document{
		Path:     path,
		Page:     page,
		Size:     int64(len(data)),
		ParsedAt: time.Now(),
	}
	doc.ID = ix.updateState(path, state.Outcome{Blocks: doc.Blocks()})
	ix.store.Put(doc)
	ix.logger.PageParsed(path, doc.Blocks(), duration)
	return doc, nil, nil
}

// updateState records outcome and returns the page id
func (ix *Indexer) updateState(path string, outcome state.Outcome) string {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if err := ix.state.Update(path, outcome); err != nil {
		ix.logger.StateError("update", err)
		return ""
	}
	return ix.state.Files[path].ID
}

// Refresh re-indexes the page at path after a change on disk. A page
// that no longer exists is forgotten
func (ix *Indexer) Refresh(path string) (*Document, *Failure, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			ix.Remove(path)
			return nil, nil, nil
		}
		return nil, nil, err
	}
	if info.Size() > ix.config.MaxFileSize {
		ix.Remove(path)
		return nil, nil, fmt.Errorf("%s: %w", path, ErrTooLarge)
	}
	return ix.IndexFile(path)
}

// Remove forgets the page at path
func (ix *Indexer) Remove(path string) {
	ix.store.Delete(path)
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.state.Remove(path)
}

// Accepts reports whether path is a page the indexer would scan
func (ix *Indexer) Accepts(path string) bool {
	if filepath.Ext(path) != ix.config.Extension {
		return false
	}
	for _, dir := range ix.config.WikiDirs {
		rel, err := filepath.Rel(dir, path)
		if err != nil || strings.HasPrefix(rel, "..") {
			continue
		}
		return !ix.config.IsExcluded(dir, path)
	}
	return false
}

func describeFailure(path string, err error) *Failure {
	failure := &Failure{Path: path, Context: "Unknown", Err: err}
	var pe *parser.ParseError
	if errors.As(err, &pe) {
		failure.Line = pe.Cursor.Line()
		failure.Column = pe.Cursor.Column()
		failure.Context = pe.Deepest().Context
	}
	return failure
}

// ScanDirectory scans a directory for files with given extension
func ScanDirectory(dir string, ext string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && filepath.Ext(path) == ext {
			files = append(files, path)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}
