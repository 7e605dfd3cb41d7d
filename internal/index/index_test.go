package index

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gerunddev/vimwiki/internal/config"
	"github.com/gerunddev/vimwiki/internal/state"
)

const (
	validPage  = "= Title =\n\nSome *bold* text\n"
	brokenPage = "Fine paragraph\n\n  stray indentation\n"
)

func testConfig(dir string) *config.Config {
	return &config.Config{
		WikiDirs:        []string{dir},
		Extension:       ".wiki",
		LogFile:         filepath.Join(dir, "test.log"),
		MaxFileSize:     1024,
		Workers:         2,
		ExcludePatterns: []string{},
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func newIndexer(cfg *config.Config) *Indexer {
	return NewIndexer(cfg, state.NewState(), NewStore())
}

func TestScanDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "index.wiki"), validPage)
	writeFile(t, filepath.Join(tmpDir, "diary", "2024-01-01.wiki"), validPage)
	writeFile(t, filepath.Join(tmpDir, "notes.md"), "# not a wiki page")

	files, err := ScanDirectory(tmpDir, ".wiki")
	if err != nil {
		t.Fatalf("ScanDirectory failed: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("Expected 2 files, got %d: %v", len(files), files)
	}
	for _, f := range files {
		if filepath.Ext(f) != ".wiki" {
			t.Errorf("Unexpected file %s", f)
		}
	}
}

func TestScanDirectoryMissing(t *testing.T) {
	if _, err := ScanDirectory(filepath.Join(t.TempDir(), "missing"), ".wiki"); err == nil {
		t.Error("ScanDirectory should fail on a missing directory")
	}
}

func TestScan(t *testing.T) {
	tmpDir := t.TempDir()
	good := filepath.Join(tmpDir, "index.wiki")
	bad := filepath.Join(tmpDir, "broken.wiki")
	writeFile(t, good, validPage)
	writeFile(t, bad, brokenPage)

	ix := newIndexer(testConfig(tmpDir))
	result, err := ix.Scan(context.Background(), false)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if result.Parsed != 1 {
		t.Errorf("Expected 1 parsed page, got %d", result.Parsed)
	}
	if result.Bytes != int64(len(validPage)) {
		t.Errorf("Expected %d bytes, got %d", len(validPage), result.Bytes)
	}
	if len(result.Failures) != 1 {
		t.Fatalf("Expected 1 failure, got %d", len(result.Failures))
	}

	failure := result.Failures[0]
	if failure.Path != bad {
		t.Errorf("Failure path mismatch: got %s", failure.Path)
	}
	if failure.Line != 3 || failure.Column != 1 {
		t.Errorf("Failure position mismatch: got %d:%d, want 3:1", failure.Line, failure.Column)
	}
	if failure.Context == "" || failure.Err == nil {
		t.Errorf("Failure should carry context and error: %+v", failure)
	}

	doc, ok := ix.Store().Get(good)
	if !ok {
		t.Fatal("Parsed page should be stored")
	}
	if doc.Blocks() != 2 {
		t.Errorf("Expected 2 blocks, got %d", doc.Blocks())
	}
	if doc.ID == "" {
		t.Error("Stored document should have an id")
	}
	if doc.Page.LazyRegion().IsBorrowed() {
		t.Error("Stored page should be owned")
	}
	if _, ok := ix.Store().Get(bad); ok {
		t.Error("Broken page should not be stored")
	}

	if !strings.Contains(result.String(), "1 pages parsed") {
		t.Errorf("Unexpected summary: %s", result.String())
	}
}

func TestScanSkipsUnchanged(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "index.wiki"), validPage)

	ix := newIndexer(testConfig(tmpDir))
	if _, err := ix.Scan(context.Background(), false); err != nil {
		t.Fatalf("First scan failed: %v", err)
	}

	result, err := ix.Scan(context.Background(), false)
	if err != nil {
		t.Fatalf("Second scan failed: %v", err)
	}
	if result.Parsed != 0 || result.Skipped != 1 {
		t.Errorf("Unchanged page should be skipped: parsed=%d skipped=%d", result.Parsed, result.Skipped)
	}

	result, err = ix.Scan(context.Background(), true)
	if err != nil {
		t.Fatalf("Forced scan failed: %v", err)
	}
	if result.Parsed != 1 {
		t.Errorf("Forced scan should parse every page, got %d", result.Parsed)
	}
}

func TestScanSkipsLargeAndExcluded(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "big.wiki"), strings.Repeat("word ", 300)+"\n")
	writeFile(t, filepath.Join(tmpDir, "drafts", "idea.wiki"), validPage)
	writeFile(t, filepath.Join(tmpDir, "index.wiki"), validPage)

	cfg := testConfig(tmpDir)
	cfg.ExcludePatterns = []string{"drafts/"}
	ix := newIndexer(cfg)

	result, err := ix.Scan(context.Background(), true)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if result.Parsed != 1 || result.Skipped != 2 {
		t.Errorf("Expected 1 parsed and 2 skipped, got %d and %d", result.Parsed, result.Skipped)
	}
	if ix.Store().Len() != 1 {
		t.Errorf("Expected 1 stored page, got %d", ix.Store().Len())
	}
}

func TestScanPrunesDeletedPages(t *testing.T) {
	tmpDir := t.TempDir()
	page := filepath.Join(tmpDir, "gone.wiki")
	writeFile(t, page, validPage)

	st := state.NewState()
	ix := NewIndexer(testConfig(tmpDir), st, NewStore())
	if _, err := ix.Scan(context.Background(), false); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if err := os.Remove(page); err != nil {
		t.Fatal(err)
	}
	if _, err := ix.Scan(context.Background(), false); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if ix.Store().Len() != 0 {
		t.Error("Deleted page should leave the store")
	}
	if len(st.Paths()) != 0 {
		t.Error("Deleted page should leave the state")
	}
}

func TestScanCancelled(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "index.wiki"), validPage)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ix := newIndexer(testConfig(tmpDir))
	if _, err := ix.Scan(ctx, true); err == nil {
		t.Error("Scan should report cancellation")
	}
}

func TestRefresh(t *testing.T) {
	tmpDir := t.TempDir()
	page := filepath.Join(tmpDir, "index.wiki")
	writeFile(t, page, validPage)

	ix := newIndexer(testConfig(tmpDir))
	doc, failure, err := ix.Refresh(page)
	if err != nil || failure != nil {
		t.Fatalf("Refresh failed: %v %+v", err, failure)
	}
	id := doc.ID

	writeFile(t, page, brokenPage)
	_, failure, err = ix.Refresh(page)
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if failure == nil {
		t.Fatal("Broken page should produce a failure")
	}
	if _, ok := ix.Store().Get(page); ok {
		t.Error("Broken page should be dropped from the store")
	}

	writeFile(t, page, validPage+"\nMore text\n")
	doc, _, err = ix.Refresh(page)
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if doc.ID != id {
		t.Errorf("Page id should be stable: got %s, want %s", doc.ID, id)
	}
	if doc.Blocks() != 3 {
		t.Errorf("Expected 3 blocks, got %d", doc.Blocks())
	}

	if err := os.Remove(page); err != nil {
		t.Fatal(err)
	}
	if _, _, err := ix.Refresh(page); err != nil {
		t.Fatalf("Refresh of a removed page failed: %v", err)
	}
	if ix.Store().Len() != 0 {
		t.Error("Removed page should leave the store")
	}
}

func TestAccepts(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := testConfig(tmpDir)
	cfg.ExcludePatterns = []string{"*.tmp.wiki"}
	ix := newIndexer(cfg)

	tests := []struct {
		path string
		want bool
	}{
		{path: filepath.Join(tmpDir, "index.wiki"), want: true},
		{path: filepath.Join(tmpDir, "sub", "page.wiki"), want: true},
		{path: filepath.Join(tmpDir, "index.md"), want: false},
		{path: filepath.Join(tmpDir, "scratch.tmp.wiki"), want: false},
		{path: filepath.Join(filepath.Dir(tmpDir), "outside.wiki"), want: false},
	}

	for _, tt := range tests {
		t.Run(filepath.Base(tt.path), func(t *testing.T) {
			if got := ix.Accepts(tt.path); got != tt.want {
				t.Errorf("Accepts(%s) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
