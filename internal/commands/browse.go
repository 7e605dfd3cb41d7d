package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"

	"github.com/gerunddev/vimwiki/internal/diff"
	"github.com/gerunddev/vimwiki/internal/index"
	"github.com/gerunddev/vimwiki/internal/outline"
	"github.com/gerunddev/vimwiki/internal/state"
	"github.com/gerunddev/vimwiki/internal/styles"
	"github.com/gerunddev/vimwiki/internal/tui"
)

// Browse shows every page of the configured wikis in an interactive
// browser
func Browse() {
	cfg := loadConfig()
	st := loadState()

	log, cleanup := openLogger(cfg)
	defer cleanup()

	indexer := index.NewIndexer(cfg, st, index.NewStore())
	indexer.SetLogger(log)

	// Bubble Tea program (will be set after creating sendBrowseData)
	var p *tea.Program

	sendBrowseData := func() {
		_, err := indexer.Scan(context.Background(), false)
		if err != nil {
			p.Send(tui.BrowseMsg{Err: fmt.Errorf("error scanning wikis: %w", err)})
			return
		}
		saveState(st, log)
		p.Send(tui.BrowseMsg{Pages: BrowsePages(st, cfg.WikiDirs)})
	}

	m := tui.InitBrowseModel(DetailLoader(indexer))
	p = tea.NewProgram(m, tea.WithAltScreen(), tea.WithInput(os.Stdin))

	go sendBrowseData()

	if _, err := p.Run(); err != nil {
		fmt.Println(styles.ErrorStyle.Render("✗ Error: " + err.Error()))
		os.Exit(1)
	}
}

// BrowsePages lists the pages recorded in st, named relative to the wiki
// that contains them
func BrowsePages(st *state.State, dirs []string) []tui.PageInfo {
	var pages []tui.PageInfo
	for _, path := range st.Paths() {
		fs := st.Files[path]
		info := tui.PageInfo{
			Path:   path,
			Name:   relativeName(path, dirs),
			Failed: fs.Failed(),
			Blocks: fs.Blocks,
			Size:   fs.Size,
		}
		if fs.Failed() {
			info.Error = fmt.Sprintf("%d:%d %s", fs.Line, fs.Column, fs.Error)
		}
		pages = append(pages, info)
	}
	return pages
}

// DetailLoader returns the function that renders the detail views of a
// page. Pages missing from the store are parsed again so failures can be
// shown
func DetailLoader(ix *index.Indexer) tui.LoadFunc {
	return func(path string, view tui.View) (string, error) {
		if view == tui.ViewDiff {
			out, err := diff.Generate(path, diff.FormatRendered)
			if err != nil {
				return "", err
			}
			if out == "" {
				return styles.SuccessStyle.Render("✓ Page round trips unchanged"), nil
			}
			return out, nil
		}

		doc, ok := ix.Store().Get(path)
		if !ok {
			var failure *index.Failure
			var err error
			doc, failure, err = ix.IndexFile(path)
			if err != nil {
				return "", err
			}
			if failure != nil {
				return "", failure.Err
			}
		}

		switch view {
		case tui.ViewYAML:
			var b strings.Builder
			enc := yaml.NewEncoder(&b)
			enc.SetIndent(2)
			if err := enc.Encode(doc.Page); err != nil {
				return "", fmt.Errorf("failed to encode page: %w", err)
			}
			if err := enc.Close(); err != nil {
				return "", err
			}
			return b.String(), nil
		default:
			var b strings.Builder
			if err := outline.Write(&b, outline.Build(doc.Page), 80); err != nil {
				return "", err
			}
			return b.String(), nil
		}
	}
}

func relativeName(path string, dirs []string) string {
	for _, dir := range dirs {
		if rel, err := filepath.Rel(dir, path); err == nil && !strings.HasPrefix(rel, "..") {
			if len(dirs) > 1 {
				return filepath.Join(filepath.Base(dir), rel)
			}
			return rel
		}
	}
	return path
}
