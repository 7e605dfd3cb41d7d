// Package diff compares a page's source with the markup rendered from its
// parsed tree
package diff

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"

	"github.com/gerunddev/vimwiki/markup"
	"github.com/gerunddev/vimwiki/parser"
)

// Format represents the output format for diffs
type Format int

const (
	// FormatRendered renders the diff for the terminal (default)
	FormatRendered Format = iota
	// FormatPlain returns the unified diff as is
	FormatPlain
)

// RoundTrip parses text and renders the resulting page back to markup
func RoundTrip(text string) (string, error) {
	page, err := parser.Parse(text)
	if err != nil {
		return "", err
	}
	return markup.Page(page.Element), nil
}

// Unified returns the unified diff from the source of a page to its
// rendered form, or an empty string when they are identical
func Unified(name, source, rendered string) string {
	edits := myers.ComputeEdits(span.URIFromPath(name), source, rendered)
	if len(edits) == 0 {
		return ""
	}
	return fmt.Sprint(gotextdiff.ToUnified(name, name+" (rendered)", source, edits))
}

// Generate parses the page at path, renders it back and diffs the result
// against the file. An empty result means the page round trips unchanged
func Generate(path string, format Format) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read page: %w", err)
	}

	rendered, err := RoundTrip(string(content))
	if err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", path, err)
	}

	unified := Unified(filepath.Base(path), string(content), rendered)
	if unified == "" || format == FormatPlain {
		return unified, nil
	}
	return Render(unified), nil
}

// Render wraps a unified diff in a diff code fence and renders it with
// Glamour, falling back to the fenced text when rendering fails
func Render(unified string) string {
	diffMarkdown := fmt.Sprintf("```diff\n%s```\n", unified)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		return diffMarkdown
	}

	rendered, err := renderer.Render(diffMarkdown)
	if err != nil {
		return diffMarkdown
	}

	return rendered
}
