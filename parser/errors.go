package parser

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/gerunddev/vimwiki/source"
)

// UnsupportedContext labels errors raised for input the grammar does not
// handle at all.
const UnsupportedContext = "Unsupported"

// previewWidth is the number of display cells of input shown per error.
const previewWidth = 100

// ParseError describes why a production failed. Each error records the
// cursor at the point of failure and chains the error of the production
// it wraps.
type ParseError struct {
	Context string
	Cursor  source.Cursor
	Cause   *ParseError
}

// Unsupported returns the terminal error for unhandled input.
func Unsupported(input source.Cursor) *ParseError {
	return &ParseError{Context: UnsupportedContext, Cursor: input}
}

func fail(input source.Cursor, ctx string) *ParseError {
	return &ParseError{Context: ctx, Cursor: input}
}

// mismatch reports an expected literal that was not found.
func mismatch(input source.Cursor, literal string) *ParseError {
	if len([]rune(literal)) == 1 {
		return fail(input, "Char "+literal)
	}
	return fail(input, fmt.Sprintf("Tag %q", literal))
}

func wrap(input source.Cursor, ctx string, cause *ParseError) *ParseError {
	return &ParseError{Context: ctx, Cursor: input, Cause: cause}
}

// Progress returns the furthest input offset reached by any error in the
// chain.
func (e *ParseError) Progress() int {
	progress := -1
	for link := e; link != nil; link = link.Cause {
		if link.Cursor.Offset() > progress {
			progress = link.Cursor.Offset()
		}
	}
	return progress
}

// Or picks between the errors of two alternatives. The error that got
// further into the input wins; on a tie the second alternative wins. How
// far an error got is its Progress, the deepest offset of any link in its
// chain, so a wrapper that starts early still wins with a deep cause.
func (e *ParseError) Or(other *ParseError) *ParseError {
	if e == nil {
		return other
	}
	if other == nil {
		return e
	}
	if e.Progress() > other.Progress() {
		return e
	}
	return other
}

// HasContext reports whether any error in the chain carries ctx.
func (e *ParseError) HasContext(ctx string) bool {
	for link := e; link != nil; link = link.Cause {
		if link.Context == ctx {
			return true
		}
	}
	return false
}

// IsUnsupported reports whether the chain ends in the unsupported sentinel.
func (e *ParseError) IsUnsupported() bool {
	return e.HasContext(UnsupportedContext)
}

// Deepest returns the innermost error of the chain.
func (e *ParseError) Deepest() *ParseError {
	link := e
	for link != nil && link.Cause != nil {
		link = link.Cause
	}
	return link
}

// Unwrap returns the wrapped error, if any.
func (e *ParseError) Unwrap() error {
	if e.Cause == nil {
		return nil
	}
	return e.Cause
}

func (e *ParseError) Error() string {
	var b strings.Builder
	for link := e; link != nil; link = link.Cause {
		if link != e {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s: Line %d, Column %d\nInput: %s",
			link.Context, link.Cursor.Line(), link.Cursor.Column(), preview(link.Cursor))
	}
	return b.String()
}

func preview(c source.Cursor) string {
	text := c.Fragment()
	if len(text) > previewWidth*4 {
		text = strings.ToValidUTF8(text[:previewWidth*4], "")
	}
	text = strings.ReplaceAll(text, "\r", `\r`)
	text = strings.ReplaceAll(text, "\n", `\n`)
	return runewidth.Truncate(text, previewWidth, "…")
}
