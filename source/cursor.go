// Package source provides the input view the parser walks over.
package source

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Cursor is an immutable view into a shared input string. It records the
// absolute byte offset of its start, the end of the fragment it covers and
// the 1-based line and column of its start. Columns count runes.
//
// Cursors are plain values: advancing returns a new Cursor and never
// modifies or copies the input.
type Cursor struct {
	input  string
	offset int
	end    int
	line   int
	column int
}

// New returns a Cursor covering all of text, positioned at line 1, column 1.
func New(text string) Cursor {
	return Cursor{
		input:  text,
		offset: 0,
		end:    len(text),
		line:   1,
		column: 1,
	}
}

// Fragment returns the portion of the input still covered by the cursor.
func (c Cursor) Fragment() string {
	return c.input[c.offset:c.end]
}

// Remaining is an alias for Fragment.
func (c Cursor) Remaining() string {
	return c.Fragment()
}

// RemainingLen returns the number of bytes still covered by the cursor.
func (c Cursor) RemainingLen() int {
	return c.end - c.offset
}

// IsEmpty reports whether the cursor has no input left.
func (c Cursor) IsEmpty() bool {
	return c.offset >= c.end
}

// Offset returns the absolute byte offset of the cursor within the input.
func (c Cursor) Offset() int {
	return c.offset
}

// Line returns the 1-based line of the cursor.
func (c Cursor) Line() int {
	return c.line
}

// Column returns the 1-based column of the cursor, counted in runes.
func (c Cursor) Column() int {
	return c.column
}

// Advance returns a cursor moved n bytes forward. n is clamped to the
// remaining length; callers are responsible for landing on rune boundaries.
func (c Cursor) Advance(n int) Cursor {
	if n <= 0 {
		return c
	}
	if n > c.RemainingLen() {
		n = c.RemainingLen()
	}

	consumed := c.input[c.offset : c.offset+n]
	next := c
	next.offset += n
	for _, r := range consumed {
		if r == '\n' {
			next.line++
			next.column = 1
		} else {
			next.column++
		}
	}
	return next
}

// StartingAt returns a cursor positioned offset bytes into the fragment.
func (c Cursor) StartingAt(offset int) Cursor {
	return c.Advance(offset)
}

// Take returns a cursor at the same position whose fragment is limited to
// the first n bytes.
func (c Cursor) Take(n int) Cursor {
	if n < 0 {
		n = 0
	}
	if n > c.RemainingLen() {
		n = c.RemainingLen()
	}
	bounded := c
	bounded.end = c.offset + n
	return bounded
}

// Between returns a cursor positioned at start whose fragment is exactly
// the text consumed between start and end.
func Between(start, end Cursor) Cursor {
	return start.Take(end.offset - start.offset)
}

// Peek returns the next rune and its width in bytes. It returns
// utf8.RuneError and 0 when the cursor is empty.
func (c Cursor) Peek() (rune, int) {
	if c.IsEmpty() {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(c.Fragment())
}

// HasPrefix reports whether the fragment starts with s.
func (c Cursor) HasPrefix(s string) bool {
	return strings.HasPrefix(c.Fragment(), s)
}

// AtLineStart reports whether the cursor is at the beginning of a line.
func (c Cursor) AtLineStart() bool {
	return c.column == 1
}

// Compare orders cursors by progress. It returns a negative number when c
// has more input remaining than other, zero when both have the same amount
// and a positive number when c has progressed further.
func (c Cursor) Compare(other Cursor) int {
	return other.RemainingLen() - c.RemainingLen()
}

func (c Cursor) String() string {
	return fmt.Sprintf("%d:%d", c.line, c.column)
}
