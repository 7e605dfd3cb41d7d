package parser

import (
	"strings"
	"unicode"

	"github.com/gerunddev/vimwiki/elements"
	"github.com/gerunddev/vimwiki/source"
)

// located wraps e with the region consumed between start and end.
func located[T elements.Element](start, end source.Cursor, e T) elements.Located[T] {
	return elements.NewLocated(e, elements.BorrowedRegion(source.Between(start, end)))
}

func asBlock[T elements.BlockElement](l elements.Located[T]) elements.Located[elements.BlockElement] {
	return elements.Map(l, func(e T) elements.BlockElement { return e })
}

func asInline[T elements.InlineElement](l elements.Located[T]) elements.Located[elements.InlineElement] {
	return elements.Map(l, func(e T) elements.InlineElement { return e })
}

func asContent[T elements.DecoratedTextContent](l elements.Located[T]) elements.Located[elements.DecoratedTextContent] {
	return elements.Map(l, func(e T) elements.DecoratedTextContent { return e })
}

// borrowed views the fragment of c.
func borrowed(c source.Cursor) elements.Cow {
	return elements.Borrowed(c.Fragment())
}

// splitLine returns the content of the current line, without its line
// ending, and the cursor positioned at the start of the next line.
func splitLine(input source.Cursor) (line, rest source.Cursor) {
	fragment := input.Fragment()
	i := strings.IndexByte(fragment, '\n')
	if i < 0 {
		return input, input.Advance(len(fragment))
	}
	contentLen := i
	if contentLen > 0 && fragment[contentLen-1] == '\r' {
		contentLen--
	}
	return input.Take(contentLen), input.Advance(i + 1)
}

// blankLine consumes a line holding nothing but spaces and tabs.
func blankLine(input source.Cursor) (source.Cursor, bool) {
	if input.IsEmpty() {
		return input, false
	}
	line, rest := splitLine(input)
	if !isBlank(line.Fragment()) {
		return input, false
	}
	return rest, true
}

func isBlank(s string) bool {
	return strings.TrimLeft(s, " \t") == ""
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}

// indentation returns the number of leading space and tab bytes.
func indentation(s string) int {
	return len(s) - len(strings.TrimLeft(s, " \t"))
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// atWordBoundary reports whether prev, the rune before the current
// position, ends a word. Zero means the start of the text.
func atWordBoundary(prev rune) bool {
	return prev == 0 || !isWordRune(prev)
}

// afterWord reports whether the cursor is at the end of a word.
func afterWord(input source.Cursor) bool {
	r, size := input.Peek()
	return size == 0 || !isWordRune(r)
}

// trimmedCursor narrows c to its fragment without surrounding spaces and
// tabs.
func trimmedCursor(c source.Cursor) source.Cursor {
	text := c.Fragment()
	left := indentation(text)
	trimmed := strings.TrimRight(text[left:], " \t")
	return c.StartingAt(left).Take(len(trimmed))
}

// parseAttributes reads space separated key="value" pairs. The values are
// views into c.
func parseAttributes(c source.Cursor) ([]elements.Attribute, *ParseError) {
	var attrs []elements.Attribute
	cur := c
	for {
		text := cur.Fragment()
		skip := indentation(text)
		cur = cur.Advance(skip)
		if cur.IsEmpty() {
			return attrs, nil
		}

		text = cur.Fragment()
		eq := strings.IndexByte(text, '=')
		if eq <= 0 || strings.ContainsAny(text[:eq], " \t\"") {
			return nil, fail(cur, "Attribute")
		}
		if eq+1 >= len(text) || text[eq+1] != '"' {
			return nil, mismatch(cur.Advance(eq+1), `"`)
		}
		closing := strings.IndexByte(text[eq+2:], '"')
		if closing < 0 {
			return nil, mismatch(cur.Advance(len(text)), `"`)
		}

		key := cur.Take(eq)
		value := cur.Advance(eq + 2).Take(closing)
		attrs = append(attrs, elements.Attribute{Key: borrowed(key), Value: borrowed(value)})
		cur = cur.Advance(eq + 2 + closing + 1)

		if !cur.IsEmpty() && !isSpace(cur.Fragment()[0]) {
			return nil, fail(cur, "Attribute")
		}
	}
}
