package parser

import (
	"strings"
	"time"

	"github.com/gerunddev/vimwiki/elements"
	"github.com/gerunddev/vimwiki/source"
)

// minDividerLen is the number of dashes that make a divider.
const minDividerLen = 4

// divider parses a line of four or more '-'.
func divider(input source.Cursor) (source.Cursor, elements.Located[elements.BlockElement], *ParseError) {
	var none elements.Located[elements.BlockElement]
	line, rest := splitLine(input)
	text := strings.TrimRight(line.Fragment(), " \t")

	dashes := len(text) - len(strings.TrimLeft(text, "-"))
	if dashes < minDividerLen || dashes != len(text) {
		return input, none, wrap(input, "Divider", fail(line.Advance(dashes), "Dashes"))
	}
	return rest, asBlock(located(input, rest, elements.Divider{})), nil
}

// placeholder parses "%name value" directive lines.
func placeholder(input source.Cursor) (source.Cursor, elements.Located[elements.BlockElement], *ParseError) {
	var none elements.Located[elements.BlockElement]
	line, rest := splitLine(input)
	if !line.HasPrefix("%") {
		return input, none, wrap(input, "Placeholder", mismatch(line, "%"))
	}

	text := line.Fragment()
	n := 1
	for n < len(text) && text[n] >= 'a' && text[n] <= 'z' {
		n++
	}
	if n == 1 || (n < len(text) && !isSpace(text[n])) {
		return input, none, wrap(input, "Placeholder", fail(line.Advance(n), "Name"))
	}

	name := line.Advance(1).Take(n - 1)
	value := trimmedCursor(line.Advance(n))
	p := elements.Placeholder{
		Kind:  elements.PlaceholderKindOf(name.Fragment()),
		Name:  borrowed(name),
		Value: borrowed(value),
	}

	switch p.Kind {
	case elements.NoHTMLPlaceholder:
		if !value.IsEmpty() {
			return input, none, wrap(input, "Placeholder", fail(value, "Unexpected Value"))
		}
	case elements.DatePlaceholder:
		if _, err := time.Parse(elements.DiaryDateLayout, value.Fragment()); err != nil && !value.IsEmpty() {
			return input, none, wrap(input, "Placeholder", fail(value, "Date"))
		}
	case elements.TemplatePlaceholder, elements.OtherPlaceholder:
		if value.IsEmpty() {
			return input, none, wrap(input, "Placeholder", fail(value, "Value"))
		}
	}

	return rest, asBlock(located(input, rest, p)), nil
}

// comment parses "%% text" line comments and "%%+ ... +%%" comments that
// may span lines.
func comment(input source.Cursor) (source.Cursor, elements.Located[elements.BlockElement], *ParseError) {
	var none elements.Located[elements.BlockElement]
	if input.HasPrefix("%%+") {
		body := input.Advance(3)
		end := strings.Index(body.Fragment(), "+%%")
		if end < 0 {
			return input, none, wrap(input, "Comment", mismatch(body.Advance(body.RemainingLen()), "+%%"))
		}

		c := elements.Comment{MultiLine: true}
		cur := body.Take(end)
		for {
			line, next := splitLine(cur)
			c.Lines = append(c.Lines, borrowed(line))
			if next.IsEmpty() {
				break
			}
			cur = next
		}

		after := body.Advance(end + 3)
		trailing, rest := splitLine(after)
		if !isBlank(trailing.Fragment()) {
			return input, none, wrap(input, "Comment", fail(trailing, "Trailing Text"))
		}
		return rest, asBlock(located(input, rest, c)), nil
	}

	if !input.HasPrefix("%%") {
		return input, none, wrap(input, "Comment", mismatch(input, "%%"))
	}
	line, rest := splitLine(input)
	c := elements.Comment{Lines: []elements.Cow{borrowed(line.Advance(2))}}
	return rest, asBlock(located(input, rest, c)), nil
}

// tagsLine parses a line holding only tags.
func tagsLine(input source.Cursor) (source.Cursor, elements.Located[elements.BlockElement], *ParseError) {
	var none elements.Located[elements.BlockElement]
	line, rest := splitLine(input)
	content := trimmedCursor(line)

	end, t, err := tags(content, 0)
	if err != nil {
		return input, none, wrap(input, "Tags", err)
	}
	if !end.IsEmpty() {
		return input, none, wrap(input, "Tags", fail(end, "Trailing Text"))
	}
	return rest, asBlock(located(input, rest, t.Element)), nil
}

// blockquote parses lines indented by four spaces or a tab, or lines
// starting with "> ". The prefix is not part of the stored lines.
func blockquote(input source.Cursor) (source.Cursor, elements.Located[elements.BlockElement], *ParseError) {
	var none elements.Located[elements.BlockElement]

	style := elements.IndentedQuote
	if input.HasPrefix(">") {
		style = elements.ArrowQuote
	}

	q := elements.Blockquote{Style: style}
	cur := input
	for !cur.IsEmpty() {
		line, rest := splitLine(cur)
		content, ok := quoteContent(line, style)
		if !ok {
			break
		}
		q.Lines = append(q.Lines, borrowed(content))
		cur = rest
	}

	if len(q.Lines) == 0 {
		return input, none, wrap(input, "Blockquote", fail(input, "Indentation"))
	}
	return cur, asBlock(located(input, cur, q)), nil
}

func quoteContent(line source.Cursor, style elements.BlockquoteStyle) (source.Cursor, bool) {
	text := line.Fragment()
	if isBlank(text) {
		return line, false
	}

	if style == elements.ArrowQuote {
		switch {
		case text == ">":
			return line.Advance(1), true
		case strings.HasPrefix(text, "> "):
			return line.Advance(2), true
		}
		return line, false
	}

	if strings.HasPrefix(text, "\t") || strings.HasPrefix(text, "    ") {
		return line.Advance(indentation(text)), true
	}
	return line, false
}
