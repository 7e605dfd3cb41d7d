package parser

import (
	"regexp"
	"strings"

	"github.com/gerunddev/vimwiki/elements"
	"github.com/gerunddev/vimwiki/source"
)

var alignCell = regexp.MustCompile(`^:?-+:?$`)

// table parses consecutive "|a|b|" rows. Cells are split on '|' outside of
// links and transclusions.
func table(input source.Cursor) (source.Cursor, elements.Located[elements.BlockElement], *ParseError) {
	var none elements.Located[elements.BlockElement]
	var t elements.Table

	cur := input
	for !cur.IsEmpty() {
		line, rest := splitLine(cur)
		text := line.Fragment()
		indent := indentation(text)
		body := strings.TrimRight(text[indent:], " \t")

		cells, ok := splitCells(line.StartingAt(indent).Take(len(body)))
		if !ok {
			break
		}
		if len(t.Rows) == 0 {
			t.Centered = indent > 0
		}
		t.Rows = append(t.Rows, located(cur, rest, row(cells)))
		cur = rest
	}

	if len(t.Rows) == 0 {
		return input, none, wrap(input, "Table", mismatch(input.Advance(indentation(input.Fragment())), "|"))
	}
	return cur, asBlock(located(input, cur, t)), nil
}

// splitCells returns the raw cells of a row that starts and ends with '|'.
func splitCells(c source.Cursor) ([]source.Cursor, bool) {
	text := c.Fragment()
	if len(text) < 2 || text[0] != '|' || text[len(text)-1] != '|' {
		return nil, false
	}

	var cells []source.Cursor
	start, depth := 1, 0
	for i := 1; i < len(text); i++ {
		switch {
		case strings.HasPrefix(text[i:], "[[") || strings.HasPrefix(text[i:], "{{"):
			depth++
			i++
		case depth > 0 && (strings.HasPrefix(text[i:], "]]") || strings.HasPrefix(text[i:], "}}")):
			depth--
			i++
		case depth == 0 && text[i] == '|':
			cells = append(cells, c.StartingAt(start).Take(i-start))
			start = i + 1
		}
	}
	if start != len(text) {
		return nil, false
	}
	return cells, true
}

func row(cells []source.Cursor) elements.Row {
	var r elements.Row

	divider := true
	for _, c := range cells {
		if !alignCell.MatchString(strings.TrimSpace(c.Fragment())) {
			divider = false
			break
		}
	}

	for _, raw := range cells {
		content := trimmedCursor(raw)
		text := content.Fragment()
		cell := elements.Cell{Kind: elements.ContentCell}
		switch {
		case divider:
			cell.Kind = elements.AlignCell
			cell.Align = columnAlign(text)
		case text == ">":
			cell.Kind = elements.SpanLeftCell
		case text == `\/`:
			cell.Kind = elements.SpanAboveCell
		default:
			// Inline parsing never fails; it falls back to text.
			_, cell.Content, _ = inlineContainer(content, 0)
		}
		if content.IsEmpty() {
			content = raw
		}
		r.Cells = append(r.Cells, located(content, content.Advance(content.RemainingLen()), cell))
	}
	return r
}

func columnAlign(cell string) elements.ColumnAlign {
	left := strings.HasPrefix(cell, ":")
	right := strings.HasSuffix(cell, ":")
	switch {
	case left && right:
		return elements.AlignCenter
	case left:
		return elements.AlignLeft
	case right:
		return elements.AlignRight
	}
	return elements.AlignDefault
}
