package parser

import (
	"strings"

	"github.com/gerunddev/vimwiki/elements"
	"github.com/gerunddev/vimwiki/source"
)

// header parses "= Title =" with one to six '=' on each side. Leading
// whitespace centers the header.
func header(input source.Cursor) (source.Cursor, elements.Located[elements.BlockElement], *ParseError) {
	var none elements.Located[elements.BlockElement]
	line, rest := splitLine(input)
	text := line.Fragment()
	indent := indentation(text)
	body := strings.TrimRight(text[indent:], " \t")

	level := len(body) - len(strings.TrimLeft(body, "="))
	if level == 0 {
		return input, none, wrap(input, "Header", mismatch(line.Advance(indent), "="))
	}
	if level > elements.MaxHeaderLevel {
		return input, none, wrap(input, "Header", fail(line.Advance(indent+elements.MaxHeaderLevel), "Level"))
	}
	closing := len(body) - len(strings.TrimRight(body, "="))
	if closing != level || len(body) <= 2*level {
		return input, none, wrap(input, "Header", fail(line.Advance(indent+len(body)), "Closing"))
	}

	content := trimmedCursor(line.StartingAt(indent + level).Take(len(body) - 2*level))
	if content.IsEmpty() {
		return input, none, wrap(input, "Header", fail(content, "Empty"))
	}
	_, container, err := inlineContainer(content, 0)
	if err != nil {
		return input, none, wrap(input, "Header", err)
	}

	h := elements.Header{Level: level, Content: container, Centered: indent > 0}
	return rest, asBlock(located(input, rest, h)), nil
}

// paragraph parses consecutive non-blank lines. The first line must not be
// indented; later lines keep their indentation as text.
func paragraph(input source.Cursor) (source.Cursor, elements.Located[elements.BlockElement], *ParseError) {
	var none elements.Located[elements.BlockElement]
	if fragment := input.Fragment(); fragment != "" && isSpace(fragment[0]) {
		return input, none, wrap(input, "Paragraph", fail(input, "Indented"))
	}

	var p elements.Paragraph
	cur := input
	for !cur.IsEmpty() {
		line, rest := splitLine(cur)
		if isBlank(line.Fragment()) {
			break
		}
		_, container, err := inlineContainer(line, 0)
		if err != nil {
			return input, none, wrap(input, "Paragraph", err)
		}
		p.Lines = append(p.Lines, container)
		cur = rest
	}

	if len(p.Lines) == 0 {
		return input, none, wrap(input, "Paragraph", fail(input, "Blank Line"))
	}
	return cur, asBlock(located(input, cur, p)), nil
}
