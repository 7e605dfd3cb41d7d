package parser

import (
	"strings"

	"github.com/gerunddev/vimwiki/elements"
	"github.com/gerunddev/vimwiki/source"
)

// fencedLines collects the lines after the opening line up to a line whose
// trimmed text is closing. It returns the cursor after the closing line.
func fencedLines(input source.Cursor, closing string) (source.Cursor, []elements.Cow, *ParseError) {
	var lines []elements.Cow
	cur := input
	for !cur.IsEmpty() {
		line, rest := splitLine(cur)
		if strings.TrimSpace(line.Fragment()) == closing {
			return rest, lines, nil
		}
		lines = append(lines, borrowed(line))
		cur = rest
	}
	return input, nil, mismatch(cur, closing)
}

// codeBlock parses
//
//	{{{lang key="value"
//	lines
//	}}}
func codeBlock(input source.Cursor) (source.Cursor, elements.Located[elements.BlockElement], *ParseError) {
	var none elements.Located[elements.BlockElement]
	line, rest := splitLine(input)
	opening := line.StartingAt(indentation(line.Fragment()))
	if !opening.HasPrefix("{{{") {
		return input, none, wrap(input, "Code Block", mismatch(opening, "{{{"))
	}

	var b elements.CodeBlock
	info := trimmedCursor(opening.Advance(3))
	if !info.IsEmpty() {
		text := info.Fragment()
		first := strings.IndexAny(text, " \t")
		if first < 0 {
			first = len(text)
		}
		if !strings.Contains(text[:first], "=") {
			b.Language = borrowed(info.Take(first))
			info = info.Advance(first)
		}
		metadata, err := parseAttributes(info)
		if err != nil {
			return input, none, wrap(input, "Code Block", err)
		}
		b.Metadata = metadata
	}

	end, lines, err := fencedLines(rest, "}}}")
	if err != nil {
		return input, none, wrap(input, "Code Block", err)
	}
	b.Lines = lines
	return end, asBlock(located(input, end, b)), nil
}

// mathBlock parses
//
//	{{$%environment%
//	lines
//	}}$
func mathBlock(input source.Cursor) (source.Cursor, elements.Located[elements.BlockElement], *ParseError) {
	var none elements.Located[elements.BlockElement]
	line, rest := splitLine(input)
	opening := line.StartingAt(indentation(line.Fragment()))
	if !opening.HasPrefix("{{$") {
		return input, none, wrap(input, "Math Block", mismatch(opening, "{{$"))
	}

	var b elements.MathBlock
	env := trimmedCursor(opening.Advance(3))
	if !env.IsEmpty() {
		text := env.Fragment()
		if len(text) < 3 || text[0] != '%' || text[len(text)-1] != '%' || strings.ContainsAny(text[1:len(text)-1], "% \t") {
			return input, none, wrap(input, "Math Block", fail(env, "Environment"))
		}
		b.Environment = borrowed(env.Advance(1).Take(len(text) - 2))
	}

	end, lines, err := fencedLines(rest, "}}$")
	if err != nil {
		return input, none, wrap(input, "Math Block", err)
	}
	b.Lines = lines
	return end, asBlock(located(input, end, b)), nil
}
