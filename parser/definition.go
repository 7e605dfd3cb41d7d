package parser

import (
	"strings"

	"github.com/gerunddev/vimwiki/elements"
	"github.com/gerunddev/vimwiki/source"
)

// termSeparator returns the index of the "::" ending a term, or -1. The
// separator must be followed by whitespace or the end of the line.
func termSeparator(line string) int {
	if line == "" || isSpace(line[0]) {
		return -1
	}
	for i := 1; i+1 < len(line); i++ {
		if line[i] != ':' || line[i+1] != ':' {
			continue
		}
		if i+2 == len(line) || isSpace(line[i+2]) {
			return i
		}
	}
	return -1
}

// isDefinitionLine reports whether line continues a term with ":: text".
func isDefinitionLine(line string) bool {
	return strings.HasPrefix(line, "::") && (len(line) == 2 || isSpace(line[2]))
}

// definitionList parses "Term:: Definition" lines and ":: Definition" lines
// that add definitions to the term above them. Terms with the same text
// share one entry.
func definitionList(input source.Cursor) (source.Cursor, elements.Located[elements.BlockElement], *ParseError) {
	var none elements.Located[elements.BlockElement]
	var entries []elements.DefinitionEntry

	cur := input
	for !cur.IsEmpty() {
		line, rest := splitLine(cur)
		text := line.Fragment()

		if isDefinitionLine(text) {
			if len(entries) == 0 {
				return input, none, wrap(input, "Definition List", fail(line, "Term"))
			}
			if def, ok := definitionValue(line.Advance(2)); ok {
				last := &entries[len(entries)-1]
				last.Definitions = append(last.Definitions, def)
			}
			cur = rest
			continue
		}

		sep := termSeparator(text)
		if sep < 0 {
			break
		}
		t, ok := definitionValue(line.Take(sep))
		if !ok {
			break
		}
		entry := elements.DefinitionEntry{Term: t}
		if def, ok := definitionValue(line.Advance(sep + 2)); ok {
			entry.Definitions = append(entry.Definitions, def)
		}
		entries = append(entries, entry)
		cur = rest
	}

	if len(entries) == 0 {
		return input, none, wrap(input, "Definition List", fail(input, "Term"))
	}
	return cur, asBlock(located(input, cur, elements.NewDefinitionList(entries...))), nil
}

// definitionValue parses the trimmed inline content of c, reporting false
// when there is none.
func definitionValue(c source.Cursor) (elements.Located[elements.DefinitionListValue], bool) {
	content := trimmedCursor(c)
	if content.IsEmpty() {
		return elements.Located[elements.DefinitionListValue]{}, false
	}
	end, container, err := inlineContainer(content, 0)
	if err != nil {
		return elements.Located[elements.DefinitionListValue]{}, false
	}
	return located(content, end, elements.DefinitionListValue{Content: container}), true
}
