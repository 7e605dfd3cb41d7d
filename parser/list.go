package parser

import (
	"strings"

	"github.com/gerunddev/vimwiki/elements"
	"github.com/gerunddev/vimwiki/source"
)

// listMarker describes the start of a list item line.
type listMarker struct {
	indent     int
	itemType   elements.ListItemType
	suffix     elements.ListItemSuffix
	markerLen  int
	todo       elements.TodoStatus
	contentOff int
}

const (
	lowerRoman = "ivxlcdm"
	upperRoman = "IVXLCDM"
)

// parseListMarker recognizes "-", "*", "#", "1.", "1)", "a)", "A)", "i)" and
// "I)" markers followed by whitespace, and an optional todo checkbox.
func parseListMarker(line string) (listMarker, bool) {
	m := listMarker{indent: indentation(line)}
	rest := line[m.indent:]
	if rest == "" {
		return m, false
	}

	switch rest[0] {
	case '-':
		m.itemType, m.markerLen = elements.Hyphen, 1
	case '*':
		m.itemType, m.markerLen = elements.Asterisk, 1
	case '#':
		m.itemType, m.markerLen = elements.Pound, 1
	default:
		if !orderedMarker(rest, &m) {
			return m, false
		}
	}

	after := rest[m.markerLen:]
	if after == "" || !isSpace(after[0]) {
		return m, false
	}
	offset := m.indent + m.markerLen + indentation(after)

	// Optional checkbox such as "[ ]" or "[X]".
	if box := line[offset:]; len(box) >= 3 && box[0] == '[' && box[2] == ']' && (len(box) == 3 || isSpace(box[3])) {
		if status, ok := elements.TodoStatusFor(rune(box[1])); ok {
			m.todo = status
			offset += 3 + indentation(box[3:])
		}
	}
	m.contentOff = offset
	return m, true
}

func orderedMarker(rest string, m *listMarker) bool {
	n := 0
	for n < len(rest) && rest[n] >= '0' && rest[n] <= '9' {
		n++
	}
	if n > 0 {
		if n == len(rest) {
			return false
		}
		switch rest[n] {
		case '.':
			m.suffix = elements.Period
		case ')':
			m.suffix = elements.Paren
		default:
			return false
		}
		m.itemType, m.markerLen = elements.Number, n+1
		return true
	}

	for n < len(rest) && isASCIILetter(rest[n]) {
		n++
	}
	if n == 0 || n == len(rest) || rest[n] != ')' {
		return false
	}

	letters := rest[:n]
	switch {
	case n == 1 && letters != "i" && letters != "I":
		if letters[0] >= 'a' && letters[0] <= 'z' {
			m.itemType = elements.LowercaseAlphabet
		} else {
			m.itemType = elements.UppercaseAlphabet
		}
	case strings.Trim(letters, lowerRoman) == "":
		m.itemType = elements.LowercaseRoman
	case strings.Trim(letters, upperRoman) == "":
		m.itemType = elements.UppercaseRoman
	default:
		return false
	}
	m.suffix = elements.Paren
	m.markerLen = n + 1
	return true
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// list parses a list whose first item sits at the current line's
// indentation, with nested lists for items indented further.
func list(input source.Cursor) (source.Cursor, elements.Located[elements.BlockElement], *ParseError) {
	var none elements.Located[elements.BlockElement]
	line, _ := splitLine(input)
	m, ok := parseListMarker(line.Fragment())
	if !ok {
		return input, none, wrap(input, "List", fail(line.Advance(indentation(line.Fragment())), "List Marker"))
	}

	rest, l, err := listAt(input, m.indent)
	if err != nil {
		return input, none, wrap(input, "List", err)
	}
	return rest, asBlock(l), nil
}

func listAt(input source.Cursor, indent int) (source.Cursor, elements.Located[elements.List], *ParseError) {
	var l elements.List
	cur := input

	for !cur.IsEmpty() {
		line, rest := splitLine(cur)
		m, ok := parseListMarker(line.Fragment())
		if !ok || m.indent != indent {
			break
		}

		itemStart := cur
		item := elements.ListItem{
			Type:   m.itemType,
			Suffix: m.suffix,
			Marker: borrowed(line.StartingAt(m.indent).Take(m.markerLen - suffixLen(m.suffix))),
			Pos:    len(l.Items),
			Todo:   m.todo,
		}

		content := line.StartingAt(m.contentOff)
		end, container, err := inlineContainer(content, 0)
		if err != nil {
			return input, elements.Located[elements.List]{}, err
		}
		item.Contents = append(item.Contents, asItemContent(located(content, end, container)))
		cur = rest

		// Continuation lines and nested lists belong to the item while
		// they are indented past its marker.
		for !cur.IsEmpty() {
			next, nextRest := splitLine(cur)
			text := next.Fragment()
			if isBlank(text) {
				break
			}
			lineIndent := indentation(text)
			if lineIndent <= indent {
				break
			}

			if nm, isItem := parseListMarker(text); isItem {
				subRest, sub, err := listAt(cur, nm.indent)
				if err != nil {
					return input, elements.Located[elements.List]{}, err
				}
				item.Contents = append(item.Contents, asItemContent(sub))
				cur = subRest
				continue
			}

			lineContent := next.StartingAt(lineIndent)
			lineEnd, continuation, err := inlineContainer(lineContent, 0)
			if err != nil {
				return input, elements.Located[elements.List]{}, err
			}
			item.Contents = append(item.Contents, asItemContent(located(lineContent, lineEnd, continuation)))
			cur = nextRest
		}

		l.Items = append(l.Items, located(itemStart, cur, item))
	}

	if len(l.Items) == 0 {
		return input, elements.Located[elements.List]{}, fail(input, "List Item")
	}
	return cur, located(input, cur, l), nil
}

func suffixLen(s elements.ListItemSuffix) int {
	if s == elements.NoSuffix {
		return 0
	}
	return 1
}

func asItemContent[T elements.ListItemContent](l elements.Located[T]) elements.Located[elements.ListItemContent] {
	return elements.Map(l, func(e T) elements.ListItemContent { return e })
}
