package parser

import (
	"strings"
	"unicode"

	"github.com/gerunddev/vimwiki/elements"
	"github.com/gerunddev/vimwiki/source"
)

// inlineContainer parses the whole fragment of input into inline elements.
// Characters that start no inline element are gathered into text, so
// adjacent plain text is always a single Text element.
func inlineContainer(input source.Cursor, depth int) (source.Cursor, elements.InlineContainer, *ParseError) {
	var container elements.InlineContainer
	scope := newInlineScope()
	cur := input
	textStart := input
	var prev rune

	flush := func() {
		if cur.Offset() > textStart.Offset() {
			text := located(textStart, cur, elements.Text{Value: borrowed(source.Between(textStart, cur))})
			container.Elements = append(container.Elements, asInline(text))
		}
	}

	for !cur.IsEmpty() {
		if rest, e, err := inlineElement(cur, prev, scope, depth); err == nil {
			flush()
			container.Elements = append(container.Elements, e)
			prev = lastRune(source.Between(cur, rest))
			cur = rest
			textStart = cur
			continue
		}

		r, size := cur.Peek()
		prev = r
		cur = cur.Advance(size)
	}
	flush()

	return cur, container, nil
}

// inlineElement parses the single inline element starting at input. prev
// is the rune before input, or zero at the start of the text.
func inlineElement(input source.Cursor, prev rune, scope *inlineScope, depth int) (source.Cursor, elements.Located[elements.InlineElement], *ParseError) {
	var none elements.Located[elements.InlineElement]
	fragment := input.Fragment()
	if fragment == "" {
		return input, none, fail(input, "Inline Element")
	}

	var best *ParseError
	switch fragment[0] {
	case '*', '_', '~', '^', ',':
		rest, d, err := scope.decoratedText(input, prev, depth)
		if err == nil {
			return rest, asInline(d), nil
		}
		best = best.Or(err)
	case '[', '{':
		rest, l, err := link(input)
		if err == nil {
			return rest, l, nil
		}
		best = best.Or(err)
	case '$':
		rest, m, err := mathInline(input)
		if err == nil {
			return rest, asInline(m), nil
		}
		best = best.Or(err)
	case '`':
		rest, c, err := code(input)
		if err == nil {
			return rest, asInline(c), nil
		}
		best = best.Or(err)
	case ':':
		rest, t, err := tags(input, prev)
		if err == nil {
			return rest, asInline(t), nil
		}
		best = best.Or(err)
	}

	if atWordBoundary(prev) {
		r, _ := input.Peek()
		if unicode.IsUpper(r) {
			rest, k, err := keyword(input, prev)
			if err == nil {
				return rest, asInline(k), nil
			}
			best = best.Or(err)
		}
		if unicode.IsLetter(r) {
			rest, l, err := rawLink(input, prev)
			if err == nil {
				return rest, asInline(l), nil
			}
			best = best.Or(err)
		}
	}

	if best == nil {
		best = fail(input, "Inline Element")
	}
	return input, none, best
}

func lastRune(c source.Cursor) rune {
	fragment := c.Fragment()
	if fragment == "" {
		return 0
	}
	r := []rune(fragment[max(0, len(fragment)-4):])
	return r[len(r)-1]
}

// keyword parses one of the highlighted uppercase words. Keywords are case
// sensitive and must stand alone as a word.
func keyword(input source.Cursor, prev rune) (source.Cursor, elements.Located[elements.Keyword], *ParseError) {
	var none elements.Located[elements.Keyword]
	if !atWordBoundary(prev) {
		return input, none, fail(input, "Keyword")
	}

	for _, k := range elements.Keywords {
		literal := k.String()
		if !input.HasPrefix(literal) {
			continue
		}
		rest := input.Advance(len(literal))
		if afterWord(rest) {
			return rest, located(input, rest, k), nil
		}
	}
	return input, none, fail(input, "Keyword")
}

// mathInline parses $formula$ within a line.
func mathInline(input source.Cursor) (source.Cursor, elements.Located[elements.MathInline], *ParseError) {
	rest, body, err := delimited(input, "$", "$", "Math Inline")
	if err != nil {
		return input, elements.Located[elements.MathInline]{}, err
	}
	return rest, located(input, rest, elements.MathInline{Formula: borrowed(body)}), nil
}

// code parses `code` within a line.
func code(input source.Cursor) (source.Cursor, elements.Located[elements.Code], *ParseError) {
	rest, body, err := delimited(input, "`", "`", "Code")
	if err != nil {
		return input, elements.Located[elements.Code]{}, err
	}
	return rest, located(input, rest, elements.Code{Value: borrowed(body)}), nil
}

// delimited returns the non-empty text between open and the next close on
// the same line.
func delimited(input source.Cursor, open, close, ctx string) (source.Cursor, source.Cursor, *ParseError) {
	if !input.HasPrefix(open) {
		return input, input, wrap(input, ctx, mismatch(input, open))
	}
	body := input.Advance(len(open))
	line, _ := splitLine(body)
	end := strings.Index(line.Fragment(), close)
	if end < 0 {
		return input, input, wrap(input, ctx, mismatch(line.Advance(line.RemainingLen()), close))
	}
	if end == 0 {
		return input, input, wrap(input, ctx, fail(body, "Empty"))
	}
	return body.Advance(end + len(close)), body.Take(end), nil
}

// tags parses :tag1:tag2: preceded by whitespace or the start of the text
// and followed by whitespace or the end of the line.
func tags(input source.Cursor, prev rune) (source.Cursor, elements.Located[elements.Tags], *ParseError) {
	var none elements.Located[elements.Tags]
	if prev != 0 && !unicode.IsSpace(prev) {
		return input, none, fail(input, "Tags")
	}
	if !input.HasPrefix(":") {
		return input, none, wrap(input, "Tags", mismatch(input, ":"))
	}

	var t elements.Tags
	cur := input.Advance(1)
	for {
		fragment := cur.Fragment()
		n := strings.IndexFunc(fragment, func(r rune) bool {
			return r == ':' || unicode.IsSpace(r)
		})
		if n <= 0 || fragment[n] != ':' {
			return input, none, wrap(input, "Tags", fail(cur, "Tag Name"))
		}
		t.Names = append(t.Names, borrowed(cur.Take(n)))
		cur = cur.Advance(n + 1)

		r, size := cur.Peek()
		if size == 0 || unicode.IsSpace(r) {
			break
		}
	}
	return cur, located(input, cur, t), nil
}
