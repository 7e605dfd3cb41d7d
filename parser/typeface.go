package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gerunddev/vimwiki/elements"
	"github.com/gerunddev/vimwiki/source"
)

// MaxDecorationDepth bounds how deeply decorated text may nest.
const MaxDecorationDepth = 32

type decorationSyntax struct {
	open, close string
	decoration  elements.Decoration
	// wordBounded markers only open after a word boundary.
	wordBounded bool
}

// Longer markers come first so "_*" is not read as italic.
var decorationSyntaxes = []decorationSyntax{
	{"_*", "*_", elements.BoldItalic, true},
	{"*_", "_*", elements.BoldItalic, true},
	{"*", "*", elements.Bold, true},
	{"_", "_", elements.Italic, true},
	{"~~", "~~", elements.Strikeout, false},
	{"^", "^", elements.Superscript, false},
	{",,", ",,", elements.Subscript, false},
}

// decoratedText parses text wrapped in a decoration marker. The content
// runs to the first matching closing marker on the same line and may hold
// text, keywords, links and further decorated text.
func decoratedText(input source.Cursor, prev rune, depth int) (source.Cursor, elements.Located[elements.DecoratedText], *ParseError) {
	return newInlineScope().decoratedText(input, prev, depth)
}

// inlineScope is shared by the inline productions of one container. It
// remembers every decoration attempt, so a marker is parsed at most once
// per syntax.
type inlineScope struct {
	attempts map[attemptKey]attempt
	// capHits counts the attempts cut short by MaxDecorationDepth.
	capHits int
}

type attemptKey struct {
	offset, syntax int
	// depth is only set for attempts that reached the depth cap, whose
	// outcome depends on the depth they started at.
	depth int
}

type attempt struct {
	rest source.Cursor
	text elements.Located[elements.DecoratedText]
	err  *ParseError
}

func newInlineScope() *inlineScope {
	return &inlineScope{attempts: make(map[attemptKey]attempt)}
}

func (s *inlineScope) decoratedText(input source.Cursor, prev rune, depth int) (source.Cursor, elements.Located[elements.DecoratedText], *ParseError) {
	var none elements.Located[elements.DecoratedText]
	if depth >= MaxDecorationDepth {
		s.capHits++
		return input, none, wrap(input, "Decorated Text", fail(input, "Depth"))
	}

	var best *ParseError
	for i, syntax := range decorationSyntaxes {
		if !input.HasPrefix(syntax.open) {
			continue
		}
		if syntax.wordBounded && !atWordBoundary(prev) {
			best = best.Or(fail(input, "Word Boundary"))
			continue
		}
		rest, d, err := s.decorated(input, i, depth)
		if err == nil {
			return rest, d, nil
		}
		best = best.Or(err)
	}

	if best == nil {
		best = fail(input, "Decoration")
	}
	return input, none, wrap(input, "Decorated Text", best)
}

// decorated looks up or runs the attempt of syntax i at input.
func (s *inlineScope) decorated(input source.Cursor, i, depth int) (source.Cursor, elements.Located[elements.DecoratedText], *ParseError) {
	key := attemptKey{offset: input.Offset(), syntax: i}
	if a, ok := s.attempts[key]; ok {
		return a.rest, a.text, a.err
	}
	capped := key
	capped.depth = depth + 1
	if a, ok := s.attempts[capped]; ok {
		return a.rest, a.text, a.err
	}

	hits := s.capHits
	rest, d, err := s.decorate(input, decorationSyntaxes[i], depth)
	if s.capHits != hits {
		key = capped
	}
	s.attempts[key] = attempt{rest: rest, text: d, err: err}
	return rest, d, err
}

func (s *inlineScope) decorate(input source.Cursor, syntax decorationSyntax, depth int) (source.Cursor, elements.Located[elements.DecoratedText], *ParseError) {
	var none elements.Located[elements.DecoratedText]
	start := input.Advance(len(syntax.open))

	if r, size := start.Peek(); size == 0 || unicode.IsSpace(r) {
		return input, none, fail(start, syntax.decoration.String())
	}

	line := start.Fragment()
	if nl := strings.IndexByte(line, '\n'); nl >= 0 {
		line = line[:nl]
	}
	if !closable(line, syntax.close) {
		return input, none, wrap(input, syntax.decoration.String(), mismatch(start.Advance(len(line)), syntax.close))
	}

	d := elements.DecoratedText{Decoration: syntax.decoration}
	cur := start
	textStart := start
	var prev rune

	flush := func() {
		if cur.Offset() > textStart.Offset() {
			text := located(textStart, cur, elements.Text{Value: borrowed(source.Between(textStart, cur))})
			d.Contents = append(d.Contents, asContent(text))
		}
	}

	for {
		r, size := cur.Peek()
		if size == 0 || r == '\n' {
			return input, none, wrap(input, syntax.decoration.String(), mismatch(cur, syntax.close))
		}
		if cur.HasPrefix(syntax.close) && cur.Offset() > start.Offset() && !unicode.IsSpace(prev) {
			break
		}

		if rest, c, err := s.decoratedContent(cur, prev, depth, syntax.close); err == nil {
			flush()
			d.Contents = append(d.Contents, c)
			prev = lastRune(source.Between(cur, rest))
			cur = rest
			textStart = cur
			continue
		}

		prev = r
		cur = cur.Advance(size)
	}
	flush()

	rest := cur.Advance(len(syntax.close))
	return rest, located(input, rest, d), nil
}

// closable reports whether line holds close after its first byte with a
// non-space rune before it, the only places a decoration can end.
func closable(line, close string) bool {
	for i := 1; i < len(line); i++ {
		j := strings.Index(line[i:], close)
		if j < 0 {
			return false
		}
		i += j
		if r, _ := utf8.DecodeLastRuneInString(line[:i]); !unicode.IsSpace(r) {
			return true
		}
	}
	return false
}

// decoratedContent parses the non-text elements allowed inside decorated
// text. Raw links stop before close so they never swallow the end of the
// decoration.
func (s *inlineScope) decoratedContent(input source.Cursor, prev rune, depth int, close string) (source.Cursor, elements.Located[elements.DecoratedTextContent], *ParseError) {
	var none elements.Located[elements.DecoratedTextContent]
	fragment := input.Fragment()

	var best *ParseError
	switch fragment[0] {
	case '*', '_', '~', '^', ',':
		rest, d, err := s.decoratedText(input, prev, depth+1)
		if err == nil {
			return rest, asContent(d), nil
		}
		best = best.Or(err)
	case '[', '{':
		rest, l, err := link(input)
		if err == nil {
			return rest, elements.Map(l, func(e elements.InlineElement) elements.DecoratedTextContent {
				return e.(elements.DecoratedTextContent)
			}), nil
		}
		best = best.Or(err)
	}

	if atWordBoundary(prev) {
		rest, k, err := keyword(input, prev)
		if err == nil {
			return rest, asContent(k), nil
		}
		best = best.Or(err)

		rest, l, err := rawLinkBefore(input, prev, close)
		if err == nil {
			return rest, asContent(l), nil
		}
		best = best.Or(err)
	}

	if best == nil {
		best = fail(input, "Decorated Text Content")
	}
	return input, none, best
}
