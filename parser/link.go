package parser

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/gerunddev/vimwiki/elements"
	"github.com/gerunddev/vimwiki/source"
)

var (
	indexedInterWiki = regexp.MustCompile(`^wiki(\d+):`)
	namedInterWiki   = regexp.MustCompile(`^wn\.([^:\s]+):`)
)

// Schemes recognized for links written directly in text.
var rawLinkPrefixes = []string{"https://", "http://", "ftp://", "file://", "mailto:", "www."}

// link parses any bracketed link variant. Each span of input is exactly one
// variant.
func link(input source.Cursor) (source.Cursor, elements.Located[elements.InlineElement], *ParseError) {
	var none elements.Located[elements.InlineElement]
	switch {
	case input.HasPrefix("[["):
		return bracketLink(input)
	case input.HasPrefix("{{"):
		rest, t, err := transclusionLink(input)
		if err != nil {
			return input, none, err
		}
		return rest, asInline(t), nil
	}
	return input, none, wrap(input, "Link", mismatch(input, "[["))
}

// bracketLink parses [[target#anchor|description]] and decides between
// wiki, interwiki, diary and external file links by the target prefix.
func bracketLink(input source.Cursor) (source.Cursor, elements.Located[elements.InlineElement], *ParseError) {
	var none elements.Located[elements.InlineElement]
	body := input.Advance(2)
	line, _ := splitLine(body)
	end := strings.Index(line.Fragment(), "]]")
	if end < 0 {
		return input, none, wrap(input, "Link", mismatch(line.Advance(line.RemainingLen()), "]]"))
	}
	if strings.TrimSpace(line.Fragment()[:end]) == "" {
		return input, none, wrap(input, "Link", fail(body, "Empty"))
	}

	inner := body.Take(end)
	rest := body.Advance(end + 2)

	target := inner
	var description elements.Cow
	if bar := strings.IndexByte(inner.Fragment(), '|'); bar >= 0 {
		target = inner.Take(bar)
		description = borrowed(inner.Advance(bar + 1))
	}

	text := target.Fragment()
	var l elements.InlineElement
	var err *ParseError
	switch {
	case strings.HasPrefix(text, "diary:"):
		l, err = diaryLink(target.Advance(len("diary:")), description)
	case strings.HasPrefix(text, "file:"):
		l, err = externalFileLink(target, len("file"), description)
	case strings.HasPrefix(text, "local:"):
		l, err = externalFileLink(target, len("local"), description)
	case indexedInterWiki.MatchString(text), namedInterWiki.MatchString(text):
		l, err = interWikiLink(target, description)
	default:
		path, anchor := splitAnchor(target)
		if isBlank(path.Fragment()) && anchor.IsEmpty() {
			err = fail(target, "Empty Target")
			break
		}
		l = elements.WikiLink{Path: borrowed(path), Anchor: borrowed(anchor), Description: description}
	}
	if err != nil {
		return input, none, wrap(input, "Link", err)
	}
	return rest, located(input, rest, l), nil
}

// splitAnchor separates path#anchor. The anchor keeps any further '#'
// separated segments.
func splitAnchor(target source.Cursor) (path, anchor source.Cursor) {
	text := target.Fragment()
	hash := strings.IndexByte(text, '#')
	if hash < 0 {
		return target, target.Advance(len(text))
	}
	return target.Take(hash), target.Advance(hash + 1)
}

func diaryLink(target source.Cursor, description elements.Cow) (elements.InlineElement, *ParseError) {
	date, anchor := splitAnchor(target)
	if _, err := time.Parse(elements.DiaryDateLayout, date.Fragment()); err != nil {
		return nil, fail(target, "Diary Date")
	}
	return elements.DiaryLink{Date: borrowed(date), Anchor: borrowed(anchor), Description: description}, nil
}

func externalFileLink(target source.Cursor, schemeLen int, description elements.Cow) (elements.InlineElement, *ParseError) {
	path := target.Advance(schemeLen + 1)
	if path.IsEmpty() {
		return nil, fail(path, "File Path")
	}
	return elements.ExternalFileLink{
		Scheme:      borrowed(target.Take(schemeLen)),
		Path:        borrowed(path),
		Description: description,
	}, nil
}

func interWikiLink(target source.Cursor, description elements.Cow) (elements.InlineElement, *ParseError) {
	text := target.Fragment()
	l := elements.InterWikiLink{Description: description}

	var prefixLen int
	if m := indexedInterWiki.FindStringSubmatch(text); m != nil {
		index, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, fail(target, "Wiki Index")
		}
		l.Index = index
		prefixLen = len(m[0])
	} else {
		m := namedInterWiki.FindStringSubmatchIndex(text)
		l.Name = borrowed(target.StartingAt(m[2]).Take(m[3] - m[2]))
		prefixLen = m[1]
	}

	path, anchor := splitAnchor(target.Advance(prefixLen))
	if path.IsEmpty() && anchor.IsEmpty() {
		return nil, fail(path, "Empty Target")
	}
	l.Path = borrowed(path)
	l.Anchor = borrowed(anchor)
	return l, nil
}

// transclusionLink parses {{uri|description|key="value"}}.
func transclusionLink(input source.Cursor) (source.Cursor, elements.Located[elements.TransclusionLink], *ParseError) {
	var none elements.Located[elements.TransclusionLink]
	if input.HasPrefix("{{{") || input.HasPrefix("{{$") {
		return input, none, wrap(input, "Link", fail(input, "Transclusion"))
	}

	body := input.Advance(2)
	line, _ := splitLine(body)
	end := strings.Index(line.Fragment(), "}}")
	if end < 0 {
		return input, none, wrap(input, "Link", mismatch(line.Advance(line.RemainingLen()), "}}"))
	}
	inner := body.Take(end)
	rest := body.Advance(end + 2)

	parts := splitBars(inner, 3)
	uri := trimmedCursor(parts[0])
	if uri.IsEmpty() {
		return input, none, wrap(input, "Link", fail(inner, "Empty Target"))
	}

	t := elements.TransclusionLink{URI: borrowed(uri)}
	if len(parts) > 1 {
		t.Description = borrowed(parts[1])
	}
	if len(parts) > 2 {
		props, err := parseAttributes(parts[2])
		if err != nil {
			return input, none, wrap(input, "Link", err)
		}
		t.Properties = props
	}
	return rest, located(input, rest, t), nil
}

// splitBars splits c on '|' into at most n parts.
func splitBars(c source.Cursor, n int) []source.Cursor {
	var parts []source.Cursor
	cur := c
	for len(parts) < n-1 {
		bar := strings.IndexByte(cur.Fragment(), '|')
		if bar < 0 {
			break
		}
		parts = append(parts, cur.Take(bar))
		cur = cur.Advance(bar + 1)
	}
	return append(parts, cur)
}

// rawLink parses a URI written directly in text. Trailing punctuation is
// left out of the link.
func rawLink(input source.Cursor, prev rune) (source.Cursor, elements.Located[elements.RawLink], *ParseError) {
	return rawLinkBefore(input, prev, "")
}

// rawLinkBefore is rawLink for a URI that also ends before the first stop
// marker, the closing marker of the enclosing decoration.
func rawLinkBefore(input source.Cursor, prev rune, stop string) (source.Cursor, elements.Located[elements.RawLink], *ParseError) {
	var none elements.Located[elements.RawLink]
	if !atWordBoundary(prev) {
		return input, none, fail(input, "Raw Link")
	}

	fragment := input.Fragment()
	var prefix string
	for _, p := range rawLinkPrefixes {
		if strings.HasPrefix(fragment, p) {
			prefix = p
			break
		}
	}
	if prefix == "" {
		return input, none, fail(input, "Raw Link")
	}

	n := strings.IndexFunc(fragment, unicode.IsSpace)
	if n < 0 {
		n = len(fragment)
	}
	if stop != "" {
		if i := strings.Index(fragment[:n], stop); i >= 0 {
			n = i
		}
	}
	candidate := strings.TrimRight(fragment[:n], ".,;:!?)'\"")
	if len(candidate) <= len(prefix) {
		return input, none, wrap(input, "Raw Link", fail(input.Advance(len(prefix)), "Empty"))
	}

	toParse := candidate
	if prefix == "www." {
		toParse = "https://" + candidate
	}
	if _, err := url.Parse(toParse); err != nil {
		return input, none, wrap(input, "Raw Link", fail(input, "URI"))
	}

	rest := input.Advance(len(candidate))
	return rest, located(input, rest, elements.RawLink{URI: borrowed(input.Take(len(candidate)))}), nil
}
