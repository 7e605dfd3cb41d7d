// Package parser turns vimwiki markup into the document tree of package
// elements.
//
// Parsing is pure: every call works on its own cursor, keeps no state
// between calls and may run concurrently with other parses. Productions
// either succeed or fail without consuming input; when no production
// matches, the error that got furthest into the input is reported.
package parser

import (
	"github.com/gerunddev/vimwiki/elements"
	"github.com/gerunddev/vimwiki/source"
)

type blockParser func(source.Cursor) (source.Cursor, elements.Located[elements.BlockElement], *ParseError)

// blockParsers are tried in order at the start of every line. Paragraph
// comes last since it accepts almost any unindented line.
var blockParsers = []blockParser{
	header,
	list,
	definitionList,
	table,
	codeBlock,
	mathBlock,
	divider,
	comment,
	placeholder,
	tagsLine,
	blockquote,
	paragraph,
}

// Parse parses text into a page.
func Parse(text string) (elements.Located[elements.Page], error) {
	return ParsePage(source.New(text))
}

// ParsePage parses the fragment of input into a page. Blank lines between
// blocks are skipped. If any non-blank line starts no block, the error of
// the alternative that got furthest is returned and no page is produced.
func ParsePage(input source.Cursor) (elements.Located[elements.Page], error) {
	_, p, err := parsePage(input)
	if err != nil {
		return elements.Located[elements.Page]{}, err
	}
	return p, nil
}

func parsePage(input source.Cursor) (source.Cursor, elements.Located[elements.Page], *ParseError) {
	var p elements.Page
	cur := input
	for !cur.IsEmpty() {
		if rest, ok := blankLine(cur); ok {
			cur = rest
			continue
		}

		rest, block, err := blockElement(cur)
		if err != nil {
			return input, elements.Located[elements.Page]{}, wrap(cur, "Page", err)
		}
		if rest.Offset() == cur.Offset() {
			return input, elements.Located[elements.Page]{}, wrap(cur, "Page", Unsupported(cur))
		}
		p.Contents = append(p.Contents, block)
		cur = rest
	}
	return cur, located(input, cur, p), nil
}

// blockElement tries every block production at input.
func blockElement(input source.Cursor) (source.Cursor, elements.Located[elements.BlockElement], *ParseError) {
	var best *ParseError
	for _, parse := range blockParsers {
		rest, block, err := parse(input)
		if err == nil {
			return rest, block, nil
		}
		best = best.Or(err)
	}
	return input, elements.Located[elements.BlockElement]{}, best
}
