package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gerunddev/vimwiki/elements"
	"github.com/gerunddev/vimwiki/source"
)

func inline(e elements.InlineElement) elements.Located[elements.InlineElement] {
	return elements.Unlocated(e)
}

func content(e elements.DecoratedTextContent) elements.Located[elements.DecoratedTextContent] {
	return elements.Unlocated(e)
}

func text(s string) elements.Located[elements.InlineElement] {
	return inline(elements.NewText(s))
}

func assertContainer(t *testing.T, expected []elements.Located[elements.InlineElement], actual elements.InlineContainer) {
	t.Helper()
	want := elements.NewInlineContainer(expected...)
	assert.True(t, want.StrictEqual(actual), "expected %q, got %q", want.String(), actual.String())
	require.Len(t, actual.Elements, len(expected))
	for i := range expected {
		assert.Equal(t, elements.Kind(expected[i].Element), elements.Kind(actual.Elements[i].Element), "element %d", i)
	}
}

func parseParagraph(t *testing.T, input string) (source.Cursor, elements.Paragraph) {
	t.Helper()
	rest, block, err := paragraph(source.New(input))
	require.Nil(t, err)
	p, ok := block.Element.(elements.Paragraph)
	require.True(t, ok, "expected paragraph, got %T", block.Element)
	return rest, p
}

func TestParagraphSingleLine(t *testing.T) {
	rest, p := parseParagraph(t, "Some paragraph with *decorations*, [[links]], $math$, and more\n")

	assert.True(t, rest.IsEmpty())
	require.Len(t, p.Lines, 1)
	assertContainer(t, []elements.Located[elements.InlineElement]{
		text("Some paragraph with "),
		inline(elements.NewDecoratedText(elements.Bold, content(elements.NewText("decorations")))),
		text(", "),
		inline(elements.NewWikiLink("links")),
		text(", "),
		inline(elements.NewMathInline("math")),
		text(", and more"),
	}, p.Content())
}

func TestParagraphRegions(t *testing.T) {
	input := "Some paragraph with *decorations*, [[links]], $math$, and more"
	_, block, err := paragraph(source.New(input))
	require.Nil(t, err)

	assert.Equal(t, elements.NewRegion(1, 1, 1, 62), block.Region())

	p := block.Element.(elements.Paragraph)
	items := p.Lines[0].Elements
	assert.Equal(t, elements.NewRegion(1, 1, 1, 20), items[0].Region())
	assert.Equal(t, elements.NewRegion(1, 21, 1, 33), items[1].Region())
	assert.Equal(t, elements.NewRegion(1, 36, 1, 44), items[3].Region())
	assert.Equal(t, elements.NewRegion(1, 47, 1, 52), items[5].Region())
}

func TestParagraphMultipleLines(t *testing.T) {
	input := "Some paragraph with *decorations*,\n    [[links]], $math$, and more\n"
	rest, p := parseParagraph(t, input)

	assert.True(t, rest.IsEmpty())
	require.Len(t, p.Lines, 2)
	assertContainer(t, []elements.Located[elements.InlineElement]{
		text("Some paragraph with "),
		inline(elements.NewDecoratedText(elements.Bold, content(elements.NewText("decorations")))),
		text(","),
	}, p.Lines[0])
	assertContainer(t, []elements.Located[elements.InlineElement]{
		text("    "),
		inline(elements.NewWikiLink("links")),
		text(", "),
		inline(elements.NewMathInline("math")),
		text(", and more"),
	}, p.Lines[1])

	assert.Equal(t, 2, p.Lines[1].Elements[0].Region().Start.Line)
	assert.Len(t, p.Content().Elements, 8)
}

func TestParagraphStopsAtBlankLine(t *testing.T) {
	input := "Some paragraph\n\nAnd this would be a second paragraph\n"
	rest, p := parseParagraph(t, input)

	assert.Equal(t, "\nAnd this would be a second paragraph\n", rest.Fragment())
	assert.Equal(t, 2, rest.Line())
	assertContainer(t, []elements.Located[elements.InlineElement]{text("Some paragraph")}, p.Content())
}

func TestParagraphBlankLineWithSpaces(t *testing.T) {
	rest, _ := parseParagraph(t, "first\n  \t\nsecond")
	assert.Equal(t, "  \t\nsecond", rest.Fragment())
}

func TestParagraphFailures(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "leading space", input: " some text\n"},
		{name: "leading tab", input: "\tsome text\n"},
		{name: "blank line", input: "\n"},
		{name: "empty", input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := source.New(tt.input)
			rest, _, err := paragraph(input)
			require.NotNil(t, err)
			assert.True(t, err.HasContext("Paragraph"))
			assert.Equal(t, input.Offset(), rest.Offset())
		})
	}
}

func TestHeader(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		level    int
		centered bool
		content  string
	}{
		{name: "level one", input: "= Header =", level: 1, content: "Header"},
		{name: "level six", input: "====== Six ======", level: 6, content: "Six"},
		{name: "centered", input: "   == Centered ==", level: 2, centered: true, content: "Centered"},
		{name: "trailing spaces", input: "=== Three ===  \n", level: 3, content: "Three"},
		{name: "no padding", input: "==Tight==", level: 2, content: "Tight"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rest, block, err := header(source.New(tt.input))
			require.Nil(t, err)
			assert.True(t, rest.IsEmpty())

			h, ok := block.Element.(elements.Header)
			require.True(t, ok)
			assert.Equal(t, tt.level, h.Level)
			assert.Equal(t, tt.centered, h.Centered)
			assert.Equal(t, tt.content, h.Content.String())
		})
	}
}

func TestHeaderInlineContent(t *testing.T) {
	_, block, err := header(source.New("== *Bold* title =="))
	require.Nil(t, err)

	h := block.Element.(elements.Header)
	assertContainer(t, []elements.Located[elements.InlineElement]{
		inline(elements.NewDecoratedText(elements.Bold, content(elements.NewText("Bold")))),
		text(" title"),
	}, h.Content)
}

func TestHeaderRegionIncludesLineEnding(t *testing.T) {
	rest, block, err := header(source.New("= Header =\nafter"))
	require.Nil(t, err)
	assert.Equal(t, "after", rest.Fragment())
	assert.Equal(t, elements.NewRegion(1, 1, 1, 11), block.Region())
}

func TestHeaderFailures(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "no marker", input: "Header"},
		{name: "too deep", input: "======= Seven ======="},
		{name: "unbalanced", input: "== Mismatch ="},
		{name: "empty", input: "=  ="},
		{name: "only markers", input: "=="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := header(source.New(tt.input))
			require.NotNil(t, err)
			assert.True(t, err.HasContext("Header"))
		})
	}
}
