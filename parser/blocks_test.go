package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gerunddev/vimwiki/elements"
	"github.com/gerunddev/vimwiki/source"
)

func parseBlock[T elements.BlockElement](t *testing.T, parse blockParser, input string) (source.Cursor, T) {
	t.Helper()
	rest, block, err := parse(source.New(input))
	require.Nil(t, err)
	e, ok := block.Element.(T)
	require.True(t, ok, "got %T", block.Element)
	return rest, e
}

func TestList(t *testing.T) {
	input := "- item one\n- [X] item two\n    - nested\n- item three\n\nafter"
	rest, l := parseBlock[elements.List](t, list, input)

	assert.Equal(t, "\nafter", rest.Fragment())
	require.Len(t, l.Items, 3)
	assert.False(t, l.Ordered())

	one := l.Items[0].Element
	assert.Equal(t, elements.Hyphen, one.Type)
	assert.Equal(t, "-", one.Marker.String())
	assert.Equal(t, 0, one.Pos)
	assert.False(t, one.IsTodo())
	require.Len(t, one.Contents, 1)
	assert.Equal(t, "item one", one.Contents[0].Element.String())

	two := l.Items[1].Element
	assert.Equal(t, 1, two.Pos)
	assert.Equal(t, elements.TodoComplete, two.Todo)
	require.Len(t, two.Contents, 2)
	assert.Equal(t, "item two", two.Contents[0].Element.String())
	sublists := two.Sublists()
	require.Len(t, sublists, 1)
	require.Len(t, sublists[0].Items, 1)
	assert.Equal(t, "nested", sublists[0].Items[0].Element.Contents[0].Element.String())

	assert.Equal(t, elements.NewRegion(2, 1, 3, 13), l.Items[1].Region())
}

func TestListMarkers(t *testing.T) {
	input := "1. one\n2) two\na) three\nB) four\niv) five\n# six\n* seven"
	_, l := parseBlock[elements.List](t, list, input)

	expected := []struct {
		itemType elements.ListItemType
		suffix   elements.ListItemSuffix
		marker   string
	}{
		{elements.Number, elements.Period, "1"},
		{elements.Number, elements.Paren, "2"},
		{elements.LowercaseAlphabet, elements.Paren, "a"},
		{elements.UppercaseAlphabet, elements.Paren, "B"},
		{elements.LowercaseRoman, elements.Paren, "iv"},
		{elements.Pound, elements.NoSuffix, "#"},
		{elements.Asterisk, elements.NoSuffix, "*"},
	}
	require.Len(t, l.Items, len(expected))
	for i, want := range expected {
		item := l.Items[i].Element
		assert.Equal(t, want.itemType, item.Type, "item %d", i)
		assert.Equal(t, want.suffix, item.Suffix, "item %d", i)
		assert.Equal(t, want.marker, item.Marker.String(), "item %d", i)
	}
	assert.True(t, l.Ordered())
}

func TestListContinuation(t *testing.T) {
	input := "- one\n  continued\n    - nested\n- two"
	_, l := parseBlock[elements.List](t, list, input)

	require.Len(t, l.Items, 2)
	one := l.Items[0].Element
	require.Len(t, one.Contents, 3)
	assert.Equal(t, "one", one.Contents[0].Element.String())
	assert.Equal(t, "continued", one.Contents[1].Element.String())
	_, isList := one.Contents[2].Element.(elements.List)
	assert.True(t, isList)
	assert.Len(t, one.Text(), 2)
	assert.Equal(t, "two", l.Items[1].Element.Contents[0].Element.String())
}

func TestListTodoStatuses(t *testing.T) {
	input := "- [ ] todo\n- [.] partial\n- [o] more\n- [O] most\n- [X] done\n- [-] rejected\n- [] plain"
	_, l := parseBlock[elements.List](t, list, input)

	expected := []elements.TodoStatus{
		elements.TodoIncomplete,
		elements.TodoPartiallyComplete1,
		elements.TodoPartiallyComplete2,
		elements.TodoPartiallyComplete3,
		elements.TodoComplete,
		elements.TodoRejected,
		elements.NoTodo,
	}
	require.Len(t, l.Items, len(expected))
	for i, status := range expected {
		assert.Equal(t, status, l.Items[i].Element.Todo, "item %d", i)
	}
	assert.Equal(t, "[] plain", l.Items[6].Element.Contents[0].Element.String())
}

func TestListFailures(t *testing.T) {
	for _, input := range []string{"-item", "text", "ab) no", "1.5 percent", ""} {
		_, _, err := list(source.New(input))
		require.NotNil(t, err, input)
		assert.True(t, err.HasContext("List"), input)
	}
}

func TestDefinitionList(t *testing.T) {
	input := "Term:: Definition\nOther::\n:: first\n:: second\n\nafter"
	rest, d := parseBlock[elements.DefinitionList](t, definitionList, input)

	assert.Equal(t, "\nafter", rest.Fragment())
	assert.Equal(t, 2, d.Len())

	defs, ok := d.Get("Term")
	require.True(t, ok)
	require.Len(t, defs, 1)
	assert.Equal(t, "Definition", defs[0].Element.String())

	defs, ok = d.Get("Other")
	require.True(t, ok)
	require.Len(t, defs, 2)
	assert.Equal(t, "first", defs[0].Element.String())
	assert.Equal(t, "second", defs[1].Element.String())

	terms := d.Terms()
	require.Len(t, terms, 2)
	assert.Equal(t, "Term", terms[0].Element.String())
	assert.Equal(t, "Other", terms[1].Element.String())
}

func TestDefinitionListCombinesRepeatedTerms(t *testing.T) {
	_, d := parseBlock[elements.DefinitionList](t, definitionList, "term:: a\nterm:: b\nsolo::")

	assert.Equal(t, 2, d.Len())
	defs, ok := d.Get("term")
	require.True(t, ok)
	assert.Len(t, defs, 2)

	defs, ok = d.Get("solo")
	require.True(t, ok)
	assert.Empty(t, defs)
}

func TestDefinitionListOrderDoesNotAffectEquality(t *testing.T) {
	_, ab := parseBlock[elements.DefinitionList](t, definitionList, "a:: 1\nb:: 2")
	_, ba := parseBlock[elements.DefinitionList](t, definitionList, "b:: 2\na:: 1")

	assert.True(t, ab.Equal(ba))
	assert.Equal(t, elements.Hash(ab), elements.Hash(ba))
}

func TestDefinitionListFailures(t *testing.T) {
	for _, input := range []string{":: orphan", "no separator", " Indented:: term", "a::b"} {
		_, _, err := definitionList(source.New(input))
		require.NotNil(t, err, input)
		assert.True(t, err.HasContext("Definition List"), input)
	}
}

func TestTable(t *testing.T) {
	input := "|a|b|\n|---|:-:|\n|[[x|y]]|>|\n|\\/| c |\nafter"
	rest, tbl := parseBlock[elements.Table](t, table, input)

	assert.Equal(t, "after", rest.Fragment())
	assert.False(t, tbl.Centered)
	require.Len(t, tbl.Rows, 4)
	assert.Len(t, tbl.Header(), 1)
	assert.Len(t, tbl.Body(), 2)

	header := tbl.Rows[0].Element
	require.Len(t, header.Cells, 2)
	assert.Equal(t, "a", header.Cells[0].Element.Content.String())

	divider := tbl.Rows[1].Element
	assert.True(t, divider.IsDivider())
	assert.Equal(t, elements.AlignDefault, divider.Cells[0].Element.Align)
	assert.Equal(t, elements.AlignCenter, divider.Cells[1].Element.Align)

	third := tbl.Rows[2].Element
	require.Len(t, third.Cells, 2)
	link := third.Cells[0].Element.Content.Elements[0].Element
	assert.True(t, elements.NewWikiLink("x").WithDescription("y").StrictEqual(link))
	assert.Equal(t, elements.SpanLeftCell, third.Cells[1].Element.Kind)

	fourth := tbl.Rows[3].Element
	assert.Equal(t, elements.SpanAboveCell, fourth.Cells[0].Element.Kind)
	assert.Equal(t, "c", fourth.Cells[1].Element.Content.String())
	assert.Equal(t, elements.NewRegion(4, 6, 4, 6), fourth.Cells[1].Region())
}

func TestTableCentered(t *testing.T) {
	_, tbl := parseBlock[elements.Table](t, table, "  | a | b |")
	assert.True(t, tbl.Centered)
	require.Len(t, tbl.Rows, 1)
	assert.Len(t, tbl.Rows[0].Element.Cells, 2)
}

func TestTableFailures(t *testing.T) {
	for _, input := range []string{"a|b|", "|a|b", "|", "text"} {
		_, _, err := table(source.New(input))
		require.NotNil(t, err, input)
		assert.True(t, err.HasContext("Table"), input)
	}
}

func TestCodeBlock(t *testing.T) {
	input := "{{{go key=\"v\"\nfmt.Println(\"hi\")\n\n  indented\n}}}\nafter"
	rest, b := parseBlock[elements.CodeBlock](t, codeBlock, input)

	assert.Equal(t, "after", rest.Fragment())
	assert.Equal(t, "go", b.Language.String())
	value, ok := b.Meta("key")
	assert.True(t, ok)
	assert.Equal(t, "v", value)
	require.Len(t, b.Lines, 3)
	assert.Equal(t, `fmt.Println("hi")`, b.Lines[0].String())
	assert.Equal(t, "", b.Lines[1].String())
	assert.Equal(t, "  indented", b.Lines[2].String())
}

func TestCodeBlockMetadataOnly(t *testing.T) {
	_, b := parseBlock[elements.CodeBlock](t, codeBlock, "{{{class=\"brush: python\"\nx\n}}}")
	assert.True(t, b.Language.IsEmpty())
	value, ok := b.Meta("class")
	assert.True(t, ok)
	assert.Equal(t, "brush: python", value)

	_, b = parseBlock[elements.CodeBlock](t, codeBlock, "{{{\n}}}")
	assert.Empty(t, b.Lines)
}

func TestCodeBlockFailures(t *testing.T) {
	for _, input := range []string{"{{{go\nno end", "{{{go key=v\n}}}", "{{img.png}}"} {
		_, _, err := codeBlock(source.New(input))
		require.NotNil(t, err, input)
		assert.True(t, err.HasContext("Code Block"), input)
	}
}

func TestMathBlock(t *testing.T) {
	rest, b := parseBlock[elements.MathBlock](t, mathBlock, "{{$%align%\nx &= y \\\\\nz\n}}$")
	assert.True(t, rest.IsEmpty())
	assert.Equal(t, "align", b.Environment.String())
	require.Len(t, b.Lines, 2)
	assert.Equal(t, `x &= y \\`, b.Lines[0].String())

	_, b = parseBlock[elements.MathBlock](t, mathBlock, "{{$\nx\n}}$")
	assert.True(t, b.Environment.IsEmpty())

	for _, input := range []string{"{{$%bad\nx\n}}$", "{{$\nx", "{{{\n}}}"} {
		_, _, err := mathBlock(source.New(input))
		require.NotNil(t, err, input)
		assert.True(t, err.HasContext("Math Block"), input)
	}
}

func TestDivider(t *testing.T) {
	for _, input := range []string{"----", "--------", "----  \nnext"} {
		_, _, err := divider(source.New(input))
		assert.Nil(t, err, input)
	}
	for _, input := range []string{"---", "---- x", "- - - -"} {
		_, _, err := divider(source.New(input))
		require.NotNil(t, err, input)
		assert.True(t, err.HasContext("Divider"), input)
	}
}

func TestPlaceholder(t *testing.T) {
	tests := []struct {
		input string
		kind  elements.PlaceholderKind
		name  string
		value string
	}{
		{input: "%title My Page", kind: elements.TitlePlaceholder, name: "title", value: "My Page"},
		{input: "%title", kind: elements.TitlePlaceholder, name: "title"},
		{input: "%nohtml", kind: elements.NoHTMLPlaceholder, name: "nohtml"},
		{input: "%template tmpl", kind: elements.TemplatePlaceholder, name: "template", value: "tmpl"},
		{input: "%date 2021-01-02", kind: elements.DatePlaceholder, name: "date", value: "2021-01-02"},
		{input: "%date", kind: elements.DatePlaceholder, name: "date"},
		{input: "%custom value", kind: elements.OtherPlaceholder, name: "custom", value: "value"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, p := parseBlock[elements.Placeholder](t, placeholder, tt.input)
			assert.Equal(t, tt.kind, p.Kind)
			assert.Equal(t, tt.name, p.Name.String())
			assert.Equal(t, tt.value, p.Value.String())
		})
	}

	for _, input := range []string{"%nohtml value", "%date someday", "%template", "%custom", "%", "%Title x", "title"} {
		_, _, err := placeholder(source.New(input))
		require.NotNil(t, err, input)
		assert.True(t, err.HasContext("Placeholder"), input)
	}
}

func TestComment(t *testing.T) {
	rest, c := parseBlock[elements.Comment](t, comment, "%% a comment\nnext")
	assert.Equal(t, "next", rest.Fragment())
	assert.False(t, c.MultiLine)
	assert.Equal(t, []string{" a comment"}, cowStrings(c.Lines))

	rest, c = parseBlock[elements.Comment](t, comment, "%%+ a\nb +%%\nnext")
	assert.Equal(t, "next", rest.Fragment())
	assert.True(t, c.MultiLine)
	assert.Equal(t, []string{" a", "b "}, cowStrings(c.Lines))

	for _, input := range []string{"%%+ open", "%%+ a +%% trailing", "% single"} {
		_, _, err := comment(source.New(input))
		require.NotNil(t, err, input)
		assert.True(t, err.HasContext("Comment"), input)
	}
}

func TestTagsLine(t *testing.T) {
	_, tags := parseBlock[elements.Tags](t, tagsLine, "  :tag1:tag2:  \nnext")
	assert.True(t, tags.Has("tag1"))
	assert.True(t, tags.Has("tag2"))
	assert.Equal(t, ":tag1:tag2:", tags.String())

	for _, input := range []string{":tag1:tag2: trailing", "::", ":open"} {
		_, _, err := tagsLine(source.New(input))
		require.NotNil(t, err, input)
		assert.True(t, err.HasContext("Tags"), input)
	}
}

func TestBlockquote(t *testing.T) {
	rest, q := parseBlock[elements.Blockquote](t, blockquote, "    first\n\tsecond\nafter")
	assert.Equal(t, "after", rest.Fragment())
	assert.Equal(t, elements.IndentedQuote, q.Style)
	assert.Equal(t, []string{"first", "second"}, cowStrings(q.Lines))

	rest, q = parseBlock[elements.Blockquote](t, blockquote, "> one\n>\n> two\n\nafter")
	assert.Equal(t, "\nafter", rest.Fragment())
	assert.Equal(t, elements.ArrowQuote, q.Style)
	assert.Equal(t, []string{"one", "", "two"}, cowStrings(q.Lines))

	for _, input := range []string{"  two spaces", ">no space", "text"} {
		_, _, err := blockquote(source.New(input))
		require.NotNil(t, err, input)
		assert.True(t, err.HasContext("Blockquote"), input)
	}
}

func cowStrings(cows []elements.Cow) []string {
	out := make([]string, len(cows))
	for i, c := range cows {
		out[i] = c.String()
	}
	return out
}
