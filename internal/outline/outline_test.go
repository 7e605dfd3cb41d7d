package outline

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gerunddev/vimwiki/parser"
)

func build(t *testing.T, text string) Node {
	t.Helper()
	page, err := parser.Parse(text)
	require.NoError(t, err)
	return Build(page)
}

func kinds(n Node) []string {
	var out []string
	n.Walk(func(n Node, _ int) bool {
		out = append(out, n.Kind)
		return true
	})
	return out
}

func TestBuild(t *testing.T) {
	root := build(t, "= Title =\n\n* one\n* two\n")

	assert.Equal(t, []string{
		"page",
		"header", "text",
		"list", "listitem", "text", "listitem", "text",
	}, kinds(root))
	assert.Equal(t, 8, root.Count())

	header := root.Children[0]
	assert.Equal(t, "level 1", header.Summary)
	assert.Equal(t, "Title", header.Children[0].Summary)
	assert.Equal(t, "2 items", root.Children[1].Summary)
	assert.Equal(t, "*", root.Children[1].Children[0].Summary)
}

func TestBuildRegionsNest(t *testing.T) {
	root := build(t, "Some *bold* and [[link]]\n\n| a | b |\n|---|---|\n| c | d |\n")

	var check func(parent Node)
	check = func(parent Node) {
		for _, c := range parent.Children {
			assert.True(t, c.Region.IsValid(), "%s %s", c.Kind, c.Region)
			assert.True(t, parent.Region.Contains(c.Region), "%s %s not in %s %s", c.Kind, c.Region, parent.Kind, parent.Region)
			check(c)
		}
	}
	check(root)
	assert.Contains(t, kinds(root), "wikilink")
	assert.Contains(t, kinds(root), "cell")
}

func TestBuildDefinitionList(t *testing.T) {
	root := build(t, "Term:: first\n:: second\n")

	require.Len(t, root.Children, 1)
	list := root.Children[0]
	assert.Equal(t, "definitionlist", list.Kind)
	require.Len(t, list.Children, 1)
	term := list.Children[0]
	assert.Equal(t, "term", term.Kind)
	assert.Equal(t, "Term", term.Summary)
	require.Len(t, term.Children, 2)
	assert.Equal(t, "second", term.Children[1].Summary)
}

func TestWalkSkipsChildren(t *testing.T) {
	root := build(t, "= Title =\n\ntext\n")

	var visited []string
	root.Walk(func(n Node, depth int) bool {
		visited = append(visited, n.Kind)
		return depth == 0
	})
	assert.Equal(t, []string{"page", "header", "paragraph"}, visited)
}

func TestString(t *testing.T) {
	root := build(t, "Hello\n")
	lines := strings.Split(strings.TrimSuffix(root.String(), "\n"), "\n")

	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "page 1:1-"))
	assert.True(t, strings.HasPrefix(lines[1], "  paragraph 1:1-"))
	assert.True(t, strings.HasPrefix(lines[2], "    text 1:1-1:5 Hello"))
}

func TestWriteTruncates(t *testing.T) {
	long := strings.Repeat("lorem ipsum ", 10)
	root := build(t, long+"\n")

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, root, 40))
	out := buf.String()

	assert.Contains(t, out, "…")
	assert.NotContains(t, out, strings.TrimSpace(long))

	buf.Reset()
	require.NoError(t, Write(&buf, root, 0))
	assert.Contains(t, buf.String(), strings.TrimSpace(long))
}
