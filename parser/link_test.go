package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gerunddev/vimwiki/elements"
	"github.com/gerunddev/vimwiki/source"
)

func TestBracketLinks(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected elements.InlineElement
	}{
		{name: "wiki", input: "[[Page]]", expected: elements.NewWikiLink("Page")},
		{
			name:     "description",
			input:    "[[Page|Description]]",
			expected: elements.NewWikiLink("Page").WithDescription("Description"),
		},
		{
			name:     "anchor",
			input:    "[[Page#Anchor|Desc]]",
			expected: elements.NewWikiLink("Page").WithAnchor("Anchor").WithDescription("Desc"),
		},
		{name: "anchor only", input: "[[#Anchor]]", expected: elements.NewWikiLink("").WithAnchor("Anchor")},
		{name: "directory", input: "[[notes/]]", expected: elements.NewWikiLink("notes/")},
		{name: "diary", input: "[[diary:2020-01-01]]", expected: elements.NewDiaryLink("2020-01-01")},
		{
			name:     "indexed interwiki",
			input:    "[[wiki1:Page]]",
			expected: elements.InterWikiLink{Index: 1, Path: elements.Borrowed("Page")},
		},
		{
			name:  "named interwiki",
			input: "[[wn.MyWiki:Page#sec|d]]",
			expected: elements.InterWikiLink{
				Name:        elements.Borrowed("MyWiki"),
				Path:        elements.Borrowed("Page"),
				Anchor:      elements.Borrowed("sec"),
				Description: elements.Borrowed("d"),
			},
		},
		{
			name:  "file",
			input: "[[file:/tmp/x.txt|f]]",
			expected: elements.ExternalFileLink{
				Scheme:      elements.Borrowed("file"),
				Path:        elements.Borrowed("/tmp/x.txt"),
				Description: elements.Borrowed("f"),
			},
		},
		{
			name:  "local",
			input: "[[local:notes.txt]]",
			expected: elements.ExternalFileLink{
				Scheme: elements.Borrowed("local"),
				Path:   elements.Borrowed("notes.txt"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rest, l, err := link(source.New(tt.input))
			require.Nil(t, err)
			assert.True(t, rest.IsEmpty())
			assert.Equal(t, elements.Kind(tt.expected), elements.Kind(l.Element))
			assert.True(t, tt.expected.StrictEqual(l.Element), "got %#v", l.Element)
		})
	}
}

func TestLinkTargets(t *testing.T) {
	_, l, err := link(source.New("[[wn.MyWiki:Page#sec|d]]"))
	require.Nil(t, err)

	iw, ok := l.Element.(elements.InterWikiLink)
	require.True(t, ok)
	assert.True(t, iw.IsNamed())
	assert.Equal(t, "wn.MyWiki:Page#sec", iw.Target())
	assert.Equal(t, "d", iw.String())

	_, l, err = link(source.New("[[diary:2021-03-04]]"))
	require.Nil(t, err)
	diary := l.Element.(elements.DiaryLink)
	date, dateErr := diary.Time()
	require.NoError(t, dateErr)
	assert.Equal(t, 2021, date.Year())
}

func TestTransclusionLink(t *testing.T) {
	input := `{{img.png|alt text|style="width:100px" class="x"}}`
	rest, l, err := link(source.New(input))
	require.Nil(t, err)
	assert.True(t, rest.IsEmpty())

	tr, ok := l.Element.(elements.TransclusionLink)
	require.True(t, ok)
	assert.Equal(t, "img.png", tr.URI.String())
	assert.Equal(t, "alt text", tr.Description.String())

	style, ok := tr.Property("style")
	assert.True(t, ok)
	assert.Equal(t, "width:100px", style)
	class, ok := tr.Property("class")
	assert.True(t, ok)
	assert.Equal(t, "x", class)

	_, l, err = link(source.New("{{ https://example.com/a.png }}"))
	require.Nil(t, err)
	assert.Equal(t, "https://example.com/a.png", l.Element.(elements.TransclusionLink).URI.String())
}

func TestLinkFailures(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: "[[]]"},
		{name: "blank", input: "[[  |x]]"},
		{name: "unterminated", input: "[[Page"},
		{name: "split across lines", input: "[[Pa\nge]]"},
		{name: "bad diary date", input: "[[diary:2020-13-45]]"},
		{name: "empty file path", input: "[[file:]]"},
		{name: "empty interwiki", input: "[[wiki2:]]"},
		{name: "code block opening", input: "{{{go"},
		{name: "math block opening", input: "{{$x"},
		{name: "unterminated transclusion", input: "{{img.png"},
		{name: "bad properties", input: `{{img.png||style=width}}`},
		{name: "not a link", input: "Page"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := source.New(tt.input)
			rest, _, err := link(input)
			require.NotNil(t, err)
			assert.True(t, err.HasContext("Link"), err.Error())
			assert.Equal(t, input.Offset(), rest.Offset())
		})
	}
}

func TestRawLinks(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []elements.Located[elements.InlineElement]
	}{
		{
			name:  "trailing period",
			input: "see https://example.com/path.",
			expected: []elements.Located[elements.InlineElement]{
				text("see "),
				inline(elements.NewRawLink("https://example.com/path")),
				text("."),
			},
		},
		{
			name:     "www",
			input:    "www.example.com",
			expected: []elements.Located[elements.InlineElement]{inline(elements.NewRawLink("www.example.com"))},
		},
		{
			name:  "mailto",
			input: "mail mailto:me@example.com, thanks",
			expected: []elements.Located[elements.InlineElement]{
				text("mail "),
				inline(elements.NewRawLink("mailto:me@example.com")),
				text(", thanks"),
			},
		},
		{
			name:     "prefix only",
			input:    "https://",
			expected: []elements.Located[elements.InlineElement]{text("https://")},
		},
		{
			name:     "inside word",
			input:    "xhttps://example.com",
			expected: []elements.Located[elements.InlineElement]{text("xhttps://example.com")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertContainer(t, tt.expected, parseInline(t, tt.input))
		})
	}
}
