package markup

import (
	"strings"

	"github.com/gerunddev/vimwiki/elements"
)

var decorationMarkers = map[elements.Decoration][2]string{
	elements.Bold:        {"*", "*"},
	elements.Italic:      {"_", "_"},
	elements.BoldItalic:  {"_*", "*_"},
	elements.Strikeout:   {"~~", "~~"},
	elements.Superscript: {"^", "^"},
	elements.Subscript:   {",,", ",,"},
}

func decoratedText(d elements.DecoratedText) string {
	markers := decorationMarkers[d.Decoration]
	var b strings.Builder
	b.WriteString(markers[0])
	for _, c := range d.Contents {
		b.WriteString(Render(c.Element))
	}
	b.WriteString(markers[1])
	return b.String()
}

func bracketed(target string, description elements.Cow) string {
	if description.IsEmpty() {
		return "[[" + target + "]]"
	}
	return "[[" + target + "|" + description.String() + "]]"
}

func link(l elements.Link) string {
	switch l := l.(type) {
	case elements.WikiLink:
		return bracketed(l.Target(), l.Description)
	case elements.InterWikiLink:
		return bracketed(l.Target(), l.Description)
	case elements.DiaryLink:
		return bracketed(l.Target(), l.Description)
	case elements.ExternalFileLink:
		return bracketed(l.Target(), l.Description)
	case elements.TransclusionLink:
		return transclusion(l)
	}
	return l.Target()
}

func transclusion(t elements.TransclusionLink) string {
	parts := []string{t.URI.String()}
	if !t.Description.IsEmpty() || len(t.Properties) > 0 {
		parts = append(parts, t.Description.String())
	}
	if len(t.Properties) > 0 {
		props := make([]string, len(t.Properties))
		for i, p := range t.Properties {
			props[i] = p.Key.String() + `="` + p.Value.String() + `"`
		}
		parts = append(parts, strings.Join(props, " "))
	}
	return "{{" + strings.Join(parts, "|") + "}}"
}
