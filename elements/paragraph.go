package elements

import "strings"

// Paragraph is a run of non-blank lines. Each line keeps its own inline
// container; line breaks are not part of the content.
type Paragraph struct {
	Lines []InlineContainer `yaml:"lines"`
}

// NewParagraph builds a paragraph from its lines.
func NewParagraph(lines ...InlineContainer) Paragraph {
	return Paragraph{Lines: lines}
}

// Content returns the elements of every line in order, without
// coalescing text across line boundaries.
func (p Paragraph) Content() InlineContainer {
	var content InlineContainer
	for _, line := range p.Lines {
		content = content.Append(line)
	}
	return content
}

func (p Paragraph) String() string {
	parts := make([]string, len(p.Lines))
	for i, line := range p.Lines {
		parts[i] = line.String()
	}
	return strings.Join(parts, "\n")
}

func (p Paragraph) Equal(other Element) bool {
	o, ok := other.(Paragraph)
	if !ok || len(p.Lines) != len(o.Lines) {
		return false
	}
	for i := range p.Lines {
		if !p.Lines[i].Equal(o.Lines[i]) {
			return false
		}
	}
	return true
}

func (p Paragraph) StrictEqual(other Element) bool {
	o, ok := other.(Paragraph)
	if !ok || len(p.Lines) != len(o.Lines) {
		return false
	}
	for i := range p.Lines {
		if !p.Lines[i].StrictEqual(o.Lines[i]) {
			return false
		}
	}
	return true
}

func (p Paragraph) IntoOwned() Element {
	lines := make([]InlineContainer, len(p.Lines))
	for i, line := range p.Lines {
		lines[i] = ownedContainer(line)
	}
	return Paragraph{Lines: lines}
}

func (p Paragraph) ToBorrowed() Element {
	lines := make([]InlineContainer, len(p.Lines))
	for i, line := range p.Lines {
		lines[i] = borrowedContainer(line)
	}
	return Paragraph{Lines: lines}
}

func (Paragraph) blockElement() {}
