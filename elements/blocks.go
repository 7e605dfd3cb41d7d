package elements

import (
	"strings"
	"time"
)

// BlockquoteStyle records how a blockquote was written.
type BlockquoteStyle int

const (
	// IndentedQuote lines start with four spaces or a tab.
	IndentedQuote BlockquoteStyle = iota
	// ArrowQuote lines start with "> ".
	ArrowQuote
)

// MarshalYAML renders the style by name.
func (s BlockquoteStyle) MarshalYAML() (interface{}, error) {
	if s == ArrowQuote {
		return "arrow", nil
	}
	return "indented", nil
}

// Blockquote is quoted text. Lines are stored without their prefix.
type Blockquote struct {
	Lines []Cow           `yaml:"lines"`
	Style BlockquoteStyle `yaml:"style"`
}

// NewBlockquote builds a borrowed blockquote.
func NewBlockquote(style BlockquoteStyle, lines ...string) Blockquote {
	q := Blockquote{Style: style}
	for _, l := range lines {
		q.Lines = append(q.Lines, Borrowed(l))
	}
	return q
}

func (q Blockquote) String() string { return joinCows(q.Lines, "\n") }

func (q Blockquote) Equal(other Element) bool {
	o, ok := other.(Blockquote)
	return ok && q.Style == o.Style && equalCows(q.Lines, o.Lines)
}

func (q Blockquote) StrictEqual(other Element) bool { return q.Equal(other) }

func (q Blockquote) IntoOwned() Element  { return Blockquote{Lines: ownedCows(q.Lines), Style: q.Style} }
func (q Blockquote) ToBorrowed() Element { return Blockquote{Lines: borrowedCows(q.Lines), Style: q.Style} }

func (Blockquote) blockElement() {}

// Divider is a horizontal rule.
type Divider struct{}

func (Divider) String() string { return "" }

func (Divider) Equal(other Element) bool {
	_, ok := other.(Divider)
	return ok
}

func (d Divider) StrictEqual(other Element) bool { return d.Equal(other) }
func (d Divider) IntoOwned() Element             { return d }
func (d Divider) ToBorrowed() Element            { return d }

func (Divider) blockElement() {}

// PlaceholderKind identifies a %placeholder directive.
type PlaceholderKind int

const (
	TitlePlaceholder PlaceholderKind = iota
	NoHTMLPlaceholder
	TemplatePlaceholder
	DatePlaceholder
	OtherPlaceholder
)

var placeholderNames = map[PlaceholderKind]string{
	TitlePlaceholder:    "title",
	NoHTMLPlaceholder:   "nohtml",
	TemplatePlaceholder: "template",
	DatePlaceholder:     "date",
}

// PlaceholderKindOf returns the kind of the named directive. Unknown names
// are OtherPlaceholder.
func PlaceholderKindOf(name string) PlaceholderKind {
	for kind, n := range placeholderNames {
		if n == name {
			return kind
		}
	}
	return OtherPlaceholder
}

func (k PlaceholderKind) String() string {
	if name, ok := placeholderNames[k]; ok {
		return name
	}
	return "other"
}

// MarshalYAML renders the kind by name.
func (k PlaceholderKind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// Placeholder is a directive line such as "%title My Page".
type Placeholder struct {
	Kind  PlaceholderKind `yaml:"kind"`
	Name  Cow             `yaml:"name"`
	Value Cow             `yaml:"value,omitempty"`
}

// NewPlaceholder builds a borrowed placeholder, deriving its kind from name.
func NewPlaceholder(name, value string) Placeholder {
	return Placeholder{Kind: PlaceholderKindOf(name), Name: Borrowed(name), Value: Borrowed(value)}
}

// Date parses the value of a date placeholder.
func (p Placeholder) Date() (time.Time, error) {
	return time.Parse(DiaryDateLayout, p.Value.String())
}

func (p Placeholder) String() string { return p.Value.String() }

func (p Placeholder) Equal(other Element) bool {
	o, ok := other.(Placeholder)
	return ok && p.Kind == o.Kind && p.Name.value == o.Name.value && p.Value.value == o.Value.value
}

func (p Placeholder) StrictEqual(other Element) bool { return p.Equal(other) }

func (p Placeholder) IntoOwned() Element {
	return Placeholder{Kind: p.Kind, Name: p.Name.IntoOwned(), Value: p.Value.IntoOwned()}
}

func (p Placeholder) ToBorrowed() Element {
	return Placeholder{Kind: p.Kind, Name: p.Name.ToBorrowed(), Value: p.Value.ToBorrowed()}
}

func (Placeholder) blockElement() {}

// Comment is a %% line comment or a %%+ ... +%% multi-line comment.
type Comment struct {
	Lines     []Cow `yaml:"lines"`
	MultiLine bool  `yaml:"multiline,omitempty"`
}

// NewLineComment builds a borrowed single line comment.
func NewLineComment(text string) Comment {
	return Comment{Lines: []Cow{Borrowed(text)}}
}

func (c Comment) String() string { return joinCows(c.Lines, "\n") }

func (c Comment) Equal(other Element) bool {
	o, ok := other.(Comment)
	return ok && c.MultiLine == o.MultiLine && equalCows(c.Lines, o.Lines)
}

func (c Comment) StrictEqual(other Element) bool { return c.Equal(other) }

func (c Comment) IntoOwned() Element  { return Comment{Lines: ownedCows(c.Lines), MultiLine: c.MultiLine} }
func (c Comment) ToBorrowed() Element { return Comment{Lines: borrowedCows(c.Lines), MultiLine: c.MultiLine} }

func (Comment) blockElement() {}

// Tags is a set of :tag: names. It appears inline and, alone on a line, as
// a block.
type Tags struct {
	Names []Cow `yaml:"names"`
}

// NewTags builds borrowed tags.
func NewTags(names ...string) Tags {
	var t Tags
	for _, n := range names {
		t.Names = append(t.Names, Borrowed(n))
	}
	return t
}

// Has reports whether name is one of the tags.
func (t Tags) Has(name string) bool {
	for _, n := range t.Names {
		if n.value == name {
			return true
		}
	}
	return false
}

func (t Tags) String() string {
	var b strings.Builder
	b.WriteString(":")
	for _, n := range t.Names {
		b.WriteString(n.value)
		b.WriteString(":")
	}
	return b.String()
}

func (t Tags) Equal(other Element) bool {
	o, ok := other.(Tags)
	return ok && equalCows(t.Names, o.Names)
}

func (t Tags) StrictEqual(other Element) bool { return t.Equal(other) }

func (t Tags) IntoOwned() Element  { return Tags{Names: ownedCows(t.Names)} }
func (t Tags) ToBorrowed() Element { return Tags{Names: borrowedCows(t.Names)} }

func (Tags) blockElement()  {}
func (Tags) inlineElement() {}
