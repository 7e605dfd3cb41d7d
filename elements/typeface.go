package elements

import (
	"fmt"
	"strings"
)

// Decoration is the style applied by decorated text.
type Decoration int

const (
	Bold Decoration = iota
	Italic
	BoldItalic
	Strikeout
	Superscript
	Subscript
)

var decorationNames = map[Decoration]string{
	Bold:        "bold",
	Italic:      "italic",
	BoldItalic:  "bold-italic",
	Strikeout:   "strikeout",
	Superscript: "superscript",
	Subscript:   "subscript",
}

func (d Decoration) String() string {
	if name, ok := decorationNames[d]; ok {
		return name
	}
	return fmt.Sprintf("decoration(%d)", int(d))
}

// MarshalYAML renders the decoration by name.
func (d Decoration) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// DecoratedText applies a decoration to a non-empty sequence of text,
// nested decorated text, keywords and links.
type DecoratedText struct {
	Decoration Decoration                     `yaml:"decoration"`
	Contents   []Located[DecoratedTextContent] `yaml:"contents"`
}

// NewDecoratedText builds decorated text from located contents.
func NewDecoratedText(decoration Decoration, contents ...Located[DecoratedTextContent]) DecoratedText {
	return DecoratedText{Decoration: decoration, Contents: contents}
}

// AsContents returns the decorated contents.
func (d DecoratedText) AsContents() []Located[DecoratedTextContent] {
	return d.Contents
}

func (d DecoratedText) String() string {
	var b strings.Builder
	for _, c := range d.Contents {
		b.WriteString(c.String())
	}
	return b.String()
}

func (d DecoratedText) Equal(other Element) bool {
	o, ok := other.(DecoratedText)
	return ok && d.Decoration == o.Decoration && equalLocated(d.Contents, o.Contents)
}

func (d DecoratedText) StrictEqual(other Element) bool {
	o, ok := other.(DecoratedText)
	return ok && d.Decoration == o.Decoration && strictEqualLocated(d.Contents, o.Contents)
}

func (d DecoratedText) IntoOwned() Element {
	return DecoratedText{Decoration: d.Decoration, Contents: ownedLocated(d.Contents)}
}

func (d DecoratedText) ToBorrowed() Element {
	return DecoratedText{Decoration: d.Decoration, Contents: borrowedLocated(d.Contents)}
}

func (DecoratedText) inlineElement()        {}
func (DecoratedText) decoratedTextContent() {}

// Keyword is one of the special uppercase words vimwiki highlights.
type Keyword int

const (
	Todo Keyword = iota
	Done
	Started
	Fixme
	Fixed
	Xxx
)

// Keywords lists every keyword in the order the parser tries them.
var Keywords = []Keyword{Todo, Done, Started, Fixme, Fixed, Xxx}

var keywordNames = map[Keyword]string{
	Todo:    "TODO",
	Done:    "DONE",
	Started: "STARTED",
	Fixme:   "FIXME",
	Fixed:   "FIXED",
	Xxx:     "XXX",
}

func (k Keyword) String() string {
	if name, ok := keywordNames[k]; ok {
		return name
	}
	return fmt.Sprintf("keyword(%d)", int(k))
}

// MarshalYAML renders the keyword literal.
func (k Keyword) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

func (k Keyword) Equal(other Element) bool {
	o, ok := other.(Keyword)
	return ok && k == o
}

func (k Keyword) StrictEqual(other Element) bool { return k.Equal(other) }

func (k Keyword) IntoOwned() Element  { return k }
func (k Keyword) ToBorrowed() Element { return k }

func (Keyword) inlineElement()        {}
func (Keyword) decoratedTextContent() {}
