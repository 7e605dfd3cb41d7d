package elements

import "strings"

// Text is a run of plain text.
type Text struct {
	Value Cow `yaml:"value"`
}

// NewText builds borrowed text.
func NewText(s string) Text {
	return Text{Value: Borrowed(s)}
}

func (t Text) String() string { return t.Value.String() }

func (t Text) Equal(other Element) bool {
	o, ok := other.(Text)
	return ok && t.Value.value == o.Value.value
}

func (t Text) StrictEqual(other Element) bool { return t.Equal(other) }

func (t Text) IntoOwned() Element  { return Text{Value: t.Value.IntoOwned()} }
func (t Text) ToBorrowed() Element { return Text{Value: t.Value.ToBorrowed()} }

func (Text) inlineElement()        {}
func (Text) decoratedTextContent() {}

// Code is inline preformatted text between backticks.
type Code struct {
	Value Cow `yaml:"value"`
}

// NewCode builds borrowed inline code.
func NewCode(s string) Code {
	return Code{Value: Borrowed(s)}
}

func (c Code) String() string { return c.Value.String() }

func (c Code) Equal(other Element) bool {
	o, ok := other.(Code)
	return ok && c.Value.value == o.Value.value
}

func (c Code) StrictEqual(other Element) bool { return c.Equal(other) }

func (c Code) IntoOwned() Element  { return Code{Value: c.Value.IntoOwned()} }
func (c Code) ToBorrowed() Element { return Code{Value: c.Value.ToBorrowed()} }

func (Code) inlineElement() {}

// InlineContainer is an ordered sequence of inline elements.
type InlineContainer struct {
	Elements []Located[InlineElement] `yaml:"elements"`
}

// NewInlineContainer builds a container from located elements.
func NewInlineContainer(elements ...Located[InlineElement]) InlineContainer {
	return InlineContainer{Elements: elements}
}

// TextContainer builds a container holding a single unlocated text element.
func TextContainer(s string) InlineContainer {
	return NewInlineContainer(Unlocated[InlineElement](NewText(s)))
}

// Len returns the number of elements.
func (c InlineContainer) Len() int {
	return len(c.Elements)
}

// IsEmpty reports whether the container holds no elements.
func (c InlineContainer) IsEmpty() bool {
	return len(c.Elements) == 0
}

// Append returns a container holding the elements of c followed by those
// of other.
func (c InlineContainer) Append(other InlineContainer) InlineContainer {
	elements := make([]Located[InlineElement], 0, len(c.Elements)+len(other.Elements))
	elements = append(elements, c.Elements...)
	elements = append(elements, other.Elements...)
	return InlineContainer{Elements: elements}
}

func (c InlineContainer) String() string {
	var b strings.Builder
	for _, e := range c.Elements {
		b.WriteString(e.String())
	}
	return b.String()
}

func (c InlineContainer) Equal(other Element) bool {
	o, ok := other.(InlineContainer)
	return ok && equalLocated(c.Elements, o.Elements)
}

func (c InlineContainer) StrictEqual(other Element) bool {
	o, ok := other.(InlineContainer)
	return ok && strictEqualLocated(c.Elements, o.Elements)
}

func (c InlineContainer) IntoOwned() Element {
	return InlineContainer{Elements: ownedLocated(c.Elements)}
}

func (c InlineContainer) ToBorrowed() Element {
	return InlineContainer{Elements: borrowedLocated(c.Elements)}
}

func (InlineContainer) listItemContent() {}

func ownedContainer(c InlineContainer) InlineContainer {
	return c.IntoOwned().(InlineContainer)
}

func borrowedContainer(c InlineContainer) InlineContainer {
	return c.ToBorrowed().(InlineContainer)
}
