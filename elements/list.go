package elements

import (
	"fmt"
	"strings"
)

// ListItemType is the kind of marker that starts a list item.
type ListItemType int

const (
	Hyphen ListItemType = iota
	Asterisk
	Pound
	Number
	LowercaseAlphabet
	UppercaseAlphabet
	LowercaseRoman
	UppercaseRoman
)

var listItemTypeNames = map[ListItemType]string{
	Hyphen:            "hyphen",
	Asterisk:          "asterisk",
	Pound:             "pound",
	Number:            "number",
	LowercaseAlphabet: "lowercase-alphabet",
	UppercaseAlphabet: "uppercase-alphabet",
	LowercaseRoman:    "lowercase-roman",
	UppercaseRoman:    "uppercase-roman",
}

func (t ListItemType) String() string {
	if name, ok := listItemTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("list-item-type(%d)", int(t))
}

// MarshalYAML renders the type by name.
func (t ListItemType) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

// IsOrdered reports whether the marker numbers its items.
func (t ListItemType) IsOrdered() bool {
	return t != Hyphen && t != Asterisk
}

// ListItemSuffix is the punctuation following an ordered marker.
type ListItemSuffix int

const (
	NoSuffix ListItemSuffix = iota
	Period
	Paren
)

func (s ListItemSuffix) String() string {
	switch s {
	case Period:
		return "."
	case Paren:
		return ")"
	}
	return ""
}

// MarshalYAML renders the suffix literal.
func (s ListItemSuffix) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// TodoStatus is the state of a list item checkbox.
type TodoStatus int

const (
	NoTodo TodoStatus = iota
	TodoIncomplete
	TodoPartiallyComplete1
	TodoPartiallyComplete2
	TodoPartiallyComplete3
	TodoComplete
	TodoRejected
)

var todoMarkers = map[TodoStatus]rune{
	TodoIncomplete:         ' ',
	TodoPartiallyComplete1: '.',
	TodoPartiallyComplete2: 'o',
	TodoPartiallyComplete3: 'O',
	TodoComplete:           'X',
	TodoRejected:           '-',
}

// TodoStatusFor returns the status written as [c].
func TodoStatusFor(c rune) (TodoStatus, bool) {
	for status, marker := range todoMarkers {
		if marker == c {
			return status, true
		}
	}
	return NoTodo, false
}

// Marker returns the character written between the checkbox brackets.
func (s TodoStatus) Marker() rune {
	return todoMarkers[s]
}

func (s TodoStatus) String() string {
	if s == NoTodo {
		return ""
	}
	return "[" + string(s.Marker()) + "]"
}

// MarshalYAML renders the checkbox literal.
func (s TodoStatus) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// ListItemContent is either a line of inline content or a nested list.
type ListItemContent interface {
	Element
	listItemContent()
}

// ListItem is a single entry of a list.
type ListItem struct {
	Type     ListItemType                `yaml:"type"`
	Suffix   ListItemSuffix              `yaml:"suffix,omitempty"`
	Marker   Cow                         `yaml:"marker"`
	Pos      int                         `yaml:"pos"`
	Todo     TodoStatus                  `yaml:"todo,omitempty"`
	Contents []Located[ListItemContent] `yaml:"contents"`
}

// IsTodo reports whether the item carries a checkbox.
func (i ListItem) IsTodo() bool {
	return i.Todo != NoTodo
}

// Sublists returns the nested lists of the item.
func (i ListItem) Sublists() []List {
	var lists []List
	for _, c := range i.Contents {
		if l, ok := c.Element.(List); ok {
			lists = append(lists, l)
		}
	}
	return lists
}

// Text returns the inline lines of the item, skipping nested lists.
func (i ListItem) Text() []InlineContainer {
	var lines []InlineContainer
	for _, c := range i.Contents {
		if line, ok := c.Element.(InlineContainer); ok {
			lines = append(lines, line)
		}
	}
	return lines
}

func (i ListItem) String() string {
	parts := make([]string, len(i.Contents))
	for n, c := range i.Contents {
		parts[n] = c.String()
	}
	return strings.Join(parts, "\n")
}

func (i ListItem) sameShape(o ListItem) bool {
	return i.Type == o.Type && i.Suffix == o.Suffix &&
		i.Marker.value == o.Marker.value && i.Pos == o.Pos && i.Todo == o.Todo
}

func (i ListItem) Equal(other Element) bool {
	o, ok := other.(ListItem)
	return ok && i.sameShape(o) && equalLocated(i.Contents, o.Contents)
}

func (i ListItem) StrictEqual(other Element) bool {
	o, ok := other.(ListItem)
	return ok && i.sameShape(o) && strictEqualLocated(i.Contents, o.Contents)
}

func (i ListItem) IntoOwned() Element {
	i.Marker = i.Marker.IntoOwned()
	i.Contents = ownedLocated(i.Contents)
	return i
}

func (i ListItem) ToBorrowed() Element {
	i.Marker = i.Marker.ToBorrowed()
	i.Contents = borrowedLocated(i.Contents)
	return i
}

// List is a sequence of items sharing an indentation level.
type List struct {
	Items []Located[ListItem] `yaml:"items"`
}

// NewList builds a list from located items.
func NewList(items ...Located[ListItem]) List {
	return List{Items: items}
}

// Ordered reports whether the list numbers its items.
func (l List) Ordered() bool {
	return len(l.Items) > 0 && l.Items[0].Element.Type.IsOrdered()
}

func (l List) String() string {
	parts := make([]string, len(l.Items))
	for i, item := range l.Items {
		parts[i] = item.String()
	}
	return strings.Join(parts, "\n")
}

func (l List) Equal(other Element) bool {
	o, ok := other.(List)
	return ok && equalLocated(l.Items, o.Items)
}

func (l List) StrictEqual(other Element) bool {
	o, ok := other.(List)
	return ok && strictEqualLocated(l.Items, o.Items)
}

func (l List) IntoOwned() Element  { return List{Items: ownedLocated(l.Items)} }
func (l List) ToBorrowed() Element { return List{Items: borrowedLocated(l.Items)} }

func (List) blockElement()    {}
func (List) listItemContent() {}
