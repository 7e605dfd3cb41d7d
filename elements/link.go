package elements

import (
	"fmt"
	"strings"
	"time"
)

// DiaryDateLayout is the date format of diary links and date placeholders.
const DiaryDateLayout = "2006-01-02"

// Link is implemented by every link variant.
type Link interface {
	InlineElement
	DecoratedTextContent

	// Target returns the destination of the link as written.
	Target() string
	link()
}

func linkText(description Cow, target string) string {
	if !description.IsEmpty() {
		return description.String()
	}
	return target
}

func withAnchor(path, anchor Cow) string {
	if anchor.IsEmpty() {
		return path.String()
	}
	return path.String() + "#" + anchor.String()
}

// WikiLink points at another page of the same wiki, or at a URI written
// in wiki link brackets.
type WikiLink struct {
	Path        Cow `yaml:"path"`
	Anchor      Cow `yaml:"anchor,omitempty"`
	Description Cow `yaml:"description,omitempty"`
}

// NewWikiLink builds a borrowed wiki link without anchor or description.
func NewWikiLink(path string) WikiLink {
	return WikiLink{Path: Borrowed(path)}
}

// WithDescription returns l with its description set.
func (l WikiLink) WithDescription(description string) WikiLink {
	l.Description = Borrowed(description)
	return l
}

// WithAnchor returns l with its anchor set.
func (l WikiLink) WithAnchor(anchor string) WikiLink {
	l.Anchor = Borrowed(anchor)
	return l
}

// IsDirectory reports whether the link points at a directory index.
func (l WikiLink) IsDirectory() bool {
	return strings.HasSuffix(l.Path.String(), "/")
}

// IsAnchorOnly reports whether the link points within the current page.
func (l WikiLink) IsAnchorOnly() bool {
	return l.Path.IsEmpty() && !l.Anchor.IsEmpty()
}

func (l WikiLink) Target() string { return withAnchor(l.Path, l.Anchor) }
func (l WikiLink) String() string { return linkText(l.Description, l.Target()) }

func (l WikiLink) Equal(other Element) bool {
	o, ok := other.(WikiLink)
	return ok && l.Path.value == o.Path.value &&
		l.Anchor.value == o.Anchor.value &&
		l.Description.value == o.Description.value
}

func (l WikiLink) StrictEqual(other Element) bool { return l.Equal(other) }

func (l WikiLink) IntoOwned() Element {
	return WikiLink{Path: l.Path.IntoOwned(), Anchor: l.Anchor.IntoOwned(), Description: l.Description.IntoOwned()}
}

func (l WikiLink) ToBorrowed() Element {
	return WikiLink{Path: l.Path.ToBorrowed(), Anchor: l.Anchor.ToBorrowed(), Description: l.Description.ToBorrowed()}
}

func (WikiLink) inlineElement()        {}
func (WikiLink) decoratedTextContent() {}
func (WikiLink) link()                 {}

// InterWikiLink points at a page of another wiki, either by index
// (wiki1:Page) or by name (wn.Name:Page).
type InterWikiLink struct {
	Index       int `yaml:"index"`
	Name        Cow `yaml:"name,omitempty"`
	Path        Cow `yaml:"path"`
	Anchor      Cow `yaml:"anchor,omitempty"`
	Description Cow `yaml:"description,omitempty"`
}

// IsNamed reports whether the wiki is referenced by name.
func (l InterWikiLink) IsNamed() bool {
	return !l.Name.IsEmpty()
}

// Prefix returns the wiki selector as written, without the colon.
func (l InterWikiLink) Prefix() string {
	if l.IsNamed() {
		return "wn." + l.Name.String()
	}
	return fmt.Sprintf("wiki%d", l.Index)
}

func (l InterWikiLink) Target() string {
	return l.Prefix() + ":" + withAnchor(l.Path, l.Anchor)
}

func (l InterWikiLink) String() string { return linkText(l.Description, l.Target()) }

func (l InterWikiLink) Equal(other Element) bool {
	o, ok := other.(InterWikiLink)
	return ok && l.Index == o.Index &&
		l.Name.value == o.Name.value &&
		l.Path.value == o.Path.value &&
		l.Anchor.value == o.Anchor.value &&
		l.Description.value == o.Description.value
}

func (l InterWikiLink) StrictEqual(other Element) bool { return l.Equal(other) }

func (l InterWikiLink) IntoOwned() Element {
	return InterWikiLink{
		Index:       l.Index,
		Name:        l.Name.IntoOwned(),
		Path:        l.Path.IntoOwned(),
		Anchor:      l.Anchor.IntoOwned(),
		Description: l.Description.IntoOwned(),
	}
}

func (l InterWikiLink) ToBorrowed() Element {
	return InterWikiLink{
		Index:       l.Index,
		Name:        l.Name.ToBorrowed(),
		Path:        l.Path.ToBorrowed(),
		Anchor:      l.Anchor.ToBorrowed(),
		Description: l.Description.ToBorrowed(),
	}
}

func (InterWikiLink) inlineElement()        {}
func (InterWikiLink) decoratedTextContent() {}
func (InterWikiLink) link()                 {}

// DiaryLink points at the diary page of a date.
type DiaryLink struct {
	Date        Cow `yaml:"date"`
	Anchor      Cow `yaml:"anchor,omitempty"`
	Description Cow `yaml:"description,omitempty"`
}

// NewDiaryLink builds a borrowed diary link. The date is not validated.
func NewDiaryLink(date string) DiaryLink {
	return DiaryLink{Date: Borrowed(date)}
}

// Time parses the diary date.
func (l DiaryLink) Time() (time.Time, error) {
	return time.Parse(DiaryDateLayout, l.Date.String())
}

func (l DiaryLink) Target() string {
	return "diary:" + withAnchor(l.Date, l.Anchor)
}

func (l DiaryLink) String() string { return linkText(l.Description, l.Target()) }

func (l DiaryLink) Equal(other Element) bool {
	o, ok := other.(DiaryLink)
	return ok && l.Date.value == o.Date.value &&
		l.Anchor.value == o.Anchor.value &&
		l.Description.value == o.Description.value
}

func (l DiaryLink) StrictEqual(other Element) bool { return l.Equal(other) }

func (l DiaryLink) IntoOwned() Element {
	return DiaryLink{Date: l.Date.IntoOwned(), Anchor: l.Anchor.IntoOwned(), Description: l.Description.IntoOwned()}
}

func (l DiaryLink) ToBorrowed() Element {
	return DiaryLink{Date: l.Date.ToBorrowed(), Anchor: l.Anchor.ToBorrowed(), Description: l.Description.ToBorrowed()}
}

func (DiaryLink) inlineElement()        {}
func (DiaryLink) decoratedTextContent() {}
func (DiaryLink) link()                 {}

// ExternalFileLink points at a file outside the wiki using the file: or
// local: scheme.
type ExternalFileLink struct {
	Scheme      Cow `yaml:"scheme"`
	Path        Cow `yaml:"path"`
	Description Cow `yaml:"description,omitempty"`
}

func (l ExternalFileLink) Target() string {
	return l.Scheme.String() + ":" + l.Path.String()
}

func (l ExternalFileLink) String() string { return linkText(l.Description, l.Target()) }

func (l ExternalFileLink) Equal(other Element) bool {
	o, ok := other.(ExternalFileLink)
	return ok && l.Scheme.value == o.Scheme.value &&
		l.Path.value == o.Path.value &&
		l.Description.value == o.Description.value
}

func (l ExternalFileLink) StrictEqual(other Element) bool { return l.Equal(other) }

func (l ExternalFileLink) IntoOwned() Element {
	return ExternalFileLink{Scheme: l.Scheme.IntoOwned(), Path: l.Path.IntoOwned(), Description: l.Description.IntoOwned()}
}

func (l ExternalFileLink) ToBorrowed() Element {
	return ExternalFileLink{Scheme: l.Scheme.ToBorrowed(), Path: l.Path.ToBorrowed(), Description: l.Description.ToBorrowed()}
}

func (ExternalFileLink) inlineElement()        {}
func (ExternalFileLink) decoratedTextContent() {}
func (ExternalFileLink) link()                 {}

// RawLink is a bare URI written directly in text.
type RawLink struct {
	URI Cow `yaml:"uri"`
}

// NewRawLink builds a borrowed raw link.
func NewRawLink(uri string) RawLink {
	return RawLink{URI: Borrowed(uri)}
}

func (l RawLink) Target() string { return l.URI.String() }
func (l RawLink) String() string { return l.URI.String() }

func (l RawLink) Equal(other Element) bool {
	o, ok := other.(RawLink)
	return ok && l.URI.value == o.URI.value
}

func (l RawLink) StrictEqual(other Element) bool { return l.Equal(other) }

func (l RawLink) IntoOwned() Element  { return RawLink{URI: l.URI.IntoOwned()} }
func (l RawLink) ToBorrowed() Element { return RawLink{URI: l.URI.ToBorrowed()} }

func (RawLink) inlineElement()        {}
func (RawLink) decoratedTextContent() {}
func (RawLink) link()                 {}

// TransclusionLink embeds a resource, typically an image.
type TransclusionLink struct {
	URI         Cow         `yaml:"uri"`
	Description Cow         `yaml:"description,omitempty"`
	Properties  []Attribute `yaml:"properties,omitempty"`
}

// NewTransclusionLink builds a borrowed transclusion link.
func NewTransclusionLink(uri string) TransclusionLink {
	return TransclusionLink{URI: Borrowed(uri)}
}

// Property returns the value of the named property.
func (l TransclusionLink) Property(key string) (string, bool) {
	for _, p := range l.Properties {
		if p.Key.String() == key {
			return p.Value.String(), true
		}
	}
	return "", false
}

func (l TransclusionLink) Target() string { return l.URI.String() }
func (l TransclusionLink) String() string { return linkText(l.Description, l.Target()) }

func (l TransclusionLink) Equal(other Element) bool {
	o, ok := other.(TransclusionLink)
	return ok && l.URI.value == o.URI.value &&
		l.Description.value == o.Description.value &&
		equalAttributes(l.Properties, o.Properties)
}

func (l TransclusionLink) StrictEqual(other Element) bool { return l.Equal(other) }

func (l TransclusionLink) IntoOwned() Element {
	return TransclusionLink{URI: l.URI.IntoOwned(), Description: l.Description.IntoOwned(), Properties: ownedAttributes(l.Properties)}
}

func (l TransclusionLink) ToBorrowed() Element {
	return TransclusionLink{URI: l.URI.ToBorrowed(), Description: l.Description.ToBorrowed(), Properties: borrowedAttributes(l.Properties)}
}

func (TransclusionLink) inlineElement()        {}
func (TransclusionLink) decoratedTextContent() {}
func (TransclusionLink) link()                 {}
