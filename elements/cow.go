package elements

import "strings"

// Cow holds text that either views parser input or owns a private copy.
type Cow struct {
	value string
	owned bool
}

// Borrowed views s without copying it.
func Borrowed(s string) Cow {
	return Cow{value: s}
}

// Owned stores a private copy of s.
func Owned(s string) Cow {
	return Cow{value: strings.Clone(s), owned: true}
}

func (c Cow) String() string {
	return c.value
}

// IsOwned reports whether c holds its own copy of the text.
func (c Cow) IsOwned() bool {
	return c.owned
}

// IsEmpty reports whether the text is empty.
func (c Cow) IsEmpty() bool {
	return c.value == ""
}

// IsZero lets yaml omitempty skip empty text regardless of ownership.
func (c Cow) IsZero() bool {
	return c.value == ""
}

// Len returns the length of the text in bytes.
func (c Cow) Len() int {
	return len(c.value)
}

// IntoOwned copies borrowed text. Owned text is returned as is.
func (c Cow) IntoOwned() Cow {
	if c.owned {
		return c
	}
	return Owned(c.value)
}

// ToBorrowed views the text without copying it.
func (c Cow) ToBorrowed() Cow {
	return Cow{value: c.value}
}

// MarshalYAML renders the text as a plain string.
func (c Cow) MarshalYAML() (interface{}, error) {
	return c.value, nil
}

func ownedCows(in []Cow) []Cow {
	if in == nil {
		return nil
	}
	out := make([]Cow, len(in))
	for i, c := range in {
		out[i] = c.IntoOwned()
	}
	return out
}

func borrowedCows(in []Cow) []Cow {
	if in == nil {
		return nil
	}
	out := make([]Cow, len(in))
	for i, c := range in {
		out[i] = c.ToBorrowed()
	}
	return out
}

func equalCows(a, b []Cow) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].value != b[i].value {
			return false
		}
	}
	return true
}

func joinCows(in []Cow, sep string) string {
	parts := make([]string, len(in))
	for i, c := range in {
		parts[i] = c.value
	}
	return strings.Join(parts, sep)
}

// Attribute is an ordered key/value pair such as code block metadata or
// transclusion properties.
type Attribute struct {
	Key   Cow `yaml:"key"`
	Value Cow `yaml:"value"`
}

// NewAttribute builds a borrowed attribute.
func NewAttribute(key, value string) Attribute {
	return Attribute{Key: Borrowed(key), Value: Borrowed(value)}
}

func ownedAttributes(in []Attribute) []Attribute {
	if in == nil {
		return nil
	}
	out := make([]Attribute, len(in))
	for i, a := range in {
		out[i] = Attribute{Key: a.Key.IntoOwned(), Value: a.Value.IntoOwned()}
	}
	return out
}

func borrowedAttributes(in []Attribute) []Attribute {
	if in == nil {
		return nil
	}
	out := make([]Attribute, len(in))
	for i, a := range in {
		out[i] = Attribute{Key: a.Key.ToBorrowed(), Value: a.Value.ToBorrowed()}
	}
	return out
}

func equalAttributes(a, b []Attribute) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Key.value != b[i].Key.value || a[i].Value.value != b[i].Value.value {
			return false
		}
	}
	return true
}
