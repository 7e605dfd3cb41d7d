package elements

import (
	"reflect"
	"strings"
)

// Kind returns the lowercase type name of an element, such as "paragraph"
// or "wikilink".
func Kind(e Element) string {
	if e == nil {
		return ""
	}
	t := reflect.TypeOf(e)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return strings.ToLower(t.Name())
}

type locatedYAML struct {
	Kind    string      `yaml:"kind"`
	Region  string      `yaml:"region"`
	Element interface{} `yaml:"element"`
}

// MarshalYAML materializes the region and tags the element with its kind.
func (l Located[T]) MarshalYAML() (interface{}, error) {
	if isNil(l.Element) {
		return nil, nil
	}
	return locatedYAML{
		Kind:    Kind(l.Element),
		Region:  l.Region().String(),
		Element: l.Element,
	}, nil
}
