package elements

import (
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// DefinitionListValue is the content of a term or a definition. Default
// equality and hashing compare the rendered text, so two values built from
// differently shaped content with the same text are equal.
type DefinitionListValue struct {
	Content InlineContainer `yaml:"content"`
}

// Term is the key side of a definition list.
type Term = DefinitionListValue

// Definition is the value side of a definition list.
type Definition = DefinitionListValue

// NewDefinitionListValue wraps inline content.
func NewDefinitionListValue(content InlineContainer) DefinitionListValue {
	return DefinitionListValue{Content: content}
}

// DefinitionListValueFromText builds a value holding a single text element.
func DefinitionListValueFromText(s string) DefinitionListValue {
	return DefinitionListValue{Content: TextContainer(s)}
}

// EqualText reports whether the value renders as s.
func (v DefinitionListValue) EqualText(s string) bool {
	return v.String() == s
}

// EqualContainer reports whether the value renders the same as c.
func (v DefinitionListValue) EqualContainer(c InlineContainer) bool {
	return v.String() == c.String()
}

func (v DefinitionListValue) String() string { return v.Content.String() }

func (v DefinitionListValue) Equal(other Element) bool {
	o, ok := other.(DefinitionListValue)
	return ok && v.String() == o.String()
}

func (v DefinitionListValue) StrictEqual(other Element) bool {
	o, ok := other.(DefinitionListValue)
	return ok && v.Content.StrictEqual(o.Content)
}

func (v DefinitionListValue) IntoOwned() Element {
	return DefinitionListValue{Content: ownedContainer(v.Content)}
}

func (v DefinitionListValue) ToBorrowed() Element {
	return DefinitionListValue{Content: borrowedContainer(v.Content)}
}

// DefinitionEntry is a term with its definitions.
type DefinitionEntry struct {
	Term        Located[Term]         `yaml:"term"`
	Definitions []Located[Definition] `yaml:"definitions"`
}

// DefinitionList maps terms to definitions, keyed by the rendered text of
// the term and kept in insertion order.
type DefinitionList struct {
	entries *linkedhashmap.Map
}

// NewDefinitionList builds a list from entries. Entries whose terms render
// the same are combined.
func NewDefinitionList(entries ...DefinitionEntry) DefinitionList {
	d := DefinitionList{entries: linkedhashmap.New()}
	for _, e := range entries {
		d.add(e.Term, e.Definitions)
	}
	return d
}

// clone gives d a map of its own. Lists are values, so a copy never sees
// changes made through Add or Set on another copy.
func (d *DefinitionList) clone() {
	entries := linkedhashmap.New()
	if d.entries != nil {
		it := d.entries.Iterator()
		for it.Next() {
			e := *it.Value().(*DefinitionEntry)
			e.Definitions = append([]Located[Definition](nil), e.Definitions...)
			entries.Put(it.Key(), &e)
		}
	}
	d.entries = entries
}

func (d *DefinitionList) add(term Located[Term], definitions []Located[Definition]) {
	key := term.String()
	if existing, ok := d.entries.Get(key); ok {
		entry := existing.(*DefinitionEntry)
		entry.Definitions = append(entry.Definitions, definitions...)
		return
	}
	defs := make([]Located[Definition], 0, len(definitions))
	defs = append(defs, definitions...)
	d.entries.Put(key, &DefinitionEntry{Term: term, Definitions: defs})
}

// Add appends definitions to term, creating the entry when the term is
// new. The first located term seen for a key is kept.
func (d *DefinitionList) Add(term Located[Term], definitions ...Located[Definition]) {
	d.clone()
	d.add(term, definitions)
}

// Set replaces the definitions of term.
func (d *DefinitionList) Set(term Located[Term], definitions []Located[Definition]) {
	d.clone()
	d.entries.Put(term.String(), &DefinitionEntry{Term: term, Definitions: definitions})
}

// Get returns the definitions of the term rendering as term.
func (d DefinitionList) Get(term string) ([]Located[Definition], bool) {
	if d.entries == nil {
		return nil, false
	}
	v, ok := d.entries.Get(term)
	if !ok {
		return nil, false
	}
	return v.(*DefinitionEntry).Definitions, true
}

// Len returns the number of distinct terms.
func (d DefinitionList) Len() int {
	if d.entries == nil {
		return 0
	}
	return d.entries.Size()
}

// Entries returns the terms and their definitions in insertion order.
func (d DefinitionList) Entries() []DefinitionEntry {
	if d.entries == nil {
		return nil
	}
	entries := make([]DefinitionEntry, 0, d.entries.Size())
	it := d.entries.Iterator()
	for it.Next() {
		entries = append(entries, *it.Value().(*DefinitionEntry))
	}
	return entries
}

// Each calls fn for every term in insertion order until fn returns false.
func (d DefinitionList) Each(fn func(term Located[Term], definitions []Located[Definition]) bool) {
	if d.entries == nil {
		return
	}
	it := d.entries.Iterator()
	for it.Next() {
		e := it.Value().(*DefinitionEntry)
		if !fn(e.Term, e.Definitions) {
			return
		}
	}
}

// Terms returns every term in insertion order.
func (d DefinitionList) Terms() []Located[Term] {
	var terms []Located[Term]
	for _, e := range d.Entries() {
		terms = append(terms, e.Term)
	}
	return terms
}

// Definitions returns every definition of every term, flattened.
func (d DefinitionList) Definitions() []Located[Definition] {
	var defs []Located[Definition]
	for _, e := range d.Entries() {
		defs = append(defs, e.Definitions...)
	}
	return defs
}

func (d DefinitionList) String() string {
	var lines []string
	for _, e := range d.Entries() {
		lines = append(lines, e.Term.String())
		for _, def := range e.Definitions {
			lines = append(lines, def.String())
		}
	}
	return strings.Join(lines, "\n")
}

func (d DefinitionList) compare(other Element, same func(a, b Located[DefinitionListValue]) bool, sameDefs func(a, b []Located[Definition]) bool) bool {
	o, ok := other.(DefinitionList)
	if !ok || d.Len() != o.Len() {
		return false
	}
	for _, e := range d.Entries() {
		v, found := o.entries.Get(e.Term.String())
		if !found {
			return false
		}
		oe := v.(*DefinitionEntry)
		if !same(e.Term, oe.Term) || !sameDefs(e.Definitions, oe.Definitions) {
			return false
		}
	}
	return true
}

func (d DefinitionList) Equal(other Element) bool {
	return d.compare(other, Located[Term].Equal, equalLocated[Definition])
}

func (d DefinitionList) StrictEqual(other Element) bool {
	return d.compare(other, Located[Term].StrictEqual, strictEqualLocated[Definition])
}

// hash combines the entry hashes with addition so that lists holding the
// same entries in another order hash the same, as they are equal.
func (d DefinitionList) hash() uint64 {
	var sum uint64
	d.Each(func(term Located[Term], definitions []Located[Definition]) bool {
		h := xxhash.New()
		_, _ = h.WriteString(term.String())
		for _, def := range definitions {
			_, _ = h.WriteString("\x00")
			_, _ = h.WriteString(def.String())
		}
		sum += h.Sum64()
		return true
	})
	return sum
}

func (d DefinitionList) IntoOwned() Element {
	entries := d.Entries()
	for i, e := range entries {
		entries[i] = DefinitionEntry{Term: e.Term.IntoOwned(), Definitions: ownedLocated(e.Definitions)}
	}
	return NewDefinitionList(entries...)
}

func (d DefinitionList) ToBorrowed() Element {
	entries := d.Entries()
	for i, e := range entries {
		entries[i] = DefinitionEntry{Term: e.Term.ToBorrowed(), Definitions: borrowedLocated(e.Definitions)}
	}
	return NewDefinitionList(entries...)
}

// MarshalYAML renders the entries in order.
func (d DefinitionList) MarshalYAML() (interface{}, error) {
	return d.Entries(), nil
}

func (DefinitionList) blockElement() {}
