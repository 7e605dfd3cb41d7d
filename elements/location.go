package elements

import (
	"fmt"
	"unicode/utf8"

	"github.com/gerunddev/vimwiki/source"
)

// Position is a 1-based line and column pair. Columns count runes.
type Position struct {
	Line   int `yaml:"line" json:"line"`
	Column int `yaml:"column" json:"column"`
}

// Compare returns -1, 0 or 1 depending on whether p is before, equal to
// or after other.
func (p Position) Compare(other Position) int {
	switch {
	case p.Line < other.Line:
		return -1
	case p.Line > other.Line:
		return 1
	case p.Column < other.Column:
		return -1
	case p.Column > other.Column:
		return 1
	}
	return 0
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Region spans from Start to End, both inclusive. The zero Region is the
// default region of elements that were never parsed.
type Region struct {
	Start Position `yaml:"start" json:"start"`
	End   Position `yaml:"end" json:"end"`
}

// NewRegion builds a region from raw line and column numbers.
func NewRegion(startLine, startColumn, endLine, endColumn int) Region {
	return Region{
		Start: Position{Line: startLine, Column: startColumn},
		End:   Position{Line: endLine, Column: endColumn},
	}
}

// RegionOf materializes the region covered by the fragment of c. The end
// is the position of the last consumed character; an empty fragment yields
// a region whose start and end coincide.
func RegionOf(c source.Cursor) Region {
	start := Position{Line: c.Line(), Column: c.Column()}
	fragment := c.Fragment()
	if len(fragment) == 0 {
		return Region{Start: start, End: start}
	}

	_, size := utf8.DecodeLastRuneInString(fragment)
	last := c.StartingAt(len(fragment) - size)
	return Region{
		Start: start,
		End:   Position{Line: last.Line(), Column: last.Column()},
	}
}

// IsValid reports whether Start does not come after End.
func (r Region) IsValid() bool {
	return r.Start.Compare(r.End) <= 0
}

// Contains reports whether r fully contains other.
func (r Region) Contains(other Region) bool {
	return r.Start.Compare(other.Start) <= 0 && other.End.Compare(r.End) <= 0
}

// Lines returns the number of lines the region touches.
func (r Region) Lines() int {
	return r.End.Line - r.Start.Line + 1
}

func (r Region) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}

// LazyRegion is either a borrowed cursor over the consumed text, which is
// turned into a Region only when asked, or an already materialized Region.
type LazyRegion struct {
	cursor   source.Cursor
	region   Region
	borrowed bool
}

// BorrowedRegion defers computing the region of the consumed fragment c.
func BorrowedRegion(c source.Cursor) LazyRegion {
	return LazyRegion{cursor: c, borrowed: true}
}

// OwnedRegion wraps an already materialized region.
func OwnedRegion(r Region) LazyRegion {
	return LazyRegion{region: r}
}

// Region materializes the region. Repeated calls return equal results.
func (l LazyRegion) Region() Region {
	if l.borrowed {
		return RegionOf(l.cursor)
	}
	return l.region
}

// IsBorrowed reports whether the region still references parser input.
func (l LazyRegion) IsBorrowed() bool {
	return l.borrowed
}

// IntoOwned materializes the region and drops the reference to the input.
func (l LazyRegion) IntoOwned() LazyRegion {
	return OwnedRegion(l.Region())
}

// Located pairs an element with the region of input it was parsed from.
// Equality and hashing only consider the element.
type Located[T Element] struct {
	Element T
	region  LazyRegion
}

// NewLocated wraps element with its lazy region.
func NewLocated[T Element](element T, region LazyRegion) Located[T] {
	return Located[T]{Element: element, region: region}
}

// Unlocated wraps element with the default region.
func Unlocated[T Element](element T) Located[T] {
	return Located[T]{Element: element}
}

// Map transforms the element of l, keeping its region.
func Map[T, U Element](l Located[T], f func(T) U) Located[U] {
	return Located[U]{Element: f(l.Element), region: l.region}
}

// Inner returns the wrapped element.
func (l Located[T]) Inner() T {
	return l.Element
}

// Region materializes the region of the element.
func (l Located[T]) Region() Region {
	return l.region.Region()
}

// LazyRegion returns the unmaterialized region.
func (l Located[T]) LazyRegion() LazyRegion {
	return l.region
}

// TakeWithRegion returns l with its region replaced.
func (l Located[T]) TakeWithRegion(region LazyRegion) Located[T] {
	l.region = region
	return l
}

// TakeAtLine moves the region so that it starts on line, keeping the number
// of lines it spans. The result always carries an owned region.
func (l Located[T]) TakeAtLine(line int) Located[T] {
	r := l.Region()
	diff := r.End.Line - r.Start.Line
	r.Start.Line = line
	r.End.Line = line + diff
	l.region = OwnedRegion(r)
	return l
}

// Equal compares elements with their default equality, ignoring regions.
func (l Located[T]) Equal(other Located[T]) bool {
	return equalElements(l.Element, other.Element)
}

// StrictEqual compares elements structurally, ignoring regions.
func (l Located[T]) StrictEqual(other Located[T]) bool {
	return strictEqualElements(l.Element, other.Element)
}

// Hash returns the hash of the element.
func (l Located[T]) Hash() uint64 {
	if isNil(l.Element) {
		return 0
	}
	return Hash(l.Element)
}

// IntoOwned deep copies the element and materializes the region, so the
// result no longer references parser input.
func (l Located[T]) IntoOwned() Located[T] {
	owned := Located[T]{region: l.region.IntoOwned()}
	if !isNil(l.Element) {
		owned.Element = l.Element.IntoOwned().(T)
	} else {
		owned.Element = l.Element
	}
	return owned
}

// ToBorrowed re-views the element's text without copying it.
func (l Located[T]) ToBorrowed() Located[T] {
	if isNil(l.Element) {
		return l
	}
	l.Element = l.Element.ToBorrowed().(T)
	return l
}

func (l Located[T]) String() string {
	if isNil(l.Element) {
		return ""
	}
	return l.Element.String()
}

func isNil[T Element](e T) bool {
	return any(e) == nil
}
