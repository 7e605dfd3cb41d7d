package elements

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gerunddev/vimwiki/source"
)

func TestRegionOf(t *testing.T) {
	input := source.New("abc\ndef")

	tests := []struct {
		name string
		n    int
		want Region
	}{
		{"empty", 0, NewRegion(1, 1, 1, 1)},
		{"single character", 1, NewRegion(1, 1, 1, 1)},
		{"within line", 3, NewRegion(1, 1, 1, 3)},
		{"ending with newline", 4, NewRegion(1, 1, 1, 4)},
		{"across lines", 5, NewRegion(1, 1, 2, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RegionOf(source.Between(input, input.Advance(tt.n)))
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}
}

func TestRegionOfMultibyteEnd(t *testing.T) {
	input := source.New("añ")
	assert.Equal(t, NewRegion(1, 1, 1, 2), RegionOf(input))
}

func TestRegionHelpers(t *testing.T) {
	outer := NewRegion(1, 1, 4, 10)
	inner := NewRegion(2, 3, 3, 1)

	assert.True(t, outer.Contains(inner))
	assert.False(t, inner.Contains(outer))
	assert.Equal(t, 4, outer.Lines())
	assert.Equal(t, "1:1-4:10", outer.String())
	assert.False(t, NewRegion(2, 1, 1, 1).IsValid())
}

func TestLazyRegionMaterialization(t *testing.T) {
	input := source.New("hello world")
	lazy := BorrowedRegion(input.Take(5))

	require.True(t, lazy.IsBorrowed())
	first := lazy.Region()
	assert.Equal(t, first, lazy.Region())
	assert.Equal(t, NewRegion(1, 1, 1, 5), first)

	owned := lazy.IntoOwned()
	assert.False(t, owned.IsBorrowed())
	assert.Equal(t, first, owned.Region())
}

func TestLocatedEqualityIgnoresRegion(t *testing.T) {
	a := NewLocated(NewText("abc"), OwnedRegion(NewRegion(1, 1, 1, 3)))
	b := NewLocated(NewText("abc"), OwnedRegion(NewRegion(9, 2, 9, 4)))
	c := Unlocated(NewText("abd"))

	assert.True(t, a.Equal(b))
	assert.True(t, a.StrictEqual(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.False(t, a.Equal(c))
}

func TestLocatedMap(t *testing.T) {
	region := OwnedRegion(NewRegion(2, 4, 2, 8))
	text := NewLocated(NewText("value"), region)

	mapped := Map(text, func(t Text) InlineElement { return NewCode(t.String()) })
	assert.Equal(t, text.Region(), mapped.Region())
	assert.Equal(t, "value", mapped.String())
	_, ok := mapped.Element.(Code)
	assert.True(t, ok)
}

func TestLocatedTakeAtLine(t *testing.T) {
	l := NewLocated(NewText("x"), OwnedRegion(NewRegion(3, 2, 5, 7)))

	moved := l.TakeAtLine(10)
	assert.Equal(t, NewRegion(10, 2, 12, 7), moved.Region())
	assert.False(t, moved.LazyRegion().IsBorrowed())

	input := source.New("abc")
	borrowed := NewLocated(NewText("abc"), BorrowedRegion(input))
	assert.Equal(t, NewRegion(4, 1, 4, 3), borrowed.TakeAtLine(4).Region())
	assert.False(t, borrowed.TakeAtLine(4).LazyRegion().IsBorrowed())
}

func TestLocatedTakeWithRegion(t *testing.T) {
	l := Unlocated(NewText("x"))
	r := OwnedRegion(NewRegion(1, 2, 1, 2))
	assert.Equal(t, NewRegion(1, 2, 1, 2), l.TakeWithRegion(r).Region())
	assert.Equal(t, Region{}, l.Region())
}

func TestLocatedIntoOwned(t *testing.T) {
	input := source.New("borrowed text")
	l := NewLocated(Text{Value: Borrowed(input.Fragment()[:8])}, BorrowedRegion(input.Take(8)))
	require.False(t, l.Element.Value.IsOwned())

	owned := l.IntoOwned()
	assert.True(t, owned.Element.Value.IsOwned())
	assert.False(t, owned.LazyRegion().IsBorrowed())
	assert.Equal(t, l.Region(), owned.Region())
	assert.True(t, l.StrictEqual(owned))

	again := owned.ToBorrowed()
	assert.False(t, again.Element.Value.IsOwned())
	assert.True(t, again.StrictEqual(owned))
}

func TestLocatedNilInterfaceElement(t *testing.T) {
	var l Located[InlineElement]
	assert.Equal(t, "", l.String())
	assert.Equal(t, uint64(0), l.Hash())
	assert.True(t, l.Equal(Located[InlineElement]{}))
	assert.NotPanics(t, func() { _ = l.IntoOwned() })
	assert.NotPanics(t, func() { _ = l.ToBorrowed() })
}
