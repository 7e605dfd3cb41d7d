// Package elements defines the vimwiki document tree produced by the parser.
//
// Every node comes in a borrowed form, whose text views the parsed input,
// and an owned form that holds private copies. Both forms render, compare
// and hash the same way.
package elements

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Element is implemented by every node of the document tree.
type Element interface {
	fmt.Stringer

	// Equal is the default equality. It ignores regions and ownership.
	Equal(other Element) bool

	// StrictEqual requires the same variant and the same children,
	// compared recursively with StrictEqual.
	StrictEqual(other Element) bool

	// IntoOwned deep copies all text so no input is referenced.
	IntoOwned() Element

	// ToBorrowed re-views existing text without copying it.
	ToBorrowed() Element
}

// BlockElement is a top level element of a page.
type BlockElement interface {
	Element
	blockElement()
}

// InlineElement is an element found within a line of text.
type InlineElement interface {
	Element
	inlineElement()
}

// DecoratedTextContent is an element allowed inside decorated text.
type DecoratedTextContent interface {
	Element
	decoratedTextContent()
}

// Hash returns the xxhash of the element's rendered text. Elements that
// are equal always hash the same.
func Hash(e Element) uint64 {
	if e == nil {
		return 0
	}
	if h, ok := e.(hasher); ok {
		return h.hash()
	}
	return xxhash.Sum64String(e.String())
}

// hasher is implemented by elements whose equality ignores part of their
// rendered text, such as the order of definition list entries.
type hasher interface {
	hash() uint64
}

func equalElements(a, b Element) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

func strictEqualElements(a, b Element) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.StrictEqual(b)
}

func equalLocated[T Element](a, b []Located[T]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func strictEqualLocated[T Element](a, b []Located[T]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].StrictEqual(b[i]) {
			return false
		}
	}
	return true
}

func ownedLocated[T Element](in []Located[T]) []Located[T] {
	if in == nil {
		return nil
	}
	out := make([]Located[T], len(in))
	for i, l := range in {
		out[i] = l.IntoOwned()
	}
	return out
}

func borrowedLocated[T Element](in []Located[T]) []Located[T] {
	if in == nil {
		return nil
	}
	out := make([]Located[T], len(in))
	for i, l := range in {
		out[i] = l.ToBorrowed()
	}
	return out
}
