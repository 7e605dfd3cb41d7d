package elements

import (
	"encoding/binary"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Page is the root of a parsed document.
type Page struct {
	Contents []Located[BlockElement] `yaml:"contents"`
}

// NewPage builds a page from located block elements.
func NewPage(elements ...Located[BlockElement]) Page {
	return Page{Contents: elements}
}

// Elements returns the block elements of the page in document order.
func (p Page) Elements() []Located[BlockElement] {
	return p.Contents
}

func (p Page) String() string {
	parts := make([]string, len(p.Contents))
	for i, e := range p.Contents {
		parts[i] = e.String()
	}
	return strings.Join(parts, "\n")
}

func (p Page) hash() uint64 {
	h := xxhash.New()
	var buf [8]byte
	for _, e := range p.Contents {
		binary.LittleEndian.PutUint64(buf[:], e.Hash())
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}

func (p Page) Equal(other Element) bool {
	o, ok := other.(Page)
	return ok && equalLocated(p.Contents, o.Contents)
}

func (p Page) StrictEqual(other Element) bool {
	o, ok := other.(Page)
	return ok && strictEqualLocated(p.Contents, o.Contents)
}

func (p Page) IntoOwned() Element  { return Page{Contents: ownedLocated(p.Contents)} }
func (p Page) ToBorrowed() Element { return Page{Contents: borrowedLocated(p.Contents)} }
