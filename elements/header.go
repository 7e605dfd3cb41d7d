package elements

// Header levels allowed by the markup.
const (
	MinHeaderLevel = 1
	MaxHeaderLevel = 6
)

// Header is a section title such as "== Title ==".
type Header struct {
	Level    int             `yaml:"level"`
	Content  InlineContainer `yaml:"content"`
	Centered bool            `yaml:"centered,omitempty"`
}

// NewHeader builds a header.
func NewHeader(level int, content InlineContainer, centered bool) Header {
	return Header{Level: level, Content: content, Centered: centered}
}

func (h Header) String() string { return h.Content.String() }

func (h Header) Equal(other Element) bool {
	o, ok := other.(Header)
	return ok && h.Level == o.Level && h.Centered == o.Centered && h.Content.Equal(o.Content)
}

func (h Header) StrictEqual(other Element) bool {
	o, ok := other.(Header)
	return ok && h.Level == o.Level && h.Centered == o.Centered && h.Content.StrictEqual(o.Content)
}

func (h Header) IntoOwned() Element {
	return Header{Level: h.Level, Content: ownedContainer(h.Content), Centered: h.Centered}
}

func (h Header) ToBorrowed() Element {
	return Header{Level: h.Level, Content: borrowedContainer(h.Content), Centered: h.Centered}
}

func (Header) blockElement() {}
