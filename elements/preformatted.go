package elements

// CodeBlock is preformatted text between {{{ and }}}.
type CodeBlock struct {
	Language Cow         `yaml:"language,omitempty"`
	Metadata []Attribute `yaml:"metadata,omitempty"`
	Lines    []Cow       `yaml:"lines"`
}

// NewCodeBlock builds a borrowed code block.
func NewCodeBlock(language string, lines ...string) CodeBlock {
	b := CodeBlock{Language: Borrowed(language)}
	for _, l := range lines {
		b.Lines = append(b.Lines, Borrowed(l))
	}
	return b
}

// Meta returns the value of a metadata key.
func (b CodeBlock) Meta(key string) (string, bool) {
	for _, a := range b.Metadata {
		if a.Key.String() == key {
			return a.Value.String(), true
		}
	}
	return "", false
}

func (b CodeBlock) String() string { return joinCows(b.Lines, "\n") }

func (b CodeBlock) Equal(other Element) bool {
	o, ok := other.(CodeBlock)
	return ok && b.Language.value == o.Language.value &&
		equalAttributes(b.Metadata, o.Metadata) &&
		equalCows(b.Lines, o.Lines)
}

func (b CodeBlock) StrictEqual(other Element) bool { return b.Equal(other) }

func (b CodeBlock) IntoOwned() Element {
	return CodeBlock{Language: b.Language.IntoOwned(), Metadata: ownedAttributes(b.Metadata), Lines: ownedCows(b.Lines)}
}

func (b CodeBlock) ToBorrowed() Element {
	return CodeBlock{Language: b.Language.ToBorrowed(), Metadata: borrowedAttributes(b.Metadata), Lines: borrowedCows(b.Lines)}
}

func (CodeBlock) blockElement() {}

// MathBlock is a display formula between {{$ and }}$, optionally inside a
// named environment.
type MathBlock struct {
	Environment Cow   `yaml:"environment,omitempty"`
	Lines       []Cow `yaml:"lines"`
}

// NewMathBlock builds a borrowed math block.
func NewMathBlock(environment string, lines ...string) MathBlock {
	b := MathBlock{Environment: Borrowed(environment)}
	for _, l := range lines {
		b.Lines = append(b.Lines, Borrowed(l))
	}
	return b
}

func (b MathBlock) String() string { return joinCows(b.Lines, "\n") }

func (b MathBlock) Equal(other Element) bool {
	o, ok := other.(MathBlock)
	return ok && b.Environment.value == o.Environment.value && equalCows(b.Lines, o.Lines)
}

func (b MathBlock) StrictEqual(other Element) bool { return b.Equal(other) }

func (b MathBlock) IntoOwned() Element {
	return MathBlock{Environment: b.Environment.IntoOwned(), Lines: ownedCows(b.Lines)}
}

func (b MathBlock) ToBorrowed() Element {
	return MathBlock{Environment: b.Environment.ToBorrowed(), Lines: borrowedCows(b.Lines)}
}

func (MathBlock) blockElement() {}

// MathInline is a formula between dollar signs.
type MathInline struct {
	Formula Cow `yaml:"formula"`
}

// NewMathInline builds borrowed inline math.
func NewMathInline(formula string) MathInline {
	return MathInline{Formula: Borrowed(formula)}
}

func (m MathInline) String() string { return m.Formula.String() }

func (m MathInline) Equal(other Element) bool {
	o, ok := other.(MathInline)
	return ok && m.Formula.value == o.Formula.value
}

func (m MathInline) StrictEqual(other Element) bool { return m.Equal(other) }

func (m MathInline) IntoOwned() Element  { return MathInline{Formula: m.Formula.IntoOwned()} }
func (m MathInline) ToBorrowed() Element { return MathInline{Formula: m.Formula.ToBorrowed()} }

func (MathInline) inlineElement() {}
