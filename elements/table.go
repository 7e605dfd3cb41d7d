package elements

import "strings"

// CellKind distinguishes content cells from span and divider cells.
type CellKind int

const (
	ContentCell CellKind = iota
	SpanLeftCell
	SpanAboveCell
	AlignCell
)

func (k CellKind) String() string {
	switch k {
	case SpanLeftCell:
		return "span-left"
	case SpanAboveCell:
		return "span-above"
	case AlignCell:
		return "align"
	}
	return "content"
}

// MarshalYAML renders the kind by name.
func (k CellKind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// ColumnAlign is the alignment declared by a divider row cell.
type ColumnAlign int

const (
	AlignDefault ColumnAlign = iota
	AlignLeft
	AlignCenter
	AlignRight
)

func (a ColumnAlign) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	}
	return "default"
}

// MarshalYAML renders the alignment by name.
func (a ColumnAlign) MarshalYAML() (interface{}, error) {
	return a.String(), nil
}

// Cell is one cell of a table row.
type Cell struct {
	Kind    CellKind        `yaml:"kind"`
	Content InlineContainer `yaml:"content,omitempty"`
	Align   ColumnAlign     `yaml:"align,omitempty"`
}

// ContentCellOf builds a cell holding inline content.
func ContentCellOf(content InlineContainer) Cell {
	return Cell{Kind: ContentCell, Content: content}
}

func (c Cell) String() string {
	switch c.Kind {
	case SpanLeftCell:
		return ">"
	case SpanAboveCell:
		return "\\/"
	case AlignCell:
		return "---"
	}
	return c.Content.String()
}

func (c Cell) Equal(other Element) bool {
	o, ok := other.(Cell)
	return ok && c.Kind == o.Kind && c.Align == o.Align && c.Content.Equal(o.Content)
}

func (c Cell) StrictEqual(other Element) bool {
	o, ok := other.(Cell)
	return ok && c.Kind == o.Kind && c.Align == o.Align && c.Content.StrictEqual(o.Content)
}

func (c Cell) IntoOwned() Element {
	c.Content = ownedContainer(c.Content)
	return c
}

func (c Cell) ToBorrowed() Element {
	c.Content = borrowedContainer(c.Content)
	return c
}

// Row is a line of a table.
type Row struct {
	Cells []Located[Cell] `yaml:"cells"`
}

// IsDivider reports whether the row separates the header from the body.
func (r Row) IsDivider() bool {
	if len(r.Cells) == 0 {
		return false
	}
	for _, c := range r.Cells {
		if c.Element.Kind != AlignCell {
			return false
		}
	}
	return true
}

func (r Row) String() string {
	parts := make([]string, len(r.Cells))
	for i, c := range r.Cells {
		parts[i] = c.String()
	}
	return strings.Join(parts, " | ")
}

func (r Row) Equal(other Element) bool {
	o, ok := other.(Row)
	return ok && equalLocated(r.Cells, o.Cells)
}

func (r Row) StrictEqual(other Element) bool {
	o, ok := other.(Row)
	return ok && strictEqualLocated(r.Cells, o.Cells)
}

func (r Row) IntoOwned() Element  { return Row{Cells: ownedLocated(r.Cells)} }
func (r Row) ToBorrowed() Element { return Row{Cells: borrowedLocated(r.Cells)} }

// Table is a grid of rows. A centered table is indented in the source.
type Table struct {
	Rows     []Located[Row] `yaml:"rows"`
	Centered bool           `yaml:"centered,omitempty"`
}

// Header returns the rows above the first divider row, or nil when the
// table has no divider.
func (t Table) Header() []Located[Row] {
	for i, r := range t.Rows {
		if r.Element.IsDivider() {
			return t.Rows[:i]
		}
	}
	return nil
}

// Body returns the rows below the first divider row, or every row when
// the table has no divider.
func (t Table) Body() []Located[Row] {
	for i, r := range t.Rows {
		if r.Element.IsDivider() {
			return t.Rows[i+1:]
		}
	}
	return t.Rows
}

func (t Table) String() string {
	parts := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		parts[i] = r.String()
	}
	return strings.Join(parts, "\n")
}

func (t Table) Equal(other Element) bool {
	o, ok := other.(Table)
	return ok && t.Centered == o.Centered && equalLocated(t.Rows, o.Rows)
}

func (t Table) StrictEqual(other Element) bool {
	o, ok := other.(Table)
	return ok && t.Centered == o.Centered && strictEqualLocated(t.Rows, o.Rows)
}

func (t Table) IntoOwned() Element {
	return Table{Rows: ownedLocated(t.Rows), Centered: t.Centered}
}

func (t Table) ToBorrowed() Element {
	return Table{Rows: borrowedLocated(t.Rows), Centered: t.Centered}
}

func (Table) blockElement() {}
