package markup

import (
	"strings"

	"github.com/gerunddev/vimwiki/elements"
)

func list(l elements.List, indent int) string {
	var lines []string
	pad := strings.Repeat(" ", indent)
	for _, located := range l.Items {
		item := located.Element
		marker := item.Marker.String() + item.Suffix.String()
		nested := indent + len(marker) + 1
		first := true

		for _, c := range item.Contents {
			switch content := c.Element.(type) {
			case elements.List:
				lines = append(lines, list(content, nested))
			case elements.InlineContainer:
				if first {
					prefix := pad + marker + " "
					if item.IsTodo() {
						prefix += item.Todo.String() + " "
					}
					lines = append(lines, strings.TrimRight(prefix+Render(content), " "))
					first = false
					continue
				}
				lines = append(lines, strings.Repeat(" ", nested)+Render(content))
			}
		}
	}
	return strings.Join(lines, "\n")
}

func definitionList(d elements.DefinitionList) string {
	var lines []string
	for _, entry := range d.Entries() {
		term := Render(entry.Term.Element)
		if len(entry.Definitions) == 1 {
			lines = append(lines, term+":: "+Render(entry.Definitions[0].Element))
			continue
		}
		lines = append(lines, term+"::")
		for _, def := range entry.Definitions {
			lines = append(lines, ":: "+Render(def.Element))
		}
	}
	return strings.Join(lines, "\n")
}

func table(t elements.Table) string {
	lines := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		cells := make([]string, len(r.Element.Cells))
		for j, c := range r.Element.Cells {
			cells[j] = cell(c.Element)
		}
		line := "|" + strings.Join(cells, "|") + "|"
		if t.Centered {
			line = " " + line
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func cell(c elements.Cell) string {
	switch c.Kind {
	case elements.SpanLeftCell:
		return " > "
	case elements.SpanAboveCell:
		return ` \/ `
	case elements.AlignCell:
		switch c.Align {
		case elements.AlignLeft:
			return ":---"
		case elements.AlignRight:
			return "---:"
		case elements.AlignCenter:
			return ":--:"
		}
		return "----"
	}
	return " " + Render(c.Content) + " "
}
