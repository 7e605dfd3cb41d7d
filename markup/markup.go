// Package markup renders document trees back to vimwiki text.
package markup

import (
	"strings"

	"github.com/gerunddev/vimwiki/elements"
)

// Page renders every block of page, separated by blank lines.
func Page(page elements.Page) string {
	blocks := make([]string, 0, len(page.Elements()))
	for _, b := range page.Elements() {
		blocks = append(blocks, Render(b.Element))
	}
	if len(blocks) == 0 {
		return ""
	}
	return strings.Join(blocks, "\n\n") + "\n"
}

// Render renders a single element. Block elements are rendered without a
// trailing newline.
func Render(e elements.Element) string {
	switch e := e.(type) {
	case nil:
		return ""
	case elements.Page:
		return Page(e)
	case elements.Header:
		return header(e)
	case elements.Paragraph:
		lines := make([]string, len(e.Lines))
		for i, line := range e.Lines {
			lines[i] = Render(line)
		}
		return strings.Join(lines, "\n")
	case elements.List:
		return list(e, 0)
	case elements.DefinitionList:
		return definitionList(e)
	case elements.Table:
		return table(e)
	case elements.CodeBlock:
		return codeBlock(e)
	case elements.MathBlock:
		return mathBlock(e)
	case elements.Blockquote:
		return blockquote(e)
	case elements.Divider:
		return "----"
	case elements.Placeholder:
		if e.Value.IsEmpty() {
			return "%" + e.Name.String()
		}
		return "%" + e.Name.String() + " " + e.Value.String()
	case elements.Comment:
		if e.MultiLine {
			return "%%+" + joinLines(e.Lines, "") + "+%%"
		}
		return "%%" + joinLines(e.Lines, "")
	case elements.Tags:
		return e.String()
	case elements.InlineContainer:
		var b strings.Builder
		for _, l := range e.Elements {
			b.WriteString(Render(l.Element))
		}
		return b.String()
	case elements.DefinitionListValue:
		return Render(e.Content)
	case elements.Text:
		return e.String()
	case elements.DecoratedText:
		return decoratedText(e)
	case elements.Keyword:
		return e.String()
	case elements.MathInline:
		return "$" + e.Formula.String() + "$"
	case elements.Code:
		return "`" + e.Value.String() + "`"
	case elements.Link:
		return link(e)
	}
	return e.String()
}

func header(h elements.Header) string {
	marks := strings.Repeat("=", h.Level)
	line := marks + " " + Render(h.Content) + " " + marks
	if h.Centered {
		return " " + line
	}
	return line
}

func joinLines(lines []elements.Cow, prefix string) string {
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = prefix + l.String()
	}
	return strings.Join(parts, "\n")
}

func codeBlock(b elements.CodeBlock) string {
	var open strings.Builder
	open.WriteString("{{{")
	open.WriteString(b.Language.String())
	for _, a := range b.Metadata {
		if open.Len() > 3 {
			open.WriteString(" ")
		}
		open.WriteString(a.Key.String() + `="` + a.Value.String() + `"`)
	}
	return fenced(open.String(), b.Lines, "}}}")
}

func mathBlock(b elements.MathBlock) string {
	open := "{{$"
	if !b.Environment.IsEmpty() {
		open += "%" + b.Environment.String() + "%"
	}
	return fenced(open, b.Lines, "}}$")
}

func fenced(open string, lines []elements.Cow, close string) string {
	if len(lines) == 0 {
		return open + "\n" + close
	}
	return open + "\n" + joinLines(lines, "") + "\n" + close
}

func blockquote(q elements.Blockquote) string {
	if q.Style == elements.ArrowQuote {
		return joinLines(q.Lines, "> ")
	}
	return joinLines(q.Lines, "    ")
}
