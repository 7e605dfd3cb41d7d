// Package outline prints a document tree one element per line with the
// region each element was parsed from
package outline

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/gerunddev/vimwiki/elements"
	"github.com/gerunddev/vimwiki/internal/styles"
)

// Node is one element of an outline
type Node struct {
	Kind     string
	Region   elements.Region
	Summary  string
	Children []Node
}

// Build returns the outline of a parsed page
func Build(page elements.Located[elements.Page]) Node {
	return node(page.Element, page.Region())
}

// Count returns the number of nodes below and including n
func (n Node) Count() int {
	count := 1
	for _, c := range n.Children {
		count += c.Count()
	}
	return count
}

// Walk visits n and its descendants depth first. Returning false from fn
// skips the children of a node
func (n Node) Walk(fn func(n Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n Node) walk(fn func(n Node, depth int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		c.walk(fn, depth+1)
	}
}

// Write prints the outline to w. Summaries are cut to fit width display
// cells; a width of zero disables truncation
func Write(w io.Writer, root Node, width int) error {
	var err error
	root.Walk(func(n Node, depth int) bool {
		if err != nil {
			return false
		}
		_, err = fmt.Fprintln(w, line(n, depth, width))
		return true
	})
	return err
}

// String renders the outline without styling
func (n Node) String() string {
	var b strings.Builder
	n.Walk(func(n Node, depth int) bool {
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(n.Kind)
		b.WriteString(" ")
		b.WriteString(n.Region.String())
		if n.Summary != "" {
			b.WriteString(" ")
			b.WriteString(n.Summary)
		}
		b.WriteString("\n")
		return true
	})
	return b.String()
}

func line(n Node, depth, width int) string {
	indent := strings.Repeat("  ", depth)
	head := indent + styles.KindStyle(n.Kind).Render(n.Kind) + " " + styles.RegionStyle.Render(n.Region.String())
	if n.Summary == "" {
		return head
	}

	summary := n.Summary
	if width > 0 {
		used := len(indent) + runewidth.StringWidth(n.Kind) + 1 + len(n.Region.String()) + 1
		if room := width - used; room > 0 {
			summary = runewidth.Truncate(summary, room, "…")
		} else {
			summary = ""
		}
	}
	if summary == "" {
		return head
	}
	return head + " " + summary
}

func node(e elements.Element, region elements.Region) Node {
	return Node{
		Kind:     elements.Kind(e),
		Region:   region,
		Summary:  summary(e),
		Children: children(e),
	}
}

func located[T elements.Element](ls []elements.Located[T]) []Node {
	var nodes []Node
	for _, l := range ls {
		// Containers only group their elements; list their children in
		// place of the container itself
		if c, ok := any(l.Element).(elements.InlineContainer); ok {
			nodes = append(nodes, located(c.Elements)...)
			continue
		}
		nodes = append(nodes, node(l.Element, l.Region()))
	}
	return nodes
}

func children(e elements.Element) []Node {
	switch e := e.(type) {
	case elements.Page:
		return located(e.Contents)
	case elements.Header:
		return located(e.Content.Elements)
	case elements.Paragraph:
		var nodes []Node
		for _, line := range e.Lines {
			nodes = append(nodes, located(line.Elements)...)
		}
		return nodes
	case elements.List:
		return located(e.Items)
	case elements.ListItem:
		return located(e.Contents)
	case elements.DefinitionList:
		var nodes []Node
		e.Each(func(term elements.Located[elements.Term], defs []elements.Located[elements.Definition]) bool {
			t := Node{Kind: "term", Region: term.Region(), Summary: clip(term.String())}
			for _, d := range defs {
				t.Children = append(t.Children, Node{Kind: "definition", Region: d.Region(), Summary: clip(d.String())})
			}
			nodes = append(nodes, t)
			return true
		})
		return nodes
	case elements.Table:
		return located(e.Rows)
	case elements.Row:
		return located(e.Cells)
	case elements.Cell:
		return located(e.Content.Elements)
	case elements.DecoratedText:
		return located(e.Contents)
	}
	return nil
}

func summary(e elements.Element) string {
	switch e := e.(type) {
	case elements.Page, elements.Paragraph, elements.DefinitionList, elements.Row:
		return ""
	case elements.Header:
		return fmt.Sprintf("level %d", e.Level)
	case elements.List:
		if e.Ordered() {
			return fmt.Sprintf("ordered, %d items", len(e.Items))
		}
		return fmt.Sprintf("%d items", len(e.Items))
	case elements.ListItem:
		if e.IsTodo() {
			return fmt.Sprintf("%s [%c]", e.Marker, e.Todo.Marker())
		}
		return e.Marker.String()
	case elements.Table:
		return fmt.Sprintf("%d rows", len(e.Rows))
	case elements.Cell:
		if e.Kind != elements.ContentCell {
			return e.Kind.String()
		}
		return ""
	case elements.DecoratedText:
		return e.Decoration.String()
	case elements.CodeBlock:
		if !e.Language.IsEmpty() {
			return fmt.Sprintf("%s, %d lines", e.Language, len(e.Lines))
		}
		return fmt.Sprintf("%d lines", len(e.Lines))
	case elements.MathBlock:
		return fmt.Sprintf("%d lines", len(e.Lines))
	}
	return clip(e.String())
}

// clip keeps the first line of s
func clip(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}
