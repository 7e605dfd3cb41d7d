package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/gerunddev/vimwiki/internal/styles"
)

// View selects what the detail pane shows for a page
type View int

const (
	ViewOutline View = iota
	ViewYAML
	ViewDiff
)

func (v View) String() string {
	switch v {
	case ViewYAML:
		return "YAML"
	case ViewDiff:
		return "Round Trip"
	}
	return "Outline"
}

// PageInfo describes one wiki page in the browser
type PageInfo struct {
	Path   string
	Name   string // path relative to its wiki
	Failed bool
	Blocks int
	Size   int64
	Error  string // "line:column context" of a failed parse
}

// BrowseMsg is sent when the page list is ready
type BrowseMsg struct {
	Pages []PageInfo
	Err   error
}

// DetailMsg is sent when the detail pane content is ready
type DetailMsg struct {
	Path    string
	View    View
	Content string
	Err     error
}

// LoadFunc produces the detail pane content of a page
type LoadFunc func(path string, view View) (string, error)

type browseModel struct {
	table    table.Model
	viewport viewport.Model
	pages    []PageInfo
	err      error
	ready    bool
	showing  bool
	view     View
	selected *PageInfo
	load     LoadFunc
}

// InitBrowseModel creates a new page browser model
func InitBrowseModel(load LoadFunc) browseModel {
	columns := []table.Column{
		{Title: "Page", Width: 50},
		{Title: "Status", Width: 24},
		{Title: "Blocks", Width: 8},
		{Title: "Size", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(styles.Border)).
		BorderBottom(true).
		Bold(false)
	ts.Selected = ts.Selected.
		Foreground(lipgloss.Color(styles.Background)).
		Background(lipgloss.Color(styles.Yellow)).
		Bold(false)
	t.SetStyles(ts)

	vp := viewport.New(100, 20)
	vp.Style = styles.ViewportStyle

	return browseModel{
		table:    t,
		viewport: vp,
		load:     load,
	}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 6

	case tea.KeyMsg:
		if m.showing {
			// In detail view
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "q", "esc":
				m.showing = false
				return m, nil
			case "o":
				return m, m.open(ViewOutline)
			case "y":
				return m, m.open(ViewYAML)
			case "d":
				return m, m.open(ViewDiff)
			case "up", "k", "down", "j", "pgup", "pgdown":
				m.viewport, cmd = m.viewport.Update(msg)
				return m, cmd
			}
			return m, nil
		}

		// In table view
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k", "down", "j":
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		case "enter", "o", "y", "d":
			if i := m.table.Cursor(); i >= 0 && i < len(m.pages) {
				m.selected = &m.pages[i]
				m.showing = true
				view := ViewOutline
				switch msg.String() {
				case "y":
					view = ViewYAML
				case "d":
					view = ViewDiff
				}
				return m, m.open(view)
			}
			return m, nil
		}

	case BrowseMsg:
		m.ready = true
		m.pages = msg.Pages
		m.err = msg.Err

		rows := []table.Row{}
		for _, p := range m.pages {
			status := "✓ parsed"
			blocks := fmt.Sprintf("%d", p.Blocks)
			if p.Failed {
				status = "✗ " + p.Error
				blocks = "-"
			}
			rows = append(rows, table.Row{p.Name, status, blocks, humanize.Bytes(uint64(p.Size))})
		}
		m.table.SetRows(rows)
		return m, nil

	case DetailMsg:
		if m.selected == nil || msg.Path != m.selected.Path {
			return m, nil
		}
		m.view = msg.View
		if msg.Err != nil {
			m.viewport.SetContent(errorStyle.Render(msg.Err.Error()))
		} else {
			m.viewport.SetContent(msg.Content)
		}
		m.viewport.GotoTop()
		return m, nil
	}

	return m, nil
}

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Vimwiki Page Browser"))
	b.WriteString("\n\n")

	if m.err != nil {
		return errorStyle.Render("✗ Error: "+m.err.Error()) + "\n"
	}

	if !m.ready {
		return b.String()
	}

	if m.showing && m.selected != nil {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%s: %s", m.view, m.selected.Name)))
		b.WriteString("\n\n")
		b.WriteString(m.viewport.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("↑/k up • ↓/j down • o outline • y yaml • d round trip • esc/q back"))
		b.WriteString("\n")
		return b.String()
	}

	failed := 0
	for _, p := range m.pages {
		if p.Failed {
			failed++
		}
	}
	b.WriteString(labelStyle.Render(fmt.Sprintf("Pages: %d", len(m.pages))))
	if failed > 0 {
		b.WriteString("  ")
		b.WriteString(errorStyle.Render(fmt.Sprintf("%d failed", failed)))
	}
	b.WriteString("\n\n")
	b.WriteString(tableStyle.Render(m.table.View()))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("↑/k up • ↓/j down • enter/o outline • y yaml • d round trip • q quit"))
	b.WriteString("\n")

	return b.String()
}

// open creates a command that loads the detail view of the selected page
func (m browseModel) open(view View) tea.Cmd {
	selected := m.selected
	load := m.load
	return func() tea.Msg {
		if selected == nil {
			return DetailMsg{View: view, Err: fmt.Errorf("no page selected")}
		}
		if load == nil {
			return DetailMsg{Path: selected.Path, View: view, Err: fmt.Errorf("no loader configured")}
		}

		content, err := load(selected.Path, view)
		return DetailMsg{
			Path:    selected.Path,
			View:    view,
			Content: content,
			Err:     err,
		}
	}
}
