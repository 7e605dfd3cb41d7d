package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/gerunddev/vimwiki/internal/index"
	"github.com/gerunddev/vimwiki/internal/styles"
)

// CheckMsg is sent when a scan completes
type CheckMsg struct {
	Result *index.Result
	Err    error
}

type checkModel struct {
	spinner  spinner.Model
	table    table.Model
	dirs     []string
	result   *index.Result
	err      error
	scanning bool
}

// InitCheckModel creates the progress and report model of a wiki check
func InitCheckModel(dirs []string) checkModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	columns := []table.Column{
		{Title: "Page", Width: 40},
		{Title: "Position", Width: 10},
		{Title: "Context", Width: 20},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
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

	return checkModel{
		spinner:  s,
		table:    t,
		dirs:     dirs,
		scanning: true,
	}
}

// Failed reports whether the finished check found broken pages or errors
func (m checkModel) Failed() bool {
	return m.err != nil || (m.result != nil && (len(m.result.Failures) > 0 || len(m.result.Errors) > 0))
}

func (m checkModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m checkModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k", "down", "j":
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case CheckMsg:
		m.scanning = false
		m.result = msg.Result
		m.err = msg.Err

		if m.result != nil {
			rows := []table.Row{}
			for _, f := range m.result.Failures {
				rows = append(rows, table.Row{
					m.relative(f.Path),
					fmt.Sprintf("%d:%d", f.Line, f.Column),
					f.Context,
				})
			}
			m.table.SetRows(rows)
		}

		// Nothing to inspect, so leave right away
		if !m.Failed() {
			return m, tea.Quit
		}
		return m, nil

	case spinner.TickMsg:
		if m.scanning {
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m checkModel) View() string {
	var b strings.Builder

	if m.scanning {
		b.WriteString(fmt.Sprintf("\n%s Parsing %s...\n\n", m.spinner.View(), strings.Join(m.dirs, ", ")))
		return b.String()
	}

	if m.err != nil {
		return errorStyle.Render("✗ Check failed: "+m.err.Error()) + "\n"
	}
	if m.result == nil {
		return ""
	}

	r := m.result
	summary := successStyle.Render(fmt.Sprintf("✓ %d page(s) parsed", r.Parsed))
	if len(r.Failures) > 0 {
		summary += ", " + errorStyle.Render(fmt.Sprintf("%d failed", len(r.Failures)))
	}
	if r.Skipped > 0 {
		summary += ", " + warningStyle.Render(fmt.Sprintf("%d skipped", r.Skipped))
	}
	if len(r.Errors) > 0 {
		summary += ", " + errorStyle.Render(fmt.Sprintf("%d error(s)", len(r.Errors)))
	}
	b.WriteString(summary)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("%s in %v",
		humanize.Bytes(uint64(r.Bytes)),
		r.EndTime.Sub(r.StartTime).Round(time.Millisecond))))
	b.WriteString("\n")

	if len(r.Failures) == 0 {
		for _, err := range r.Errors {
			b.WriteString(errorStyle.Render("  " + err.Error()))
			b.WriteString("\n")
		}
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Failed Pages"))
	b.WriteString("\n")
	b.WriteString(tableStyle.Render(m.table.View()))
	b.WriteString("\n\n")

	if i := m.table.Cursor(); i >= 0 && i < len(r.Failures) {
		f := r.Failures[i]
		b.WriteString(highlightStyle.Render(m.relative(f.Path)))
		b.WriteString("\n")
		if f.Err != nil {
			b.WriteString(valueStyle.Render(f.Err.Error()))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("↑/k up • ↓/j down • q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m checkModel) relative(path string) string {
	for _, dir := range m.dirs {
		if rel, err := filepath.Rel(dir, path); err == nil && !strings.HasPrefix(rel, "..") {
			return rel
		}
	}
	return path
}
