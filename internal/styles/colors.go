// Package styles holds the terminal palette shared by the CLI and the TUI
package styles

import "github.com/charmbracelet/lipgloss"

// Monokai Pro color palette
const (
	Background = "#2D2A2E"
	Foreground = "#FCFCFA"

	Red     = "#FF6188" // Parse failures
	Orange  = "#FC9867" // Warnings, skipped pages
	Yellow  = "#FFD866" // Selection
	Green   = "#A9DC76" // Parsed pages
	Cyan    = "#78DCE8" // Block elements
	Blue    = "#AB9DF2" // Links
	Magenta = "#FF6188" // Titles

	Comment = "#727072" // Regions, help
	Border  = "#5B595C"
)

// Common styles
var (
	SuccessStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Green))
	ErrorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Red))
	WarningStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Orange))
	DimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment))
	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(Magenta))
	HighlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Yellow)).Bold(true)
	SpinnerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Magenta))
	HelpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment))
	LabelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment))
	ValueStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Foreground))

	TableStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(Border))

	ViewportStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(Border)).
			Padding(1)
)

// Element styles used by the outline
var (
	BlockStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(Cyan))
	InlineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Foreground))
	LinkStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Blue))
	RegionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment))
	MarkStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Yellow))
)

var kindStyles = map[string]lipgloss.Style{
	"page":             TitleStyle,
	"header":           BlockStyle,
	"paragraph":        BlockStyle,
	"list":             BlockStyle,
	"listitem":         BlockStyle,
	"definitionlist":   BlockStyle,
	"table":            BlockStyle,
	"row":              BlockStyle,
	"codeblock":        BlockStyle,
	"mathblock":        BlockStyle,
	"blockquote":       BlockStyle,
	"divider":          BlockStyle,
	"comment":          DimStyle,
	"placeholder":      MarkStyle,
	"tags":             MarkStyle,
	"keyword":          MarkStyle,
	"decoratedtext":    MarkStyle,
	"wikilink":         LinkStyle,
	"interwikilink":    LinkStyle,
	"diarylink":        LinkStyle,
	"externalfilelink": LinkStyle,
	"rawlink":          LinkStyle,
	"transclusionlink": LinkStyle,
}

// KindStyle returns the style for an element kind as reported by
// elements.Kind
func KindStyle(kind string) lipgloss.Style {
	if style, ok := kindStyles[kind]; ok {
		return style
	}
	return InlineStyle
}
