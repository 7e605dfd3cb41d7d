package tui

import "github.com/gerunddev/vimwiki/internal/styles"

var (
	titleStyle     = styles.TitleStyle
	labelStyle     = styles.LabelStyle
	valueStyle     = styles.ValueStyle
	successStyle   = styles.SuccessStyle
	errorStyle     = styles.ErrorStyle
	warningStyle   = styles.WarningStyle
	highlightStyle = styles.HighlightStyle
	helpStyle      = styles.HelpStyle
	spinnerStyle   = styles.SpinnerStyle
	tableStyle     = styles.TableStyle
)
