package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/gerunddev/vimwiki/internal/config"
	"github.com/gerunddev/vimwiki/internal/state"
	"github.com/gerunddev/vimwiki/internal/styles"
)

// Status shows the configuration and the outcome of the last scan
func Status() {
	cfg := loadConfig()
	st := loadState()

	var summary ScanSummary
	if cfg.LogFile != "" {
		_, summary = ParseLogFile(cfg.LogFile, 200)
	}
	WriteStatus(os.Stdout, cfg, st, summary, time.Now())
}

// WriteStatus writes the status report to w
func WriteStatus(w io.Writer, cfg *config.Config, st *state.State, summary ScanSummary, now time.Time) {
	label := func(name, value string) {
		fmt.Fprintf(w, "%s %s\n", styles.LabelStyle.Render(fmt.Sprintf("%-10s", name+":")), styles.ValueStyle.Render(value))
	}

	fmt.Fprintln(w, styles.TitleStyle.Render("Vimwiki Status"))
	for _, dir := range cfg.WikiDirs {
		label("Wiki", dir)
	}
	label("Extension", cfg.Extension)
	label("Config", config.ConfigPath())
	label("State", config.StateFilePath())

	failed := st.FailedPaths()
	var bytes int64
	for _, fs := range st.Files {
		bytes += fs.Size
	}
	label("Pages", fmt.Sprintf("%d (%s)", len(st.Files), humanize.Bytes(uint64(bytes))))

	if summary.Time.IsZero() {
		label("Last scan", "never")
	} else {
		label("Last scan", fmt.Sprintf("%s, %d parsed, %d failed",
			humanize.RelTime(summary.Time, now, "ago", "from now"), summary.Parsed, summary.Failed))
	}

	if len(failed) == 0 {
		fmt.Fprintln(w, styles.SuccessStyle.Render("✓ All pages parse"))
		return
	}

	fmt.Fprintln(w, styles.ErrorStyle.Render(fmt.Sprintf("✗ %d page(s) fail to parse", len(failed))))
	for _, path := range failed {
		fs := st.Files[path]
		fmt.Fprintf(w, "  %s %s\n", path, styles.DimStyle.Render(fmt.Sprintf("%d:%d %s", fs.Line, fs.Column, fs.Error)))
	}
}
