package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gerunddev/vimwiki/internal/index"
	"github.com/gerunddev/vimwiki/internal/styles"
	"github.com/gerunddev/vimwiki/internal/tui"
)

// Check parses every page of the configured wikis and reports the pages
// that fail to parse. It exits non-zero when any page fails
func Check(args []string) {
	cfg := loadConfig()
	st := loadState()

	log, cleanup := openLogger(cfg)
	defer cleanup()
	log.ConfigLoaded(cfg.WikiDirs, cfg.Extension, cfg.Workers)

	// Only re-parse changed pages with --changed
	force := !hasFlag(args, "--changed")

	indexer := index.NewIndexer(cfg, st, index.NewStore())
	indexer.SetLogger(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if hasFlag(args, "--plain") {
		result, err := indexer.Scan(ctx, force)
		saveState(st, log)
		if err != nil {
			fmt.Println(styles.ErrorStyle.Render("✗ Check failed: " + err.Error()))
			os.Exit(1)
		}
		printResult(result)
		if len(result.Failures) > 0 || len(result.Errors) > 0 {
			os.Exit(1)
		}
		return
	}

	m := tui.InitCheckModel(cfg.WikiDirs)
	p := tea.NewProgram(m, tea.WithInput(os.Stdin))

	// Run the scan in a goroutine and send the result to the program
	done := make(chan struct{})
	go func() {
		defer close(done)
		result, err := indexer.Scan(ctx, force)
		p.Send(tui.CheckMsg{Result: result, Err: err})
	}()

	final, err := p.Run()
	stop()
	<-done
	if err != nil {
		fmt.Println(styles.ErrorStyle.Render("✗ Error: " + err.Error()))
		os.Exit(1)
	}

	saveState(st, log)

	if checked, ok := final.(interface{ Failed() bool }); ok && checked.Failed() {
		os.Exit(1)
	}
}

// printResult writes a scan result without the TUI
func printResult(result *index.Result) {
	for _, f := range result.Failures {
		fmt.Printf("%s %s:%d:%d %s\n",
			styles.ErrorStyle.Render("✗"), f.Path, f.Line, f.Column, styles.DimStyle.Render(f.Context))
	}
	for _, err := range result.Errors {
		fmt.Println(styles.ErrorStyle.Render("✗ " + err.Error()))
	}

	style := styles.SuccessStyle
	if len(result.Failures) > 0 || len(result.Errors) > 0 {
		style = styles.WarningStyle
	}
	fmt.Println(style.Render(result.String()))
}
