package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	charmlog "github.com/charmbracelet/log"

	"github.com/gerunddev/vimwiki/internal/index"
	"github.com/gerunddev/vimwiki/internal/logger"
	"github.com/gerunddev/vimwiki/internal/styles"
	"github.com/gerunddev/vimwiki/internal/watch"
)

// Watch indexes the configured wikis and re-parses pages as they change
// until interrupted
func Watch(args []string) {
	cfg := loadConfig()
	if v, ok := flagValue(args, "--debounce"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Invalid debounce: %v\n", err)
			os.Exit(1)
		}
		cfg.Debounce = d
	}
	st := loadState()

	log, cleanup := openLogger(cfg)
	defer cleanup()
	if hasFlag(args, "--verbose") {
		// events go to the terminal instead of the log file
		log = logger.NewWithLevel(os.Stderr, charmlog.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	indexer := index.NewIndexer(cfg, st, index.NewStore())
	indexer.SetLogger(log)

	fmt.Println(styles.TitleStyle.Render("Vimwiki Watch"))
	result, err := indexer.Scan(ctx, false)
	if err != nil {
		fmt.Println(styles.ErrorStyle.Render("✗ Initial scan failed: " + err.Error()))
		os.Exit(1)
	}
	printResult(result)
	saveState(st, log)

	w, err := watch.New(indexer, cfg.WikiDirs, cfg.Debounce)
	if err != nil {
		fmt.Println(styles.ErrorStyle.Render("✗ Failed to start watcher: " + err.Error()))
		os.Exit(1)
	}
	w.SetLogger(log)
	w.OnChange = func(c watch.Change) {
		fmt.Println(FormatChange(c, time.Now()))
		saveState(st, log)
	}

	fmt.Println(styles.DimStyle.Render("Watching for changes (ctrl+c to stop)"))
	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Println(styles.ErrorStyle.Render("✗ Watcher stopped: " + err.Error()))
		os.Exit(1)
	}

	saveState(st, log)
	log.Info("watch stopped")
}

// FormatChange renders one watch change as a status line
func FormatChange(c watch.Change, at time.Time) string {
	stamp := styles.DimStyle.Render(at.Format(time.TimeOnly))
	switch {
	case c.Err != nil:
		return fmt.Sprintf("%s %s %s", stamp, styles.WarningStyle.Render("!"), c.Err.Error())
	case c.Removed:
		return fmt.Sprintf("%s %s %s removed", stamp, styles.DimStyle.Render("-"), c.Path)
	case c.Failure != nil:
		return fmt.Sprintf("%s %s %s:%d:%d %s", stamp, styles.ErrorStyle.Render("✗"),
			c.Path, c.Failure.Line, c.Failure.Column, c.Failure.Context)
	case c.Doc != nil:
		return fmt.Sprintf("%s %s %s (%d blocks)", stamp, styles.SuccessStyle.Render("✓"), c.Path, c.Doc.Blocks())
	}
	return fmt.Sprintf("%s %s", stamp, c.Path)
}
