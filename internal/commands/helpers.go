package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gerunddev/vimwiki/internal/config"
	"github.com/gerunddev/vimwiki/internal/logger"
	"github.com/gerunddev/vimwiki/internal/state"
	"github.com/gerunddev/vimwiki/internal/styles"
)

// loadConfig loads the configuration or exits
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println(styles.ErrorStyle.Render("✗ Error loading config: " + err.Error()))
		os.Exit(1)
	}
	return cfg
}

// loadState loads the state file or exits
func loadState() *state.State {
	st, err := state.Load(config.StateFilePath())
	if err != nil {
		fmt.Println(styles.ErrorStyle.Render("✗ Error loading state: " + err.Error()))
		os.Exit(1)
	}
	return st
}

// saveState writes the state file, warning on failure
func saveState(st *state.State, log *logger.Logger) {
	if err := st.Save(config.StateFilePath()); err != nil {
		log.StateError("save", err)
		fmt.Fprintf(os.Stderr, "Warning: failed to save state: %v\n", err)
	}
}

// openLogger returns a logger writing to the configured log file. The
// returned cleanup must be called before exiting
func openLogger(cfg *config.Config) (*logger.Logger, func()) {
	if cfg.LogFile == "" {
		return logger.Discard(), func() {}
	}
	l, cleanup, err := logger.NewFileLogger(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot open log file: %v\n", err)
		return logger.Discard(), func() {}
	}
	return l, cleanup
}

// flagValue returns the value following name in args
func flagValue(args []string, name string) (string, bool) {
	for i, arg := range args {
		if arg == name && i+1 < len(args) {
			return args[i+1], true
		}
		if v, ok := strings.CutPrefix(arg, name+"="); ok {
			return v, true
		}
	}
	return "", false
}

// hasFlag reports whether name appears in args
func hasFlag(args []string, name string) bool {
	for _, arg := range args {
		if arg == name {
			return true
		}
	}
	return false
}

// intFlag parses an integer flag, returning def when it is absent
func intFlag(args []string, name string, def int) (int, error) {
	v, ok := flagValue(args, name)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, v, err)
	}
	return n, nil
}

// positional returns the arguments that are neither flags nor the values
// of the named value flags
func positional(args []string, valueFlags ...string) []string {
	var out []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if strings.HasPrefix(arg, "-") {
			for _, f := range valueFlags {
				if arg == f {
					i++
					break
				}
			}
			continue
		}
		out = append(out, arg)
	}
	return out
}

// ScanSummary is the last scan recorded in the log file
type ScanSummary struct {
	Time   time.Time
	Parsed int
	Failed int
}

// ParseLogFile reads the last N lines from the log file and extracts the
// most recent scan
func ParseLogFile(logPath string, maxLines int) ([]string, ScanSummary) {
	var summary ScanSummary

	content, err := os.ReadFile(logPath)
	if err != nil {
		return []string{"Unable to read log file"}, summary
	}

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")

	// Get last N lines
	startIdx := 0
	if len(lines) > maxLines {
		startIdx = len(lines) - maxLines
	}
	recentLines := lines[startIdx:]

	// Look for most recent "scan completed" line
	for i := len(lines) - 1; i >= 0; i-- {
		line := lines[i]
		if !strings.Contains(line, "scan completed") {
			continue
		}

		// Format: 2025-11-27 14:11:57 INFO scan completed parsed=12 ...
		if len(line) > 19 {
			if t, err := time.ParseInLocation(time.DateTime, line[:19], time.Local); err == nil {
				summary.Time = t
			}
		}

		// best effort, missing fields stay zero
		if idx := strings.Index(line, "parsed="); idx != -1 {
			_, _ = fmt.Sscanf(line[idx:], "parsed=%d", &summary.Parsed) //nolint:errcheck // best effort parsing
		}
		if idx := strings.Index(line, "failed="); idx != -1 {
			_, _ = fmt.Sscanf(line[idx:], "failed=%d", &summary.Failed) //nolint:errcheck // best effort parsing
		}
		break
	}

	return recentLines, summary
}
