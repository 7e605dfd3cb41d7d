package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// NewFileLogger creates a logger that writes to a file
func NewFileLogger(path string) (*Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})

	cleanup := func() {
		f.Close()
	}

	return &Logger{Logger: l}, cleanup, nil
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// ScanStarted logs the start of a wiki scan
func (l *Logger) ScanStarted(dirs []string, workers int) {
	l.Info("scan started",
		"wiki_dirs", dirs,
		"workers", workers)
}

// ScanCompleted logs the completion of a wiki scan
func (l *Logger) ScanCompleted(parsed, failed, skipped int, duration time.Duration) {
	l.Info("scan completed",
		"parsed", parsed,
		"failed", failed,
		"skipped", skipped,
		"duration", duration.Round(time.Millisecond))
}

// PageParsed logs a successfully parsed page
func (l *Logger) PageParsed(file string, blocks int, duration time.Duration) {
	l.Debug("page parsed",
		"file", file,
		"blocks", blocks,
		"duration", duration.Round(time.Microsecond))
}

// ParseFailed logs a page that failed to parse
func (l *Logger) ParseFailed(file string, line, column int, context string) {
	l.Warn("parse failed",
		"file", file,
		"line", line,
		"column", column,
		"context", context)
}

// FileError logs an error for a specific file
func (l *Logger) FileError(file string, err error) {
	l.Error("file error",
		"file", file,
		"error", err)
}

// StateError logs a state-related error
func (l *Logger) StateError(operation string, err error) {
	l.Error("state error",
		"operation", operation,
		"error", err)
}

// WatchEvent logs a file system change that triggers a re-parse
func (l *Logger) WatchEvent(file, op string) {
	l.Debug("watch event",
		"file", file,
		"op", op)
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(dirs []string, extension string, workers int) {
	l.Debug("config loaded",
		"wiki_dirs", dirs,
		"extension", extension,
		"workers", workers)
}

// Skipped logs when a file is skipped
func (l *Logger) Skipped(file, reason string) {
	l.Debug("file skipped",
		"file", file,
		"reason", reason)
}
