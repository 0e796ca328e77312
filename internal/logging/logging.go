// Package logging sets up the structured file logger.
//
// The TUI owns the terminal, so diagnostics are written to a file rather
// than stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hy4ri/todo-tui/internal/config"
)

// DefaultFileName is the log file created in the data directory.
const DefaultFileName = "todo-tui.log"

// Options controls logger construction.
type Options struct {
	Level     log.Level
	Formatter log.Formatter
	Prefix    string
}

// OptionsFromConfig maps the log section of the config onto Options.
func OptionsFromConfig(cfg config.LogConfig) Options {
	return Options{
		Level:     ParseLevel(cfg.Level),
		Formatter: ParseFormatter(cfg.Format),
		Prefix:    "todo-tui",
	}
}

// New creates a logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		Formatter:       opts.Formatter,
		Prefix:          opts.Prefix,
		ReportTimestamp: true,
	})
}

// Open creates the log file named in cfg (or the default one in the data
// directory) and returns a logger writing to it. The caller closes the file.
func Open(cfg config.LogConfig) (*log.Logger, io.Closer, error) {
	path := cfg.File
	if path == "" {
		dir, err := config.DataDir()
		if err != nil {
			return nil, nil, err
		}
		path = filepath.Join(dir, DefaultFileName)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	return New(f, OptionsFromConfig(cfg)), f, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return New(io.Discard, Options{Level: log.FatalLevel})
}

// ParseLevel parses a string log level, defaulting to info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// ParseFormatter parses a formatter name, defaulting to text.
func ParseFormatter(format string) log.Formatter {
	switch strings.ToLower(format) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
