package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hy4ri/todo-tui/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]log.Level{
		"debug":   log.DebugLevel,
		"INFO":    log.InfoLevel,
		"warning": log.WarnLevel,
		"error":   log.ErrorLevel,
		"":        log.InfoLevel,
		"bogus":   log.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseFormatter(t *testing.T) {
	if ParseFormatter("json") != log.JSONFormatter {
		t.Error("expected json formatter")
	}
	if ParseFormatter("logfmt") != log.LogfmtFormatter {
		t.Error("expected logfmt formatter")
	}
	if ParseFormatter("") != log.TextFormatter {
		t.Error("expected text formatter by default")
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{Level: log.WarnLevel, Formatter: log.LogfmtFormatter})

	logger.Info("hidden")
	logger.Error("Error deleting todo", "id", "7")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line should be filtered: %s", out)
	}
	if !strings.Contains(out, "Error deleting todo") || !strings.Contains(out, "id=7") {
		t.Errorf("expected error line with fields, got: %s", out)
	}
}

func TestOpenWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	logger, closer, err := Open(config.LogConfig{File: path, Level: "debug", Format: "logfmt"})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	logger.Debug("fetching todos", "sort", "ASC")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "sort=ASC") {
		t.Errorf("unexpected log content: %s", data)
	}
}

func TestOpenDefaultsToDataDir(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_DATA_HOME", base)

	_, closer, err := Open(config.LogConfig{})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer closer.Close()

	if _, err := os.Stat(filepath.Join(base, "todo-tui", DefaultFileName)); err != nil {
		t.Errorf("expected log file in data dir: %v", err)
	}
}
