package cmd

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ziadkadry99/patternbook/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewRendererMissingAboutFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.AboutFile = filepath.Join(t.TempDir(), "about.md")

	if _, err := newRenderer(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))); err == nil {
		t.Fatal("expected error for missing about file")
	}
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "out.html")
	t.Setenv("PATTERNBOOK_PATTERNS_DIR", filepath.Join("..", "testdata", "patterns"))
	t.Setenv("PATTERNBOOK_LOG_LEVEL", "error")

	rootCmd.SetArgs([]string{
		"export",
		"--config", filepath.Join(dir, "missing.yml"),
		"--output", output,
		"--quiet",
	})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("export: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	page := string(data)
	for _, want := range []string{`id="alertbox"`, `id="buttons"`, "<p>Saved.</p>"} {
		if !strings.Contains(page, want) {
			t.Errorf("exported page missing %q", want)
		}
	}
	if strings.Contains(page, "README") {
		t.Error("file without the extension marker was included")
	}
}
