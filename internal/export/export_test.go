package export

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/goleak"

	"github.com/ziadkadry99/patternbook/internal/patterns"
	"github.com/ziadkadry99/patternbook/internal/progress"
	"github.com/ziadkadry99/patternbook/internal/render"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newExporter(t *testing.T, dir, output string) *Exporter {
	t.Helper()
	r, err := render.New(render.Meta{Name: "Pattern Book"}, render.Options{Logger: quietLogger()})
	if err != nil {
		t.Fatalf("render.New() error: %v", err)
	}
	return &Exporter{
		Renderer: r,
		Dir:      dir,
		Options:  patterns.DefaultOptions(),
		Output:   output,
		Logger:   quietLogger(),
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "alert-box.html"), `<div class="notice">hi</div>`)
	writeFile(t, filepath.Join(dir, "buttons.html"), `<button>b</button>`)

	output := filepath.Join(t.TempDir(), "site", "index.html")
	var log bytes.Buffer
	e := newExporter(t, dir, output)
	e.Reporter = &progress.CIReporter{Out: &log}

	n, err := e.Export()
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	if n != 2 {
		t.Errorf("Export() = %d, want 2", n)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	page := string(data)
	for _, want := range []string{"<!DOCTYPE html>", `id="alertbox"`, `id="buttons"`, `href="#alertbox"`} {
		if !strings.Contains(page, want) {
			t.Errorf("exported page missing %q", want)
		}
	}

	if !strings.Contains(log.String(), "[2/2] buttons.html") {
		t.Errorf("progress not reported:\n%s", log.String())
	}

	// No temp files are left behind.
	entries, _ := os.ReadDir(filepath.Dir(output))
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), tempPrefix) {
			t.Errorf("temp file left behind: %s", entry.Name())
		}
	}
}

func TestExportMissingDir(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.html")
	e := newExporter(t, filepath.Join(t.TempDir(), "missing"), output)

	if _, err := e.Export(); err == nil {
		t.Fatal("expected error for missing pattern directory")
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Error("no output should be written when the directory is unreadable")
	}
}

func TestRelevant(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "index.html")
	e := newExporter(t, dir, output)

	tests := []struct {
		name string
		ev   fsnotify.Event
		want bool
	}{
		{"write", fsnotify.Event{Name: filepath.Join(dir, "a.html"), Op: fsnotify.Write}, true},
		{"create", fsnotify.Event{Name: filepath.Join(dir, "b.html"), Op: fsnotify.Create}, true},
		{"chmod only", fsnotify.Event{Name: filepath.Join(dir, "a.html"), Op: fsnotify.Chmod}, false},
		{"temp file", fsnotify.Event{Name: filepath.Join(dir, tempPrefix+"123"), Op: fsnotify.Create}, false},
		{"own output", fsnotify.Event{Name: output, Op: fsnotify.Write}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.relevant(tt.ev); got != tt.want {
				t.Errorf("relevant() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWatchReexports(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "buttons.html"), `<button>b</button>`)
	output := filepath.Join(t.TempDir(), "index.html")
	e := newExporter(t, dir, output)

	if _, err := e.Export(); err != nil {
		t.Fatalf("Export() error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- e.Watch(ctx, 20*time.Millisecond) }()

	// Give the watcher a moment to register before changing the directory.
	time.Sleep(100 * time.Millisecond)
	writeFile(t, filepath.Join(dir, "tables.html"), `<table></table>`)

	deadline := time.Now().Add(5 * time.Second)
	for {
		data, _ := os.ReadFile(output)
		if strings.Contains(string(data), `id="tables"`) {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("watch did not re-export after a new snippet appeared")
		}
		time.Sleep(20 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch() error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not stop after cancel")
	}
}

func TestWatchMissingDir(t *testing.T) {
	e := newExporter(t, filepath.Join(t.TempDir(), "missing"), filepath.Join(t.TempDir(), "out.html"))
	if err := e.Watch(context.Background(), time.Millisecond); err == nil {
		t.Fatal("expected error watching a missing directory")
	}
}
