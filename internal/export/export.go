// Package export writes the pattern page to a standalone HTML file and can
// keep it current while the pattern directory changes.
package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ziadkadry99/patternbook/internal/patterns"
	"github.com/ziadkadry99/patternbook/internal/progress"
	"github.com/ziadkadry99/patternbook/internal/render"
)

// DefaultDebounce is how long Watch waits for the directory to settle.
const DefaultDebounce = 250 * time.Millisecond

const tempPrefix = ".patternbook-"

// Exporter renders the pattern directory into a single HTML document.
type Exporter struct {
	Renderer *render.Renderer
	Dir      string
	Options  patterns.Options
	Output   string
	Reporter progress.Reporter
	Logger   *slog.Logger
}

// Export renders the page once and writes it to Output. It returns the
// number of patterns written. An unreadable pattern directory is an error.
func (e *Exporter) Export() (int, error) {
	snippets, err := patterns.List(e.Dir, e.Options)
	if err != nil {
		return 0, fmt.Errorf("listing patterns: %w", err)
	}

	rep := e.Reporter
	if rep == nil {
		rep = progress.Nop{}
	}
	rep.Start(len(snippets))

	var buf bytes.Buffer
	err = e.Renderer.RenderDocument(&buf, snippets, nil, render.WithProgress(func(done, _ int, s patterns.Snippet) {
		rep.Update(done, s.Name)
	}))
	rep.Finish()
	if err != nil {
		return 0, fmt.Errorf("rendering page: %w", err)
	}

	if err := writeFileAtomic(e.Output, buf.Bytes()); err != nil {
		return 0, fmt.Errorf("writing %s: %w", e.Output, err)
	}

	e.logger().Info("exported pattern page", "output", e.Output, "patterns", len(snippets))
	return len(snippets), nil
}

// Watch re-exports whenever the pattern directory changes, until ctx is
// cancelled. Bursts of events within debounce collapse into one export.
func (e *Exporter) Watch(ctx context.Context, debounce time.Duration) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(e.Dir); err != nil {
		return fmt.Errorf("watching %s: %w", e.Dir, err)
	}
	e.logger().Info("watching pattern directory", "dir", e.Dir)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !e.relevant(ev) {
				continue
			}
			e.logger().Debug("pattern directory changed", "event", ev.Op.String(), "file", ev.Name)
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			e.logger().Warn("watcher error", "error", err)
		case <-fire:
			fire = nil
			if _, err := e.Export(); err != nil {
				e.logger().Error("re-export failed", "error", err)
			}
		}
	}
}

// relevant filters out attribute changes and the exporter's own writes.
func (e *Exporter) relevant(ev fsnotify.Event) bool {
	if ev.Op == fsnotify.Chmod {
		return false
	}
	base := filepath.Base(ev.Name)
	if strings.HasPrefix(base, tempPrefix) {
		return false
	}
	if out, err := filepath.Abs(e.Output); err == nil {
		if name, err := filepath.Abs(ev.Name); err == nil && name == out {
			return false
		}
	}
	return true
}

func (e *Exporter) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.Default()
}

// writeFileAtomic writes data to a temp file next to path and renames it
// into place, so readers never see a half-written page.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, tempPrefix+"*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
