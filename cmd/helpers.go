package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/ziadkadry99/patternbook/internal/config"
	"github.com/ziadkadry99/patternbook/internal/render"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `patternbook init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the process logger. Logs always go to stderr so stdout
// stays free for the MCP protocol and for piped output.
func newLogger(cfg *config.Config) *slog.Logger {
	level := parseLevel(cfg.LogLevel)
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newRenderer builds the single renderer shared by every command surface.
func newRenderer(cfg *config.Config, logger *slog.Logger) (*render.Renderer, error) {
	var about []byte
	if cfg.AboutFile != "" {
		data, err := os.ReadFile(cfg.AboutFile)
		if err != nil {
			return nil, fmt.Errorf("reading about file: %w", err)
		}
		about = data
	}

	resources := make([]render.Resource, len(cfg.Resources))
	for i, r := range cfg.Resources {
		resources[i] = render.Resource{Title: r.Title, URL: r.URL}
	}

	return render.New(render.Meta{
		Name:        cfg.Name,
		Version:     cfg.Version,
		Description: cfg.Description,
		Author:      cfg.Author,
		AuthorURI:   cfg.AuthorURI,
	}, render.Options{
		StripeRows: cfg.Menu.StripeRows,
		Resources:  resources,
		Highlighter: render.Highlighter{
			StyleURL:  cfg.Highlighter.StyleURL,
			ScriptURL: cfg.Highlighter.ScriptURL,
			Language:  cfg.Highlighter.Language,
		},
		AboutMarkdown:  about,
		CopyrightSince: cfg.CopyrightSince,
		Logger:         logger,
	})
}

// setup loads the config and builds the logger and renderer.
func setup() (*config.Config, *slog.Logger, *render.Renderer, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	logger := newLogger(cfg)
	r, err := newRenderer(cfg, logger)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("creating renderer: %w", err)
	}
	return cfg, logger, r, nil
}
