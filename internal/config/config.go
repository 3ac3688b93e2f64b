package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/ziadkadry99/patternbook/internal/patterns"
)

// EnvPrefix is the prefix of environment variable overrides.
const EnvPrefix = "PATTERNBOOK_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (PATTERNBOOK_*). A double underscore
// separates nested keys: PATTERNBOOK_SERVER__PORT sets server.port.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps PATTERNBOOK_SERVER__PORT to server.port.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validLogLevels is the set of recognized log_level values.
var validLogLevels = map[string]bool{
	"":      true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.PatternsDir == "" {
		return fmt.Errorf("patterns_dir is required")
	}

	if len(c.Extension) < 2 || !strings.HasPrefix(c.Extension, ".") {
		return fmt.Errorf("invalid extension %q: must start with a dot, e.g. .html", c.Extension)
	}

	if err := patterns.ValidatePatterns(c.Exclude); err != nil {
		return err
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}

	if c.CopyrightSince < 0 {
		return fmt.Errorf("copyright_since must be non-negative")
	}

	for i, r := range c.Resources {
		if r.Title == "" {
			return fmt.Errorf("resources[%d]: title is required", i)
		}
		u, err := url.Parse(r.URL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("resources[%d]: invalid url %q", i, r.URL)
		}
	}

	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log_level %q: must be one of debug, info, warn, error", c.LogLevel)
	}

	return nil
}

// ListOptions returns the pattern store options described by the config.
func (c *Config) ListOptions() patterns.Options {
	return patterns.Options{
		Extension:       c.Extension,
		StrictExtension: c.StrictExtension,
		Sort:            c.Sort,
		Exclude:         c.Exclude,
	}
}
