package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to patternbook! Let's configure your pattern page.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Pattern directory.
	dirPrompt := promptui.Prompt{
		Label:    "Directory holding the pattern snippets",
		Default:  cfg.PatternsDir,
		Validate: nonEmpty,
	}
	dir, err := dirPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("patterns dir: %w", err)
	}
	cfg.PatternsDir = dir

	// 2. Extension marker.
	extPrompt := promptui.Prompt{
		Label:   "Snippet file extension",
		Default: cfg.Extension,
		Validate: func(s string) error {
			if len(s) < 2 || !strings.HasPrefix(s, ".") {
				return fmt.Errorf("extension must start with a dot")
			}
			return nil
		},
	}
	ext, err := extPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("extension: %w", err)
	}
	cfg.Extension = ext

	// 3. Page title.
	namePrompt := promptui.Prompt{
		Label:    "Page title",
		Default:  cfg.Name,
		Validate: nonEmpty,
	}
	name, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("page title: %w", err)
	}
	cfg.Name = name

	// 4. Author.
	authorPrompt := promptui.Prompt{
		Label:   "Author",
		Default: cfg.Author,
	}
	author, err := authorPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("author: %w", err)
	}
	cfg.Author = author

	// 5. Row striping in the mini menu.
	stripePrompt := promptui.Select{
		Label: "Stripe alternate rows in the mini menu",
		Items: []string{"yes", "no"},
	}
	_, stripe, err := stripePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("row striping: %w", err)
	}
	cfg.Menu.StripeRows = stripe == "yes"

	// 6. Exclude patterns.
	excludePrompt := promptui.Prompt{
		Label:   "Exclude patterns (comma-separated globs, leave blank for none)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}
	cfg.Exclude = splitAndTrim(excludeStr)

	// 7. Server port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP port for patternbook serve",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			p, err := strconv.Atoi(s)
			if err != nil || p < 0 || p > 65535 {
				return fmt.Errorf("port must be a number between 0 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(cfg.PatternsDir); os.IsNotExist(err) {
		fmt.Printf("\nNote: %s does not exist yet. Create it and add %s snippets.\n", cfg.PatternsDir, cfg.Extension)
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func nonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("value is required")
	}
	return nil
}

// splitAndTrim splits a comma-separated string and trims whitespace,
// dropping empty entries.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
