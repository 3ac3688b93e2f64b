package config

import "slices"

// DefaultResources are the reference links shown when none are configured.
var DefaultResources = []Resource{
	{Title: "WordPress.org UI Style Guide", URL: "http://dotorgstyleguide.wordpress.com/"},
	{Title: "HTML Coding Standards", URL: "https://make.wordpress.org/core/handbook/best-practices/coding-standards/html/"},
	{Title: "CSS Coding Standards", URL: "https://make.wordpress.org/core/handbook/best-practices/coding-standards/css/"},
	{Title: "PHP Coding Standards", URL: "https://make.wordpress.org/core/handbook/best-practices/coding-standards/php/"},
	{Title: "JavaScript Coding Standards", URL: "https://make.wordpress.org/core/handbook/best-practices/coding-standards/javascript/"},
	{Title: "WordPress UI Group", URL: "https://make.wordpress.org/design/"},
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		PatternsDir:    "patterns",
		Extension:      ".html",
		Sort:           true,
		Name:           "WordPress Admin Style",
		Version:        "1.5.1",
		Description:    "Shows the WordPress admin styles on one page to help you to develop WordPress compliant",
		Author:         "Frank Bültge",
		AuthorURI:      "https://bueltge.de",
		CopyrightSince: 2008,
		Resources:      slices.Clone(DefaultResources),
		Menu: MenuConfig{
			StripeRows: true,
		},
		Highlighter: HighlighterConfig{
			StyleURL:  "https://cdnjs.cloudflare.com/ajax/libs/prism/1.29.0/themes/prism.min.css",
			ScriptURL: "https://cdnjs.cloudflare.com/ajax/libs/prism/1.29.0/prism.min.js",
			Language:  "markup",
		},
		Server: ServerConfig{
			Port: 8080,
		},
		Export: ExportConfig{
			Output: "patternbook.html",
		},
		LogLevel: "info",
	}
}
