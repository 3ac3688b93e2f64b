package config

// Config is the top-level patternbook configuration, corresponding to .patternbook.yml.
type Config struct {
	PatternsDir     string   `yaml:"patterns_dir" koanf:"patterns_dir"`
	Extension       string   `yaml:"extension" koanf:"extension"`
	StrictExtension bool     `yaml:"strict_extension" koanf:"strict_extension"`
	Sort            bool     `yaml:"sort" koanf:"sort"`
	Exclude         []string `yaml:"exclude" koanf:"exclude"`

	Name           string     `yaml:"name" koanf:"name"`
	Version        string     `yaml:"version" koanf:"version"`
	Description    string     `yaml:"description" koanf:"description"`
	Author         string     `yaml:"author" koanf:"author"`
	AuthorURI      string     `yaml:"author_uri" koanf:"author_uri"`
	CopyrightSince int        `yaml:"copyright_since" koanf:"copyright_since"`
	AboutFile      string     `yaml:"about_file" koanf:"about_file"`
	Resources      []Resource `yaml:"resources" koanf:"resources"`

	Menu        MenuConfig        `yaml:"menu" koanf:"menu"`
	Highlighter HighlighterConfig `yaml:"highlighter" koanf:"highlighter"`
	Server      ServerConfig      `yaml:"server" koanf:"server"`
	Export      ExportConfig      `yaml:"export" koanf:"export"`

	LogLevel string `yaml:"log_level" koanf:"log_level"`
}

// Resource is a reference link shown in the page sidebar.
type Resource struct {
	Title string `yaml:"title" koanf:"title"`
	URL   string `yaml:"url" koanf:"url"`
}

// MenuConfig holds mini menu settings.
type MenuConfig struct {
	StripeRows bool `yaml:"stripe_rows" koanf:"stripe_rows"`
}

// HighlighterConfig points at the front-end syntax highlighter assets.
type HighlighterConfig struct {
	StyleURL  string `yaml:"style_url" koanf:"style_url"`
	ScriptURL string `yaml:"script_url" koanf:"script_url"`
	Language  string `yaml:"language" koanf:"language"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// ExportConfig holds static export settings.
type ExportConfig struct {
	Output string `yaml:"output" koanf:"output"`
}
