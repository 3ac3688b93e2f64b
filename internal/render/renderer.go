package render

import (
	"fmt"
	"html/template"
	"log/slog"
	"time"
)

// Meta describes the pattern book itself. It is filled once at startup and
// shown in the page heading and the about box.
type Meta struct {
	Name        string
	Version     string
	Description string
	Author      string
	AuthorURI   string
}

// Resource is one link in the "Resources & Reference" box.
type Resource struct {
	Title string
	URL   string
}

// Highlighter names the front-end syntax highlighter attached to the page.
type Highlighter struct {
	StyleURL  string
	ScriptURL string
	Language  string // Used as the language-* class on the source panel.
}

// Options configures a Renderer.
type Options struct {
	StripeRows     bool
	Resources      []Resource
	Highlighter    Highlighter
	AboutMarkdown  []byte
	CopyrightSince int
	Logger         *slog.Logger
	Now            func() time.Time
}

// Renderer produces the pattern page. One Renderer is built per process and
// shared by every surface that shows patterns.
type Renderer struct {
	meta   Meta
	opts   Options
	about  template.HTML
	logger *slog.Logger

	document *template.Template
	page     *template.Template
	section  *template.Template
	menu     *template.Template
}

// New parses the page templates and renders the about box.
func New(meta Meta, opts Options) (*Renderer, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Highlighter.Language == "" {
		opts.Highlighter.Language = "markup"
	}

	r := &Renderer{
		meta:   meta,
		opts:   opts,
		logger: opts.Logger,
	}

	var err error
	if r.document, err = template.New("document").Parse(documentTemplate); err != nil {
		return nil, fmt.Errorf("parsing document template: %w", err)
	}
	if r.page, err = template.New("page").Parse(pageTemplate); err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	if r.section, err = template.New("section").Parse(sectionTemplate); err != nil {
		return nil, fmt.Errorf("parsing section template: %w", err)
	}
	if r.menu, err = template.New("menu").Parse(menuTemplate); err != nil {
		return nil, fmt.Errorf("parsing menu template: %w", err)
	}

	about := opts.AboutMarkdown
	if len(about) == 0 {
		about = []byte(defaultAbout)
	}
	if r.about, err = renderAbout(about); err != nil {
		return nil, fmt.Errorf("rendering about text: %w", err)
	}

	return r, nil
}

// Meta returns the metadata the renderer was built with.
func (r *Renderer) Meta() Meta { return r.meta }
