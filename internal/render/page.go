package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"os"

	"github.com/ziadkadry99/patternbook/internal/patterns"
)

// SnippetData is the value a snippet template is executed with.
type SnippetData struct {
	Meta    Meta
	Snippet patterns.Snippet
}

// RenderOption adjusts a single page render.
type RenderOption func(*renderConfig)

type renderConfig struct {
	progress func(done, total int, s patterns.Snippet)
}

// WithProgress calls fn after each section has been rendered.
func WithProgress(fn func(done, total int, s patterns.Snippet)) RenderOption {
	return func(c *renderConfig) { c.progress = fn }
}

type sectionData struct {
	Snippet    patterns.Snippet
	Markup     template.HTML
	IncludeErr string
	Source     template.HTML
	HasSource  bool
	Language   string
}

type pageData struct {
	Meta           Meta
	Menu           template.HTML
	About          template.HTML
	Resources      []Resource
	CopyrightSince int
	Year           int
	Notice         string
	Sections       []template.HTML
}

type documentData struct {
	Meta        Meta
	Highlighter Highlighter
	Style       template.CSS
	Page        template.HTML
}

// Include executes the snippet file as a template and writes the resulting
// markup. Snippet content is trusted: it is run, not escaped.
func (r *Renderer) Include(w io.Writer, s patterns.Snippet) error {
	content, err := os.ReadFile(s.Path)
	if err != nil {
		return fmt.Errorf("reading snippet %s: %w", s.Name, err)
	}
	tmpl, err := template.New(s.Name).Parse(string(content))
	if err != nil {
		return fmt.Errorf("parsing snippet %s: %w", s.Name, err)
	}
	if err := tmpl.Execute(w, SnippetData{Meta: r.meta, Snippet: s}); err != nil {
		return fmt.Errorf("executing snippet %s: %w", s.Name, err)
	}
	return nil
}

// Source reads the snippet file again and returns it escaped for display.
func (r *Renderer) Source(s patterns.Snippet) (template.HTML, error) {
	raw, err := patterns.ReadRawSource(s)
	if err != nil {
		return "", err
	}
	return template.HTML(EscapeSource(raw)), nil
}

// RenderPage writes the page fragment: heading, mini menu, sidebar and one
// section per snippet in the given order. An empty list yields the wrapper
// without sections.
func (r *Renderer) RenderPage(w io.Writer, snippets []patterns.Snippet, opts ...RenderOption) error {
	return r.renderPage(w, snippets, nil, opts)
}

// RenderDocument writes a complete HTML document around the page fragment,
// including the highlighter assets. A non-nil listErr means the pattern
// directory could not be read: the page then shows an error notice and no
// sections.
func (r *Renderer) RenderDocument(w io.Writer, snippets []patterns.Snippet, listErr error, opts ...RenderOption) error {
	var page bytes.Buffer
	if err := r.renderPage(&page, snippets, listErr, opts); err != nil {
		return err
	}
	return r.document.Execute(w, documentData{
		Meta:        r.meta,
		Highlighter: r.opts.Highlighter,
		Style:       template.CSS(pageStyle),
		Page:        template.HTML(page.String()),
	})
}

func (r *Renderer) renderPage(w io.Writer, snippets []patterns.Snippet, listErr error, opts []RenderOption) error {
	var cfg renderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	data := pageData{
		Meta:           r.meta,
		About:          r.about,
		Resources:      r.opts.Resources,
		CopyrightSince: r.opts.CopyrightSince,
		Year:           r.opts.Now().Year(),
	}

	if listErr != nil {
		r.logger.Error("pattern directory unavailable", "error", listErr)
		data.Notice = "The pattern directory could not be read, so no patterns are shown: " + listErr.Error()
		snippets = nil
	}

	var menu bytes.Buffer
	if err := r.RenderMenu(&menu, snippets); err != nil {
		return fmt.Errorf("rendering menu: %w", err)
	}
	data.Menu = template.HTML(menu.String())

	data.Sections = make([]template.HTML, 0, len(snippets))
	for i, s := range snippets {
		section, err := r.renderSection(s)
		if err != nil {
			return fmt.Errorf("rendering section %s: %w", s.Name, err)
		}
		data.Sections = append(data.Sections, section)
		if cfg.progress != nil {
			cfg.progress(i+1, len(snippets), s)
		}
	}

	return r.page.Execute(w, data)
}

func (r *Renderer) renderSection(s patterns.Snippet) (template.HTML, error) {
	data := sectionData{
		Snippet:  s,
		Language: r.opts.Highlighter.Language,
	}

	// Buffer the include so a failing template never leaves half a snippet.
	var markup bytes.Buffer
	if err := r.Include(&markup, s); err != nil {
		r.logger.Warn("snippet include failed", "snippet", s.Name, "error", err)
		data.IncludeErr = err.Error()
	} else {
		data.Markup = template.HTML(markup.String())
	}

	if src, err := r.Source(s); err != nil {
		r.logger.Warn("snippet source unavailable", "snippet", s.Name, "error", err)
	} else {
		data.Source = src
		data.HasSource = true
	}

	var out bytes.Buffer
	if err := r.section.Execute(&out, data); err != nil {
		return "", err
	}
	return template.HTML(out.String()), nil
}
