package render

import (
	"io"

	"github.com/ziadkadry99/patternbook/internal/patterns"
)

type menuRow struct {
	Anchor    string
	Title     string
	Alternate bool
}

type menuData struct {
	Rows []menuRow
}

// RenderMenu writes the mini menu: one anchor link per snippet, in order.
// With StripeRows set, the first, third, fifth... rows carry the
// "alternate" class.
func (r *Renderer) RenderMenu(w io.Writer, snippets []patterns.Snippet) error {
	return r.menu.Execute(w, r.menuData(snippets))
}

func (r *Renderer) menuData(snippets []patterns.Snippet) menuData {
	rows := make([]menuRow, len(snippets))
	for i, s := range snippets {
		rows[i] = menuRow{
			Anchor:    s.Anchor,
			Title:     s.Title(),
			Alternate: r.opts.StripeRows && i%2 == 0,
		}
	}
	return menuData{Rows: rows}
}
