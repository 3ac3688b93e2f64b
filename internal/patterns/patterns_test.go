package patterns

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeFiles creates the named files with trivial content under dir.
func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("<p>"+name+"</p>"), 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
}

func names(snippets []Snippet) []string {
	out := make([]string, len(snippets))
	for i, s := range snippets {
		out[i] = s.Name
	}
	return out
}

func TestLabelAndAnchor(t *testing.T) {
	tests := []struct {
		name       string
		wantLabel  string
		wantAnchor string
	}{
		{"alert-box.html", "alert box ", "alertbox"},
		{"button_group.html", "button group ", "buttongroup"},
		{"form table.html", "form table ", "formtable"},
		{"Mixed_Case-Name.HTML", "Mixed Case Name ", "MixedCaseName"},
		{"tabs.html.bak", "tabs .bak", "tabs.bak"},
		{"a.ht_ml.html", "a.ht ml ", "a"},
		{"x.ht-ml", "x.ht ml", "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Label(tt.name, ".html"); got != tt.wantLabel {
				t.Errorf("Label(%q) = %q, want %q", tt.name, got, tt.wantLabel)
			}
			if got := Anchor(tt.name, ".html"); got != tt.wantAnchor {
				t.Errorf("Anchor(%q) = %q, want %q", tt.name, got, tt.wantAnchor)
			}
		})
	}
}

func TestLabelAndAnchorStripSeparators(t *testing.T) {
	inputs := []string{
		"a-b_c d.html",
		"--__.html",
		"x.HTML.html",
		"nested-.html-name_.html",
		"plain.html",
	}
	for _, in := range inputs {
		label := Label(in, ".html")
		anchor := Anchor(in, ".html")
		for _, bad := range []string{".html", "_", "-"} {
			if strings.Contains(strings.ToLower(label), bad) {
				t.Errorf("Label(%q) = %q still contains %q", in, label, bad)
			}
			if strings.Contains(strings.ToLower(anchor), bad) {
				t.Errorf("Anchor(%q) = %q still contains %q", in, anchor, bad)
			}
		}
		if strings.Contains(anchor, " ") {
			t.Errorf("Anchor(%q) = %q contains a space", in, anchor)
		}
	}
}

func TestSnippetTitle(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"alert box ", "Alert box"},
		{"button group ", "Button group"},
		{"", ""},
		{"élan ", "Élan"},
	}
	for _, tt := range tests {
		got := Snippet{Label: tt.label}.Title()
		if got != tt.want {
			t.Errorf("Title(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestListSorted(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "tables.html", "buttons.html", "alert-box.html", "Zebra.html", "notes.txt")

	snippets, err := List(dir, DefaultOptions())
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}

	want := []string{"Zebra.html", "alert-box.html", "buttons.html", "tables.html"}
	got := names(snippets)
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("List() = %v, want %v", got, want)
	}

	again, err := List(dir, DefaultOptions())
	if err != nil {
		t.Fatalf("second List() error: %v", err)
	}
	if strings.Join(names(again), ",") != strings.Join(got, ",") {
		t.Errorf("List() not deterministic: %v vs %v", names(again), got)
	}
}

func TestListDerivedFields(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "alert-box.html")

	snippets, err := List(dir, DefaultOptions())
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(snippets) != 1 {
		t.Fatalf("got %d snippets, want 1", len(snippets))
	}
	s := snippets[0]
	if s.Path != filepath.Join(dir, "alert-box.html") {
		t.Errorf("Path = %q", s.Path)
	}
	if s.Label != "alert box " {
		t.Errorf("Label = %q", s.Label)
	}
	if s.Anchor != "alertbox" {
		t.Errorf("Anchor = %q", s.Anchor)
	}
}

func TestListUnsortedKeepsEverySnippet(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "c.html", "a.html", "b.html")

	opts := DefaultOptions()
	opts.Sort = false
	snippets, err := List(dir, opts)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(snippets) != 3 {
		t.Fatalf("got %d snippets, want 3", len(snippets))
	}
}

func TestListSubstringMatch(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "tabs.html.bak", "card.HTML", "readme.md")

	snippets, err := List(dir, DefaultOptions())
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	got := strings.Join(names(snippets), ",")
	if got != "card.HTML,tabs.html.bak" {
		t.Errorf("substring match = %q", got)
	}

	opts := DefaultOptions()
	opts.StrictExtension = true
	snippets, err = List(dir, opts)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	got = strings.Join(names(snippets), ",")
	if got != "card.HTML" {
		t.Errorf("strict match = %q", got)
	}
}

func TestListSkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "buttons.html")
	if err := os.Mkdir(filepath.Join(dir, "archive.html"), 0o755); err != nil {
		t.Fatal(err)
	}

	snippets, err := List(dir, DefaultOptions())
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if got := strings.Join(names(snippets), ","); got != "buttons.html" {
		t.Errorf("List() = %q, want only buttons.html", got)
	}
}

func TestListExclude(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "buttons.html", "_draft.html", "draft-tables.html")

	opts := DefaultOptions()
	opts.Exclude = []string{"_*", "draft-*"}
	snippets, err := List(dir, opts)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if got := strings.Join(names(snippets), ","); got != "buttons.html" {
		t.Errorf("List() with exclude = %q", got)
	}
}

func TestListCustomExtension(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "alert.tmpl", "alert.html")

	opts := DefaultOptions()
	opts.Extension = ".tmpl"
	snippets, err := List(dir, opts)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(snippets) != 1 || snippets[0].Anchor != "alert" {
		t.Errorf("List() = %+v", snippets)
	}
}

func TestListEmptyDir(t *testing.T) {
	snippets, err := List(t.TempDir(), DefaultOptions())
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(snippets) != 0 {
		t.Errorf("got %d snippets from empty dir", len(snippets))
	}
}

func TestListMissingDir(t *testing.T) {
	_, err := List(filepath.Join(t.TempDir(), "nope"), DefaultOptions())
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
	if !errors.Is(err, ErrDirUnreadable) {
		t.Errorf("error = %v, want ErrDirUnreadable", err)
	}
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "alert-box.html", "buttons.html")

	s, err := Find(dir, DefaultOptions(), "alertbox")
	if err != nil {
		t.Fatalf("Find() error: %v", err)
	}
	if s.Name != "alert-box.html" {
		t.Errorf("Find() = %q", s.Name)
	}

	_, err = Find(dir, DefaultOptions(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Find(missing) error = %v, want ErrNotFound", err)
	}
}

func TestReadRawSource(t *testing.T) {
	dir := t.TempDir()
	content := "<button class=\"button\">{{.Meta.Name}}</button>\n"
	path := filepath.Join(dir, "button.html")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadRawSource(Snippet{Name: "button.html", Path: path})
	if err != nil {
		t.Fatalf("ReadRawSource() error: %v", err)
	}
	if string(got) != content {
		t.Errorf("ReadRawSource() = %q, want %q", got, content)
	}

	if _, err := ReadRawSource(Snippet{Name: "gone.html", Path: filepath.Join(dir, "gone.html")}); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestMatchesExclude(t *testing.T) {
	if MatchesExclude("buttons.html", nil) {
		t.Error("nil patterns should exclude nothing")
	}
	if !MatchesExclude("old-buttons.html", []string{"old-*"}) {
		t.Error("expected old-* to match")
	}
	if MatchesExclude("buttons.html", []string{"[invalid"}) {
		t.Error("invalid pattern should not match")
	}
}

func TestValidatePatterns(t *testing.T) {
	if err := ValidatePatterns([]string{"*.bak", "draft-*"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	err := ValidatePatterns([]string{"ok", "[broken"})
	var pe *PatternError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want *PatternError", err)
	}
	if pe.Pattern != "[broken" {
		t.Errorf("Pattern = %q", pe.Pattern)
	}
}
