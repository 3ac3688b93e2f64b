package patterns

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultExtension is the marker a filename must contain to count as a snippet.
const DefaultExtension = ".html"

var (
	// ErrDirUnreadable is returned when the pattern directory cannot be opened or read.
	ErrDirUnreadable = errors.New("pattern directory unreadable")
	// ErrNotFound is returned when no snippet carries the requested anchor.
	ErrNotFound = errors.New("pattern not found")
)

// Snippet is one markup example file in the pattern directory.
type Snippet struct {
	Name   string `json:"name"`   // File name, e.g. "alert-box.html".
	Path   string `json:"-"`      // Full path on disk.
	Label  string `json:"label"`  // Name with separators and the extension replaced by spaces.
	Anchor string `json:"anchor"` // Name with separators and the extension removed.
}

// Title returns the label trimmed and with its first letter upper-cased,
// as shown in the menu.
func (s Snippet) Title() string {
	return capitalize(strings.TrimSpace(s.Label))
}

// Options controls how List selects and orders snippets.
type Options struct {
	Extension       string   // Marker matched case-insensitively anywhere in the name.
	StrictExtension bool     // Require the marker as a suffix instead of a substring.
	Sort            bool     // Sort names in ascending byte order.
	Exclude         []string // Glob patterns matched against the file name.
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Extension: DefaultExtension,
		Sort:      true,
	}
}

// List scans the immediate entries of dir and returns the snippets found
// there. The directory is re-read on every call.
func List(dir string, opts Options) ([]Snippet, error) {
	ext := opts.Extension
	if ext == "" {
		ext = DefaultExtension
	}

	f, err := os.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDirUnreadable, dir, err)
	}
	// ReadDir on the handle keeps directory order; os.ReadDir would sort.
	entries, err := f.ReadDir(-1)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDirUnreadable, dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !Matches(name, ext, opts.StrictExtension) {
			continue
		}
		if MatchesExclude(name, opts.Exclude) {
			continue
		}
		names = append(names, name)
	}

	if opts.Sort {
		slices.Sort(names)
	}

	snippets := make([]Snippet, 0, len(names))
	for _, name := range names {
		snippets = append(snippets, Snippet{
			Name:   name,
			Path:   filepath.Join(dir, name),
			Label:  Label(name, ext),
			Anchor: Anchor(name, ext),
		})
	}
	return snippets, nil
}

// Find returns the first snippet in dir whose anchor equals anchor.
func Find(dir string, opts Options, anchor string) (Snippet, error) {
	snippets, err := List(dir, opts)
	if err != nil {
		return Snippet{}, err
	}
	for _, s := range snippets {
		if s.Anchor == anchor {
			return s, nil
		}
	}
	return Snippet{}, fmt.Errorf("%w: %q", ErrNotFound, anchor)
}

// ReadRawSource reads the snippet file from disk as literal text. It never
// shares bytes with the include step.
func ReadRawSource(s Snippet) ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("reading source of %s: %w", s.Name, err)
	}
	return data, nil
}

// Matches reports whether name carries the extension marker. By default the
// marker may appear anywhere in the name; strict requires it at the end.
func Matches(name, ext string, strict bool) bool {
	lname, lext := strings.ToLower(name), strings.ToLower(ext)
	if strict {
		return strings.HasSuffix(lname, lext)
	}
	return strings.Contains(lname, lext)
}

// Label derives the menu text for a file name: the extension marker, '_',
// '-' and ' ' each become a single space.
func Label(name, ext string) string {
	return replaceTokens(name, ext, " ")
}

// Anchor derives the in-page fragment id for a file name: the extension
// marker, '_', '-' and ' ' are removed.
func Anchor(name, ext string) string {
	return replaceTokens(name, ext, "")
}

// replaceTokens repeats until the name is stable, so removing separators
// cannot splice a new marker together ("a.ht_ml.html" -> "a").
func replaceTokens(name, ext, with string) string {
	for {
		s := replaceFold(name, ext, with)
		for _, tok := range []string{"_", "-", " "} {
			s = strings.ReplaceAll(s, tok, with)
		}
		if s == name {
			return s
		}
		name = s
	}
}

// replaceFold replaces every case-insensitive occurrence of old in s.
func replaceFold(s, old, with string) string {
	if old == "" {
		return s
	}
	var b strings.Builder
	n := len(old)
	for i := 0; i < len(s); {
		if i+n <= len(s) && strings.EqualFold(s[i:i+n], old) {
			b.WriteString(with)
			i += n
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
