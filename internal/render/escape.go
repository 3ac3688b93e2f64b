package render

import (
	"html"
	"strings"
)

// EscapeSource turns raw snippet bytes into text that displays literally
// inside HTML. Invalid UTF-8 sequences become U+FFFD; for valid UTF-8 input
// html.UnescapeString(EscapeSource(b)) == string(b).
func EscapeSource(raw []byte) string {
	return html.EscapeString(strings.ToValidUTF8(string(raw), "\uFFFD"))
}
