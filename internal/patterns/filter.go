package patterns

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// MatchesExclude returns true if the file name matches any of the exclude
// patterns. Invalid patterns never match.
func MatchesExclude(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, err := doublestar.Match(pattern, name); err == nil && matched {
			return true
		}
	}
	return false
}

// ValidatePatterns reports the first malformed glob in patterns.
func ValidatePatterns(patterns []string) error {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return &PatternError{Pattern: pattern}
		}
	}
	return nil
}

// PatternError describes an exclude glob that cannot be parsed.
type PatternError struct {
	Pattern string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid exclude pattern %q", e.Pattern)
}
