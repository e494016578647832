// ABOUTME: Content processing utilities for article text
// ABOUTME: Reduces feed-supplied strings to inert plain text before terminal display

package content

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

// whitespaceReplacer turns line breaks and tabs into spaces before stripping
var whitespaceReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

// PlainText strips terminal escape sequences and control characters from s.
// Newlines and tabs collapse to single spaces so a field stays on one line.
func PlainText(s string) string {
	if s == "" {
		return s
	}

	stripped := ansi.Strip(whitespaceReplacer.Replace(s))

	var b strings.Builder
	b.Grow(len(stripped))
	lastSpace := false
	for _, r := range stripped {
		switch {
		case r == ' ':
			if !lastSpace {
				b.WriteRune(r)
			}
			lastSpace = true
		case unicode.IsControl(r):
			// dropped
		default:
			b.WriteRune(r)
			lastSpace = false
		}
	}

	return b.String()
}
