// ABOUTME: Converts provider HTML snippets to readable text
// ABOUTME: Detects HTML, converts it to Markdown, then drops the Markdown syntax

package content

import (
	"html"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// htmlTagPattern matches common HTML tags
var htmlTagPattern = regexp.MustCompile(`<\s*/?\s*(p|div|span|a|br|img|font|h[1-6]|ul|ol|li|table|tr|td|th|strong|em|b|i|code|pre|blockquote)\b[^>]*>`)

// htmlEntityPattern matches named and numeric character references
var htmlEntityPattern = regexp.MustCompile(`&(#[0-9]+|#x[0-9a-fA-F]+|[a-zA-Z]+);`)

var (
	mdImage    = regexp.MustCompile(`!\[([^\]]*)\]\([^)]*\)`)
	mdLink     = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	mdStrong   = regexp.MustCompile(`(\*\*|__)([^*_]+)(\*\*|__)`)
	mdEmphasis = regexp.MustCompile(`(^|[^\\*])\*([^*\s][^*]*)\*`)
	mdCode     = regexp.MustCompile("`([^`]*)`")
	mdHeading  = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	mdQuote    = regexp.MustCompile(`(?m)^>\s?`)
	mdEscape   = regexp.MustCompile(`\\([\\` + "`" + `*_{}\[\]()#+\-.!|<>~])`)
)

// IsHTML checks if content appears to be HTML
func IsHTML(content string) bool {
	if strings.Contains(content, "<!DOCTYPE") || strings.Contains(content, "<html") {
		return true
	}
	return htmlTagPattern.MatchString(content) || htmlEntityPattern.MatchString(content)
}

// FromHTML reduces an HTML snippet to its visible text on one line.
// Content that does not look like HTML is returned unchanged.
func FromHTML(content string) string {
	if content == "" || !IsHTML(content) {
		return content
	}

	markdown, err := htmltomarkdown.ConvertString(content)
	if err != nil {
		return content
	}

	text := mdImage.ReplaceAllString(markdown, "$1")
	text = mdLink.ReplaceAllString(text, "$1")
	text = mdStrong.ReplaceAllString(text, "$2")
	text = mdEmphasis.ReplaceAllString(text, "$1$2")
	text = mdCode.ReplaceAllString(text, "$1")
	text = mdHeading.ReplaceAllString(text, "")
	text = mdQuote.ReplaceAllString(text, "")
	text = mdEscape.ReplaceAllString(text, "$1")
	text = html.UnescapeString(text)

	return strings.Join(strings.Fields(text), " ")
}
