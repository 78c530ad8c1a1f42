// Package htmlsanitize strips markup from free-text input before it is
// stored.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// PlainText removes all tags and trims surrounding whitespace. Entities
// produced by the policy are decoded so stored values hold the literal
// characters the user typed, such as the apostrophe in "St. Xavier's".
func PlainText(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}
