package renderer

import (
	"html"
)

// Escape makes author text safe to embed in markup. Only &, <, >, " and '
// are replaced; every other rune, including non-Latin scripts, is kept.
func Escape(text string) string {
	return html.EscapeString(text)
}
