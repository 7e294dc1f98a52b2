// Package escape converts text into forms that are safe to embed in HTML
// or in a regular expression.
package escape

import (
	"html"
	"strings"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"`", "&#x60;",
)

// HTML replaces the characters & < > " ' and ` with HTML entities.
func HTML(s string) string {
	return htmlEscaper.Replace(s)
}

// UnescapeHTML turns HTML entities back into the characters they stand
// for. It accepts every named and numeric entity, not just the ones HTML
// produces.
func UnescapeHTML(s string) string {
	return html.UnescapeString(s)
}

const regexpSpecial = `-[]/{}()*+?.\^$|`

// Regexp backslash-escapes the regular expression metacharacters in s.
func Regexp(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(regexpSpecial, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
