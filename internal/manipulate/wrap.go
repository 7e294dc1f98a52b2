package manipulate

import (
	"strings"

	"github.com/chriscorrea/voca/internal/split"
)

// WordWrap packs the whitespace-separated words of subject into lines of at
// most width graphemes, joined by newline ("\n" when empty). Every line is
// prefixed with indent. A word longer than width gets a line of its own and
// is not broken. A width below 1 disables wrapping.
func WordWrap(subject string, width int, newline, indent string) string {
	words := strings.Fields(subject)
	if len(words) == 0 {
		return ""
	}
	if newline == "" {
		newline = "\n"
	}
	if width < 1 {
		return indent + strings.Join(words, " ")
	}

	var lines []string
	var line strings.Builder
	lineWidth := 0
	for _, word := range words {
		wordWidth := len(split.Clusters(word))
		needed := wordWidth
		if lineWidth > 0 {
			needed++ // for space separator
		}

		if lineWidth > 0 && lineWidth+needed > width {
			lines = append(lines, indent+line.String())
			line.Reset()
			lineWidth = 0
			needed = wordWidth
		}

		if lineWidth > 0 {
			line.WriteString(" ")
		}
		line.WriteString(word)
		lineWidth += needed
	}
	lines = append(lines, indent+line.String())

	return strings.Join(lines, newline)
}
