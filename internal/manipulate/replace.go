package manipulate

import (
	"strings"

	"github.com/chriscorrea/voca/internal/index"
	"github.com/chriscorrea/voca/internal/split"
)

// Replace replaces the first occurrence of search with replacement.
// Canonically equivalent spellings match: "e\u0301" finds "\u00e9".
func Replace(subject, search, replacement string) string {
	found := index.Occurrences(subject, search)
	if len(found) == 0 {
		return subject
	}
	return replaceRanges(subject, found[:1], replacement)
}

// ReplaceAll replaces every occurrence of search with replacement.
func ReplaceAll(subject, search, replacement string) string {
	found := index.Occurrences(subject, search)
	if len(found) == 0 {
		return subject
	}
	return replaceRanges(subject, found, replacement)
}

// replaceRanges rebuilds subject with each grapheme range swapped for
// replacement. ranges must be sorted and must not overlap.
func replaceRanges(subject string, ranges []index.Range, replacement string) string {
	graphemes := split.Clusters(subject)
	var b strings.Builder
	b.Grow(len(subject))
	prev := 0
	for _, r := range ranges {
		b.WriteString(strings.Join(graphemes[prev:r.Start], ""))
		b.WriteString(replacement)
		prev = r.End
	}
	b.WriteString(strings.Join(graphemes[prev:], ""))
	return b.String()
}
