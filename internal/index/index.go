// Package index locates substrings, character sets and regular expression
// matches inside a subject. Every position it reports is a grapheme index and
// -1 means "not found".
//
// Substring matching is canonical: "Cafe\u0301" contains "Café" because
// both sides are compared grapheme by grapheme in Unicode normalization form C.
package index

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/chriscorrea/voca/internal/split"
)

// Range is a half-open [Start, End) span of grapheme indexes.
type Range struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// IndexOf returns the index of the first occurrence of search in subject,
// starting at grapheme from and counted relative to it.
func IndexOf(subject, search string, from int) int {
	if search == "" {
		return 0
	}
	graphemes, ok := tail(subject, from)
	if !ok {
		return -1
	}
	return find(graphemes, normalized(search), 0)
}

// LastIndexOf returns the index of the last occurrence of search in subject,
// starting at grapheme from and counted relative to it.
func LastIndexOf(subject, search string, from int) int {
	if search == "" {
		return 0
	}
	graphemes, ok := tail(subject, from)
	if !ok {
		return -1
	}
	needle := normalized(search)
	for i := len(graphemes) - len(needle); i >= 0; i-- {
		if matchAt(graphemes, needle, i) {
			return i
		}
	}
	return -1
}

// IndexAll returns the indexes, relative to from, of every grapheme that
// appears in chars.
func IndexAll(subject, chars string, from int) []int {
	graphemes, ok := tail(subject, from)
	if !ok || chars == "" {
		return nil
	}
	var out []int
	for i, g := range graphemes {
		if strings.Contains(chars, g) {
			out = append(out, i)
		}
	}
	return out
}

// Search returns the absolute grapheme index of the first match of pattern
// at or after grapheme from. An invalid pattern never matches.
func Search(subject, pattern string, from int) int {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return -1
	}
	return SearchRegexp(subject, re, from)
}

// SearchRegexp is Search with a compiled expression.
func SearchRegexp(subject string, re *regexp.Regexp, from int) int {
	if from < 0 {
		from = 0
	}
	offsets := boundaries(subject)
	if from >= len(offsets) {
		return -1
	}
	loc := re.FindStringIndex(subject[offsets[from]:])
	if loc == nil {
		return -1
	}
	byteOffset := offsets[from] + loc[0]
	// index of the cluster that contains byteOffset
	return sort.SearchInts(offsets, byteOffset+1) - 1
}

// Occurrences returns the non-overlapping ranges at which search occurs in
// subject, left to right.
func Occurrences(subject, search string) []Range {
	if search == "" || subject == "" {
		return nil
	}
	graphemes := normalized(subject)
	needle := normalized(search)
	var out []Range
	for i := 0; i+len(needle) <= len(graphemes); {
		at := find(graphemes, needle, i)
		if at < 0 {
			break
		}
		out = append(out, Range{Start: at, End: at + len(needle)})
		i = at + len(needle)
	}
	return out
}

// tail returns the normalized graphemes of subject from index from on.
// The second result is false when from lies past the end.
func tail(subject string, from int) ([]string, bool) {
	if from < 0 {
		from = 0
	}
	graphemes := normalized(subject)
	if from > len(graphemes) {
		return nil, false
	}
	return graphemes[from:], true
}

func normalized(s string) []string {
	clusters := split.Clusters(s)
	for i, c := range clusters {
		clusters[i] = norm.NFC.String(c)
	}
	return clusters
}

func find(haystack, needle []string, from int) int {
	for i := from; i+len(needle) <= len(haystack); i++ {
		if matchAt(haystack, needle, i) {
			return i
		}
	}
	return -1
}

func matchAt(haystack, needle []string, at int) bool {
	for j, g := range needle {
		if haystack[at+j] != g {
			return false
		}
	}
	return true
}

// boundaries returns the byte offset at which each grapheme of subject
// starts, followed by len(subject).
func boundaries(subject string) []int {
	offsets := make([]int, 0, len(subject)+1)
	pos := 0
	for _, c := range split.Clusters(subject) {
		offsets = append(offsets, pos)
		pos += len(c)
	}
	return append(offsets, pos)
}
