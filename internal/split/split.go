// Package split breaks text into the units every other voca package works on:
// scalar values ("chars"), extended grapheme clusters and words.
//
// Chars and Graphemes return a single empty token for empty input so that
// callers may index [0] unconditionally. Clusters is the variant without that
// quirk and is what the extraction and counting packages build on.
//
// Usage Example:
//
//	split.Graphemes("a\u0310éö\u0332\r\n")
//	// ["a\u0310", "é", "ö\u0332", "\r\n"]
//	split.Words("LazyLoad with XMLHttpRequest")
//	// ["Lazy", "Load", "with", "XML", "Http", "Request"]
package split

import (
	"strings"
	"unicode/utf16"

	"github.com/rivo/uniseg"
)

// Chars splits subject into single-rune strings.
func Chars(subject string) []string {
	if subject == "" {
		return []string{""}
	}
	out := make([]string, 0, len(subject))
	for _, r := range subject {
		out = append(out, string(r))
	}
	return out
}

// Graphemes splits subject into extended grapheme clusters.
func Graphemes(subject string) []string {
	if subject == "" {
		return []string{""}
	}
	return Clusters(subject)
}

// Clusters is Graphemes without the empty-token quirk: empty input yields nil.
func Clusters(subject string) []string {
	if subject == "" {
		return nil
	}
	g := uniseg.NewGraphemes(subject)
	out := make([]string, 0, len(subject))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// CodePoints returns the UTF-16 code units of subject.
func CodePoints(subject string) []uint16 {
	return utf16.Encode([]rune(subject))
}

// Split splits subject on a literal separator. An empty separator returns
// the subject as the only element. A separator that terminates the subject
// does not produce a trailing empty piece.
func Split(subject, sep string) []string {
	if sep == "" || subject == "" {
		return []string{subject}
	}
	parts := strings.Split(subject, sep)
	if len(parts) > 1 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}
