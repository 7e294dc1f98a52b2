// Package chop extracts parts of a subject by grapheme position.
//
// Positions and lengths never cause a panic or an error. A value outside the
// subject is clamped to the nearest valid one, so every function always
// returns something. A zero end position in Slice, Substr and Substring
// stands for "the end of the subject".
//
// Usage Example:
//
//	chop.Slice("Die Schildkröte fliegt.", 4, -8) // "Schildkröte"
//	chop.Prune("Once upon a time", 7, "")         // "Once..."
//	chop.CharAt("rain", 40)                      // "n"
package chop

import (
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/chriscorrea/voca/internal/split"
)

// DefaultSuffix is appended by Truncate and Prune when no suffix is given.
const DefaultSuffix = "..."

// getChars joins graphemes[start:end]. Callers clamp the bounds.
func getChars(graphemes []string, start, end int) string {
	return strings.Join(graphemes[start:end], "")
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// CharAt returns the grapheme at position, clamped to the last one.
func CharAt(subject string, position int) string {
	return GraphemeAt(subject, position)
}

// GraphemeAt returns the grapheme at position, clamped to the last one.
func GraphemeAt(subject string, position int) string {
	graphemes := split.Clusters(subject)
	if len(graphemes) == 0 {
		return ""
	}
	position = clamp(position, 0, len(graphemes)-1)
	return graphemes[position]
}

// CodePointAt returns the UTF-16 code units of the grapheme at position.
func CodePointAt(subject string, position int) []uint16 {
	g := GraphemeAt(subject, position)
	if g == "" {
		return []uint16{}
	}
	return utf16.Encode([]rune(g))
}

// First returns the first length graphemes of subject.
func First(subject string, length int) string {
	graphemes := split.Clusters(subject)
	return getChars(graphemes, 0, clamp(length, 0, len(graphemes)))
}

// Last returns the last length graphemes of subject.
func Last(subject string, length int) string {
	graphemes := split.Clusters(subject)
	length = clamp(length, 0, len(graphemes))
	return getChars(graphemes, len(graphemes)-length, len(graphemes))
}

// Slice returns the graphemes from start up to, not including, end. Negative
// bounds count from the end of subject. An end of 0 means the end.
func Slice(subject string, start, end int) string {
	graphemes := split.Clusters(subject)
	n := len(graphemes)
	from := position(start, n)
	to := n
	if end != 0 {
		to = position(end, n)
	}
	if from >= to {
		return ""
	}
	return getChars(graphemes, from, to)
}

// position resolves a possibly negative index against length n.
func position(i, n int) int {
	if i < 0 {
		return max(n+i, 0)
	}
	return min(i, n)
}

// Substr returns length graphemes of subject starting at start. A length of
// 0 means the rest of the subject.
func Substr(subject string, start, length int) string {
	graphemes := split.Clusters(subject)
	n := len(graphemes)
	if start < 0 {
		start = 0
	}
	if start >= n {
		return ""
	}
	end := n
	if length > 0 && length < n-start {
		end = start + length
	}
	if end <= start {
		return ""
	}
	return getChars(graphemes, start, end)
}

// Substring returns the graphemes between start and end. An end of 0 means
// the end of subject. Both bounds are non-negative: a negative start reads as
// 0 and a negative end yields "".
func Substring(subject string, start, end int) string {
	graphemes := split.Clusters(subject)
	n := len(graphemes)
	if start < 0 {
		start = 0
	}
	if start >= n {
		return ""
	}
	if end < 0 {
		return ""
	}
	if end == 0 || end > n {
		end = n
	}
	if start >= end {
		return ""
	}
	return getChars(graphemes, start, end)
}

// Truncate cuts subject so that, with suffix appended, it is length
// graphemes long. A subject that already fits is returned unchanged.
func Truncate(subject string, length int, suffix string) string {
	if length <= 0 {
		return ""
	}
	graphemes := split.Clusters(subject)
	if length >= len(graphemes) {
		return subject
	}
	if suffix == "" {
		suffix = DefaultSuffix
	}
	cut := max(length-len(split.Clusters(suffix)), 0)
	return getChars(graphemes, 0, cut) + suffix
}

// Prune is Truncate without cutting words: the cut moves back to the end of
// the last whole word that fits. The result, suffix included, is never longer
// than length graphemes.
func Prune(subject string, length int, suffix string) string {
	if length <= 0 {
		return ""
	}
	graphemes := split.Clusters(subject)
	if length >= len(graphemes) {
		return subject
	}
	if suffix == "" {
		suffix = DefaultSuffix
	}
	room := length - len(split.Clusters(suffix))
	if room < 0 {
		return First(suffix, length)
	}

	cut := 0
	inWord := false
	for i, g := range graphemes {
		word := isWordGrapheme(g)
		if inWord && !word && i <= room {
			cut = i
		}
		inWord = word
	}
	return getChars(graphemes, 0, cut) + suffix
}

func isWordGrapheme(g string) bool {
	r, _ := utf8.DecodeRuneInString(g)
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r)
}

// Min returns the scalar with the smallest code point in subject.
func Min(subject string) string {
	return extreme(subject, func(a, b rune) bool { return a < b })
}

// Max returns the scalar with the largest code point in subject.
func Max(subject string) string {
	return extreme(subject, func(a, b rune) bool { return a > b })
}

func extreme(subject string, better func(a, b rune) bool) string {
	if subject == "" {
		return ""
	}
	var best rune
	for i, r := range []rune(subject) {
		if i == 0 || better(r, best) {
			best = r
		}
	}
	return string(best)
}
