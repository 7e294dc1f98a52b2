// Package count measures text: runes, grapheme clusters, substrings and words.
//
// The package functions are pure and return 0 for empty input. The Counter
// strategies wrap the same measurements (and tiktoken token counting) behind
// one interface, so callers can pick a unit at run time.
//
// Usage Example:
//
//	count.Graphemes("cafe\u0301")                   // 4
//	count.Substrings("bad boys, bad boys", "boys") // 2
//	count.Words("GravityCanCrossDimensions", "")   // 4
//
//	counter, err := count.NewCounter(count.ByTokens)
//	n := counter.Count("Hello, world!")
package count

import (
	"unicode/utf8"

	"github.com/chriscorrea/voca/internal/index"
	"github.com/chriscorrea/voca/internal/split"
)

// Chars returns the number of runes in subject.
func Chars(subject string) int {
	return utf8.RuneCountInString(subject)
}

// Graphemes returns the number of grapheme clusters in subject.
func Graphemes(subject string) int {
	return len(split.Clusters(subject))
}

// Substrings counts the non-overlapping occurrences of substring. Canonically
// equivalent forms match each other. An empty substring counts 0.
func Substrings(subject, substring string) int {
	return len(index.Occurrences(subject, substring))
}

// Where counts the graphemes of subject for which pred returns true.
func Where(subject string, pred func(grapheme string) bool) int {
	n := 0
	for _, g := range split.Clusters(subject) {
		if pred(g) {
			n++
		}
	}
	return n
}

// Words counts the words in subject. With an empty sep the words are found
// by split.Words, otherwise subject is split on sep.
func Words(subject, sep string) int {
	return len(words(subject, sep))
}

// UniqueWords counts the distinct words in subject, split as in Words.
func UniqueWords(subject, sep string) int {
	seen := make(map[string]struct{})
	for _, w := range words(subject, sep) {
		seen[w] = struct{}{}
	}
	return len(seen)
}

func words(subject, sep string) []string {
	if subject == "" {
		return nil
	}
	if sep == "" {
		return split.Words(subject)
	}
	return split.Split(subject, sep)
}
