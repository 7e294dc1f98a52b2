// Package query answers yes/no questions about text: what it starts or ends
// with, what it contains, and what kind of characters or case style it is
// written in.
//
// Positions are grapheme indexes. Searches are canonical, so "e\u0301"
// matches "\u00e9".
package query

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/chriscorrea/voca/internal/index"
	"github.com/chriscorrea/voca/internal/split"
)

// StartsWith reports whether subject begins with prefix.
func StartsWith(subject, prefix string) bool {
	return strings.HasPrefix(subject, prefix)
}

// EndsWith reports whether subject ends with suffix.
func EndsWith(subject, suffix string) bool {
	return strings.HasSuffix(subject, suffix)
}

// Includes reports whether search occurs in subject at or after grapheme
// from.
func Includes(subject, search string, from int) bool {
	if from > len(split.Clusters(subject)) {
		return false
	}
	return index.IndexOf(subject, search, from) >= 0
}

// Matches reports whether the regular expression pattern matches subject
// at or after grapheme from. An invalid pattern never matches.
func Matches(subject, pattern string, from int) bool {
	return index.Search(subject, pattern, from) >= 0
}

// Query reports whether the graphemes of search appear in subject, in
// order but not necessarily next to each other, at or after grapheme from.
func Query(subject, search string, from int) bool {
	graphemes := split.Clusters(subject)
	if from > len(graphemes) {
		return false
	}
	needle := split.Clusters(search)
	j := 0
	for _, g := range graphemes[max(from, 0):] {
		if j == len(needle) {
			break
		}
		if norm.NFC.String(g) == norm.NFC.String(needle[j]) {
			j++
		}
	}
	return j == len(needle)
}

// IsAlpha reports whether subject is non-empty and made only of letters
// and the marks that combine with them.
func IsAlpha(subject string) bool {
	return subject != "" && onlyRunes(subject, unicode.IsLetter)
}

// IsAlphaDigit reports whether subject is non-empty and made only of
// letters, marks and decimal digits.
func IsAlphaDigit(subject string) bool {
	return subject != "" && onlyRunes(subject, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	})
}

func onlyRunes(subject string, accept func(rune) bool) bool {
	for i, r := range subject {
		if accept(r) || (i > 0 && unicode.IsMark(r)) {
			continue
		}
		return false
	}
	return true
}

// IsBlank reports whether subject is empty or whitespace only.
func IsBlank(subject string) bool {
	return strings.TrimSpace(subject) == ""
}

// IsDigit reports whether subject consists of ASCII digits. The empty
// string qualifies.
func IsDigit(subject string) bool {
	for i := 0; i < len(subject); i++ {
		if subject[i] < '0' || subject[i] > '9' {
			return false
		}
	}
	return true
}

// IsEmpty reports whether subject has no characters at all.
func IsEmpty(subject string) bool {
	return subject == ""
}

// IsNumeric reports whether subject is a decimal number, optionally signed
// and with an exponent, or a 0x-prefixed hexadecimal number. The empty
// string qualifies.
func IsNumeric(subject string) bool {
	if subject == "" {
		return true
	}
	p := getNumberPatterns()
	return p.decimal.MatchString(subject) || p.hex.MatchString(subject)
}
