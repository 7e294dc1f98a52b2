package split

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Words splits subject into words. Three stages run in sequence: Unicode
// word boundaries, every rune that is not a letter, mark or number ('-',
// '_', '.', ':' and apostrophes included), then camelCase transitions.
// Joined together the words hold letters, marks and numbers only.
func Words(subject string) []string {
	var words []string
	for _, segment := range unicodeWords(subject) {
		for _, piece := range splitDelimiters(segment) {
			words = append(words, splitCamelCase(piece)...)
		}
	}
	return words
}

// unicodeWords returns the UAX #29 word segments of subject that hold at
// least one letter or number.
func unicodeWords(subject string) []string {
	var segments []string
	state := -1
	rest := subject
	for len(rest) > 0 {
		var segment string
		segment, rest, state = uniseg.FirstWordInString(rest, state)
		if hasAlphanumeric(segment) {
			segments = append(segments, segment)
		}
	}
	return segments
}

func hasAlphanumeric(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsNumber(r)
	}) >= 0
}

// splitDelimiters splits a word segment on anything but letters, marks and
// numbers, dropping empty pieces. UAX #29 keeps "foo.bar" and "don't" in one
// segment.
func splitDelimiters(segment string) []string {
	return strings.FieldsFunc(segment, isDelimiter)
}

func isDelimiter(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsMark(r) && !unicode.IsNumber(r)
}

type caseMode int

const (
	boundary caseMode = iota
	lowercase
	uppercase
)

// splitCamelCase splits before an uppercase rune that follows a lowercase
// one (fooBar) and before the last rune of an uppercase run that is followed
// by a lowercase rune (XMLHttp). Uncased runes keep the current mode.
func splitCamelCase(piece string) []string {
	runes := []rune(piece)
	if len(runes) == 0 {
		return nil
	}

	var words []string
	start := 0
	mode := boundary
	for i, r := range runes {
		if i == len(runes)-1 {
			words = append(words, string(runes[start:]))
			break
		}
		next := runes[i+1]

		nextMode := mode
		switch {
		case unicode.IsLower(r):
			nextMode = lowercase
		case unicode.IsUpper(r):
			nextMode = uppercase
		}

		switch {
		case nextMode == lowercase && unicode.IsUpper(next):
			words = append(words, string(runes[start:i+1]))
			start = i + 1
			mode = boundary
		case mode == uppercase && unicode.IsUpper(r) && unicode.IsLower(next):
			words = append(words, string(runes[start:i]))
			start = i
			mode = boundary
		default:
			mode = nextMode
		}
	}
	return words
}
