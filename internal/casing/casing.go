// Package casing converts text between case styles. The multi-word styles
// (camel, snake, kebab, ...) are built from split.Words, so punctuation and
// whitespace in the input act only as word separators.
//
// Upper and lower case use Unicode full case mapping without locale
// tailoring: Upper("Floß") is "FLOSS".
package casing

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/chriscorrea/voca/internal/split"
)

// Lower returns s in lower case.
func Lower(s string) string {
	// a Caser holds state, so one is built per call
	return cases.Lower(language.Und).String(s)
}

// Upper returns s in upper case.
func Upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// Capitalize upper-cases the first grapheme of s. When restToLower is set
// the remainder is lower-cased, otherwise it is left untouched.
func Capitalize(s string, restToLower bool) string {
	return convertFirst(s, Upper, restToLower)
}

// Decapitalize lower-cases the first grapheme of s. When restToLower is set
// the remainder is lower-cased too.
func Decapitalize(s string, restToLower bool) string {
	return convertFirst(s, Lower, restToLower)
}

// UpperFirst upper-cases only the first grapheme of s.
func UpperFirst(s string) string {
	return Capitalize(s, false)
}

// LowerFirst lower-cases only the first grapheme of s.
func LowerFirst(s string) string {
	return Decapitalize(s, false)
}

func convertFirst(s string, first func(string) string, restToLower bool) string {
	graphemes := split.Clusters(s)
	if len(graphemes) == 0 {
		return ""
	}
	rest := strings.Join(graphemes[1:], "")
	if restToLower {
		rest = Lower(rest)
	}
	return first(graphemes[0]) + rest
}

// Swap inverts the case of every rune.
func Swap(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsUpper(r):
			return unicode.ToLower(r)
		case unicode.IsLower(r):
			return unicode.ToUpper(r)
		default:
			return r
		}
	}, s)
}

// Camel joins the words of s as camelCase.
func Camel(s string) string {
	words := split.Words(s)
	for i, w := range words {
		if i == 0 {
			words[i] = Lower(w)
			continue
		}
		words[i] = Capitalize(w, true)
	}
	return strings.Join(words, "")
}

// Pascal joins the words of s as PascalCase.
func Pascal(s string) string {
	return joinWords(s, "", func(w string) string { return Capitalize(w, true) })
}

// Snake joins the lower-cased words of s with underscores.
func Snake(s string) string {
	return joinWords(s, "_", Lower)
}

// ShoutySnake joins the upper-cased words of s with underscores.
func ShoutySnake(s string) string {
	return joinWords(s, "_", Upper)
}

// Kebab joins the lower-cased words of s with hyphens.
func Kebab(s string) string {
	return joinWords(s, "-", Lower)
}

// ShoutyKebab joins the upper-cased words of s with hyphens.
func ShoutyKebab(s string) string {
	return joinWords(s, "-", Upper)
}

// Train joins the capitalized words of s with hyphens.
func Train(s string) string {
	return joinWords(s, "-", func(w string) string { return Capitalize(w, true) })
}

// Title joins the capitalized words of s with spaces.
func Title(s string) string {
	return joinWords(s, " ", func(w string) string { return Capitalize(w, true) })
}

func joinWords(s, sep string, convert func(string) string) string {
	words := split.Words(s)
	for i, w := range words {
		words[i] = convert(w)
	}
	return strings.Join(words, sep)
}
