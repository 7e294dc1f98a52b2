package query

import (
	"unicode"
	"unicode/utf8"

	"github.com/chriscorrea/voca/internal/casing"
	"github.com/chriscorrea/voca/internal/chop"
	"github.com/chriscorrea/voca/internal/split"
)

// A subject has a given shape when converting it to that shape changes
// nothing. The empty string has every shape except title case.

// IsCamelCase reports whether subject is written in camelCase.
func IsCamelCase(subject string) bool { return subject == casing.Camel(subject) }

// IsPascalCase reports whether subject is written in PascalCase.
func IsPascalCase(subject string) bool { return subject == casing.Pascal(subject) }

// IsSnakeCase reports whether subject is written in snake_case.
func IsSnakeCase(subject string) bool { return subject == casing.Snake(subject) }

// IsShoutySnakeCase reports whether subject is written in SHOUTY_SNAKE_CASE.
func IsShoutySnakeCase(subject string) bool { return subject == casing.ShoutySnake(subject) }

// IsKebabCase reports whether subject is written in kebab-case.
func IsKebabCase(subject string) bool { return subject == casing.Kebab(subject) }

// IsShoutyKebabCase reports whether subject is written in SHOUTY-KEBAB-CASE.
func IsShoutyKebabCase(subject string) bool { return subject == casing.ShoutyKebab(subject) }

// IsTrainCase reports whether subject is written in Train-Case.
func IsTrainCase(subject string) bool { return subject == casing.Train(subject) }

// IsCapitalize reports whether only the first character of subject is
// upper case.
func IsCapitalize(subject string) bool { return subject == casing.Capitalize(subject, true) }

// IsDecapitalize reports whether subject has no upper-case characters.
func IsDecapitalize(subject string) bool { return subject == casing.Decapitalize(subject, true) }

// IsLowerCase reports whether subject is entirely lower case.
func IsLowerCase(subject string) bool { return subject == casing.Lower(subject) }

// IsUpperCase reports whether subject is entirely upper case.
func IsUpperCase(subject string) bool { return subject == casing.Upper(subject) }

// IsLowerFirst reports whether the first character of subject is not
// upper case.
func IsLowerFirst(subject string) bool { return subject == casing.LowerFirst(subject) }

// IsUpperFirst reports whether the first character of subject is not
// lower case.
func IsUpperFirst(subject string) bool { return subject == casing.UpperFirst(subject) }

// IsForeignKey reports whether subject is already a foreign key name such
// as "foo_bar_id".
func IsForeignKey(subject string) bool { return subject == chop.ForeignKey(subject) }

// IsTitle reports whether subject has words and none of them starts with a
// lower-case letter.
func IsTitle(subject string) bool {
	words := split.Words(subject)
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		if r, _ := utf8.DecodeRuneInString(w); unicode.IsLower(r) {
			return false
		}
	}
	return true
}
