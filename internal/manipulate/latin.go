package manipulate

import (
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonSlug     *regexp.Regexp
	nonSlugOnce sync.Once
)

// nonSlugPattern returns the compiled pattern for runs of characters that
// cannot appear in a slug.
func nonSlugPattern() *regexp.Regexp {
	nonSlugOnce.Do(func() {
		nonSlug = regexp.MustCompile(`[^a-z0-9]+`)
	})
	return nonSlug
}

// Latinise removes diacritics and transliterates everything else to ASCII:
// "Zażółć" becomes "Zazolc" and "как" becomes "kak".
func Latinise(subject string) string {
	if subject == "" {
		return ""
	}
	// a transformer chain holds state, so it is built per call
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(stripMarks, subject)
	if err != nil {
		plain = subject
	}
	return unidecode.Unidecode(plain)
}

// Slugify turns subject into a lower-case, hyphen-separated ASCII slug
// suitable for URLs.
func Slugify(subject string) string {
	latin := strings.ReplaceAll(Latinise(subject), "'", "")
	slug := nonSlugPattern().ReplaceAllString(strings.ToLower(latin), "-")
	return strings.Trim(slug, "-")
}
