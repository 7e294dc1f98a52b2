package count_test

import (
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"

	"github.com/chriscorrea/voca/internal/count"
)

func TestChars(t *testing.T) {
	assert.Equal(t, 0, count.Chars(""))
	assert.Equal(t, 4, count.Chars("rain"))
	assert.Equal(t, 4, count.Chars("błąd"))
	assert.Equal(t, 37, count.Chars("Die Schildkröte fliegt über das Floß."))
	assert.Equal(t, 18, count.Chars("Как слышно, приём!"))
	assert.Equal(t, 5, count.Chars("cafe\u0301"))
}

func TestGraphemes(t *testing.T) {
	assert.Equal(t, 0, count.Graphemes(""))
	assert.Equal(t, 4, count.Graphemes("rain"))
	assert.Equal(t, 4, count.Graphemes("błąd"))
	assert.Equal(t, 3, count.Graphemes("a\u0310e\u0301o\u0308\u0332"))
	assert.Equal(t, 37, count.Graphemes("Die Schildkröte fliegt über das Floß."))
	assert.Equal(t, 4, count.Graphemes("cafe\u0301"))
}

func TestGraphemesNeverExceedChars(t *testing.T) {
	faker := gofakeit.New(7)
	samples := []string{"cafe\u0301", "a\u0310e\u0301o\u0308\u0332", "👩\u200d👩\u200d👧"}
	for range 50 {
		samples = append(samples, faker.Sentence(12))
	}

	for _, s := range samples {
		assert.LessOrEqual(t, count.Graphemes(s), count.Chars(s), "Graphemes(%q)", s)
		assert.Equal(t, utf8.RuneCountInString(s), count.Chars(s))
	}
}

func TestSubstrings(t *testing.T) {
	tests := []struct {
		subject, substring string
		want               int
	}{
		{"", "", 0},
		{"******", "*", 6},
		{"******", "**", 3},
		{"******", "**-", 0},
		{"abc", "", 0},
		{"rain", "rain", 1},
		{"Die Schildkröte fliegt über das Floß.", "über", 1},
		{"bad boys, bad boys whatcha gonna do?", "boys", 2},
		{"Cafe\u0301 del Mar", "Caf\u00e9", 1},
		{"Cafe\u0301 del Mar Caf\u00e9 del Mar cafe\u0301", "Caf\u00e9", 2},
		{"every dog has its day", "cat", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, count.Substrings(tt.subject, tt.substring), "Substrings(%q, %q)", tt.subject, tt.substring)
	}
}

func TestWhere(t *testing.T) {
	isAlpha := func(g string) bool {
		r, _ := utf8.DecodeRuneInString(g)
		return unicode.IsLetter(r)
	}
	isDigit := func(g string) bool {
		r, _ := utf8.DecodeRuneInString(g)
		return unicode.IsDigit(r)
	}

	assert.Equal(t, 0, count.Where("", isAlpha))
	assert.Equal(t, 4, count.Where("hola!", isAlpha))
	assert.Equal(t, 4, count.Where("cafe\u0301", isAlpha))
	assert.Equal(t, 3, count.Where("2022 and 3", func(g string) bool { return g == " " || g == "3" }))
	assert.Equal(t, 5, count.Where("2022 and 3", isDigit))
}

func TestWords(t *testing.T) {
	tests := []struct {
		subject, sep string
		want         int
	}{
		{"", "", 0},
		{"ab c", "", 2},
		{"Gravity - can cross dimensions!", "", 4},
		{"GravityCanCrossDimensions", "", 4},
		{"Cafe\u0301-del-Mar-andBossaNova1", "-", 4},
		{"Język /polski wywodzi się z` języka` praindoeuropejskiego za**pośrednictwem+języka-prasłowiańskiego.", "", 11},
		{"Στις--αρχές** (του) 21ου, αιώνα!'", "", 5},
		{"Гравитация-Притягивает-ВСЕ!!", "-", 3},
		{"a,b,", ",", 2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, count.Words(tt.subject, tt.sep), "Words(%q, %q)", tt.subject, tt.sep)
	}
}

func TestUniqueWords(t *testing.T) {
	tests := []struct {
		subject, sep string
		want         int
	}{
		{"", "", 0},
		{"hello world", "", 2},
		{"hello world hello", "", 2},
		{"Hello hello", "", 2},
		{"a-b-a-c", "-", 3},
		{"rain, dear rain, rain", ", ", 2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, count.UniqueWords(tt.subject, tt.sep), "UniqueWords(%q, %q)", tt.subject, tt.sep)
	}
}

func BenchmarkGraphemes(b *testing.B) {
	s := gofakeit.New(1).Sentence(40)
	for range b.N {
		_ = count.Graphemes(s)
	}
}
