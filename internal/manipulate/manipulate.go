// Package manipulate transforms text: padding, trimming, inserting,
// replacing, reversing, wrapping and transliterating.
//
// Positions and widths are grapheme units, and out-of-range values are
// clamped the same way the chop package clamps them.
//
// Usage Example:
//
//	manipulate.Pad("bird", 9, "-=:=-")        // "-=bird-=:"
//	manipulate.Splice("test", -2, 1, "=")     // "te=t"
//	manipulate.Slugify("Italian cappuccino")  // "italian-cappuccino"
package manipulate

import (
	"strings"
	"unicode"

	"github.com/chriscorrea/voca/internal/split"
)

const defaultPad = " "

// Pad centers subject in a field of length graphemes. The left side gets
// the smaller half of the padding when it does not split evenly.
func Pad(subject string, length int, pad string) string {
	diff := length - len(split.Clusters(subject))
	if diff <= 0 {
		return subject
	}
	left := diff / 2
	return fill(pad, left) + subject + fill(pad, diff-left)
}

// PadLeft pads subject on the left to length graphemes.
func PadLeft(subject string, length int, pad string) string {
	return fill(pad, length-len(split.Clusters(subject))) + subject
}

// PadRight pads subject on the right to length graphemes.
func PadRight(subject string, length int, pad string) string {
	return subject + fill(pad, length-len(split.Clusters(subject)))
}

// Zfill pads subject on the left with zeros to length graphemes.
func Zfill(subject string, length int) string {
	return PadLeft(subject, length, "0")
}

// fill repeats pad until it is n graphemes long, cutting the last copy.
func fill(pad string, n int) string {
	if n <= 0 {
		return ""
	}
	if pad == "" {
		pad = defaultPad
	}
	graphemes := split.Clusters(pad)
	var b strings.Builder
	for i := range n {
		b.WriteString(graphemes[i%len(graphemes)])
	}
	return b.String()
}

// Repeat returns subject repeated times times.
func Repeat(subject string, times int) string {
	if times <= 0 {
		return ""
	}
	return strings.Repeat(subject, times)
}

// Insert puts toInsert before the grapheme at position. A position past the
// end appends.
func Insert(subject, toInsert string, position int) string {
	if toInsert == "" {
		return subject
	}
	graphemes := split.Clusters(subject)
	position = max(0, min(position, len(graphemes)))
	return strings.Join(graphemes[:position], "") + toInsert + strings.Join(graphemes[position:], "")
}

// Splice removes deleteCount graphemes starting at start and puts toAdd in
// their place. A negative start counts from the end.
func Splice(subject string, start, deleteCount int, toAdd string) string {
	graphemes := split.Clusters(subject)
	n := len(graphemes)
	if start < 0 {
		start = max(n+start, 0)
	}
	start = min(start, n)
	end := start + min(max(deleteCount, 0), n-start)
	return strings.Join(graphemes[:start], "") + toAdd + strings.Join(graphemes[end:], "")
}

// Reverse reverses the runes of subject. Combining marks end up on the
// wrong base character; use ReverseGrapheme to keep them attached.
func Reverse(subject string) string {
	r := []rune(subject)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// ReverseGrapheme reverses the grapheme clusters of subject.
func ReverseGrapheme(subject string) string {
	graphemes := split.Clusters(subject)
	var b strings.Builder
	b.Grow(len(subject))
	for i := len(graphemes) - 1; i >= 0; i-- {
		b.WriteString(graphemes[i])
	}
	return b.String()
}

// Trim removes the characters of cutset from both ends of subject. An empty
// cutset trims whitespace.
func Trim(subject, cutset string) string {
	if cutset == "" {
		return strings.TrimSpace(subject)
	}
	return strings.Trim(subject, cutset)
}

// TrimLeft removes the characters of cutset from the start of subject.
func TrimLeft(subject, cutset string) string {
	if cutset == "" {
		return strings.TrimLeftFunc(subject, unicode.IsSpace)
	}
	return strings.TrimLeft(subject, cutset)
}

// TrimRight removes the characters of cutset from the end of subject.
func TrimRight(subject, cutset string) string {
	if cutset == "" {
		return strings.TrimRightFunc(subject, unicode.IsSpace)
	}
	return strings.TrimRight(subject, cutset)
}

// Tr translates characters: every rune of from becomes the rune at the same
// position in to. Runes of from with no counterpart in to are deleted.
func Tr(subject, from, to string) string {
	if from == "" {
		return subject
	}
	src, dst := []rune(from), []rune(to)
	table := make(map[rune]rune, len(src))
	for i, r := range src {
		if _, ok := table[r]; ok {
			continue
		}
		if i < len(dst) {
			table[r] = dst[i]
		} else {
			table[r] = -1
		}
	}
	return strings.Map(func(r rune) rune {
		if m, ok := table[r]; ok {
			return m
		}
		return r
	}, subject)
}

// Finish appends suffix unless subject already ends with it.
func Finish(subject, suffix string) string {
	if strings.HasSuffix(subject, suffix) {
		return subject
	}
	return subject + suffix
}

// Start prepends prefix unless subject already starts with it.
func Start(subject, prefix string) string {
	if strings.HasPrefix(subject, prefix) {
		return subject
	}
	return prefix + subject
}

// ExpandTabs replaces every tab with tabSize spaces.
func ExpandTabs(subject string, tabSize int) string {
	return strings.ReplaceAll(subject, "\t", strings.Repeat(" ", max(tabSize, 0)))
}

// ExpandSpaces replaces every run of tabSize spaces with a tab. A tabSize
// below 1 leaves subject unchanged.
func ExpandSpaces(subject string, tabSize int) string {
	if tabSize < 1 {
		return subject
	}
	return strings.ReplaceAll(subject, strings.Repeat(" ", tabSize), "\t")
}
