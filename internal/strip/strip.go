// Package strip removes markup and byte order marks from text.
//
// Tags walks the grapheme clusters of its input through a small automaton.
// Text outside of tags is kept, everything between a tag opener and its
// closing angle bracket is dropped, and so are comments and doctype
// declarations. Quoted attribute values may contain angle brackets.
//
// Usage Example:
//
//	strip.Tags(`<span><a href="#">Summer</a> is nice</span>`) // "Summer is nice"
//	strip.BOM("\ufeffsummertime sadness")                    // "summertime sadness"
package strip

import (
	"strings"

	"github.com/chriscorrea/voca/internal/split"
)

const byteOrderMark = "\ufeff"

// BOM removes a single leading byte order mark.
func BOM(s string) string {
	return strings.TrimPrefix(s, byteOrderMark)
}

// Tags removes HTML tags, comments and doctype declarations from s. Markup
// left open at the end of s swallows the rest of the input.
func Tags(s string) string {
	graphemes := split.Clusters(s)
	if len(graphemes) == 0 {
		return ""
	}

	var out strings.Builder
	out.Grow(len(s))

	st := state{}
	for i := range graphemes {
		var emit bool
		st, emit = st.step(window{graphemes: graphemes, pos: i})
		if emit {
			out.WriteString(graphemes[i])
		}
	}
	return out.String()
}
