package strip

import "strings"

type mode int

const (
	modeOutput mode = iota
	modeHTML
	modeExclamation
	modeComment
)

func (m mode) String() string {
	switch m {
	case modeOutput:
		return "output"
	case modeHTML:
		return "html"
	case modeExclamation:
		return "exclamation"
	case modeComment:
		return "comment"
	default:
		return "unknown"
	}
}

// state is the whole memory of the tag stripper. depth counts stray '<'
// seen inside a tag, quote holds the open attribute quote, if any.
type state struct {
	mode  mode
	depth int
	quote string
}

// window is the view step gets of the input: the grapheme at pos plus
// whatever lies before and after it.
type window struct {
	graphemes []string
	pos       int
}

func (w window) current() string {
	return w.graphemes[w.pos]
}

// next returns the grapheme right after the current one, or "".
func (w window) next() string {
	if w.pos+1 < len(w.graphemes) {
		return w.graphemes[w.pos+1]
	}
	return ""
}

// behind returns up to n graphemes that precede the current one.
func (w window) behind(n int) string {
	return strings.Join(w.graphemes[max(w.pos-n, 0):w.pos], "")
}

// step consumes the current grapheme of w and reports the next state and
// whether the grapheme belongs to the output.
func (s state) step(w window) (state, bool) {
	switch g := w.current(); g {
	case "<":
		switch {
		case s.quote != "":
			return s, false
		case w.next() == " ":
			return s, s.mode == modeOutput
		case s.mode == modeOutput:
			s.mode = modeHTML
			return s, false
		case s.mode == modeHTML:
			s.depth++
			return s, false
		}

	case "!":
		if s.mode == modeHTML && w.behind(1) == "<" {
			s.mode = modeExclamation
			return s, false
		}

	case "-":
		if s.mode == modeExclamation && w.behind(2) == "!-" {
			s.mode = modeComment
			return s, false
		}

	case `"`, "'":
		if s.mode == modeHTML {
			switch s.quote {
			case g:
				s.quote = ""
			case "":
				s.quote = g
			}
			return s, false
		}

	case "e", "E":
		if s.mode == modeExclamation && strings.EqualFold(w.behind(6)+g, "doctype") {
			s.mode = modeHTML
			return s, false
		}

	case ">":
		switch {
		case s.depth > 0:
			s.depth--
			return s, false
		case s.quote != "":
			return s, false
		case s.mode == modeHTML, s.mode == modeExclamation:
			s.mode = modeOutput
			return s, false
		case s.mode == modeComment && w.behind(2) == "--":
			s.mode = modeOutput
			return s, false
		}
	}

	return s, s.mode == modeOutput
}
