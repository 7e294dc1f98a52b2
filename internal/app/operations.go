package app

import (
	"context"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/chriscorrea/voca/internal/casing"
	"github.com/chriscorrea/voca/internal/chop"
	"github.com/chriscorrea/voca/internal/count"
	"github.com/chriscorrea/voca/internal/escape"
	"github.com/chriscorrea/voca/internal/index"
	"github.com/chriscorrea/voca/internal/manipulate"
	"github.com/chriscorrea/voca/internal/query"
	"github.com/chriscorrea/voca/internal/split"
	"github.com/chriscorrea/voca/internal/strip"
)

func str(name, def, usage string) Param {
	return Param{Name: name, Kind: String, Default: def, Usage: usage}
}

func num(name string, def int, usage string) Param {
	return Param{Name: name, Kind: Int, Default: def, Usage: usage}
}

func flag(name string, def bool, usage string) Param {
	return Param{Name: name, Kind: Bool, Default: def, Usage: usage}
}

// unary wraps a function of the subject alone.
func unary[T any](group, name, short string, fn func(string) T) Operation {
	return Operation{
		Name:  name,
		Group: group,
		Short: short,
		Apply: func(_ context.Context, subject string, _ Args) (any, error) {
			return fn(subject), nil
		},
	}
}

// withArgs wraps a function that reads its parameters from Args.
func withArgs[T any](group, name, short string, params []Param, fn func(string, Args) T) Operation {
	return Operation{
		Name:   name,
		Group:  group,
		Short:  short,
		Params: params,
		Apply: func(_ context.Context, subject string, args Args) (any, error) {
			return fn(subject, args), nil
		},
	}
}

func builtinOperations() []Operation {
	var ops []Operation
	ops = append(ops, splitOperations()...)
	ops = append(ops, chopOperations()...)
	ops = append(ops, caseOperations()...)
	ops = append(ops, countOperations()...)
	ops = append(ops, escapeOperations()...)
	ops = append(ops, indexOperations()...)
	ops = append(ops, manipulateOperations()...)
	ops = append(ops, queryOperations()...)
	ops = append(ops, stripOperations()...)
	return ops
}

func splitOperations() []Operation {
	const g = "split"
	return []Operation{
		unary(g, "chars", "Split into Unicode scalar values", split.Chars),
		unary(g, "graphemes", "Split into grapheme clusters", split.Graphemes),
		unary(g, "code-points", "List UTF-16 code units", split.CodePoints),
		unary(g, "words", "Split into words, including camelCase humps", split.Words),
		withArgs(g, "split", "Split on a separator",
			[]Param{str("sep", "", "separator; empty keeps the subject whole")},
			func(s string, a Args) []string { return split.Split(s, a.String("sep")) }),
	}
}

func chopOperations() []Operation {
	const g = "chop"
	pos := []Param{num("position", 0, "grapheme position")}
	search := []Param{str("search", "", "substring to look for")}
	return []Operation{
		withArgs(g, "char-at", "Return the grapheme at a position", pos,
			func(s string, a Args) string { return chop.CharAt(s, a.Int("position")) }),
		withArgs(g, "grapheme-at", "Return the grapheme at a position", pos,
			func(s string, a Args) string { return chop.GraphemeAt(s, a.Int("position")) }),
		withArgs(g, "code-point-at", "Return the UTF-16 code units of the grapheme at a position", pos,
			func(s string, a Args) []uint16 { return chop.CodePointAt(s, a.Int("position")) }),
		withArgs(g, "first", "Return the first graphemes",
			[]Param{num("length", 1, "number of graphemes")},
			func(s string, a Args) string { return chop.First(s, a.Int("length")) }),
		withArgs(g, "last", "Return the last graphemes",
			[]Param{num("length", 1, "number of graphemes")},
			func(s string, a Args) string { return chop.Last(s, a.Int("length")) }),
		withArgs(g, "slice", "Extract graphemes between start and end; negative values count from the end",
			[]Param{num("start", 0, "first grapheme"), num("end", 0, "grapheme after the last; 0 is the end")},
			func(s string, a Args) string { return chop.Slice(s, a.Int("start"), a.Int("end")) }),
		withArgs(g, "substr", "Extract length graphemes from start",
			[]Param{num("start", 0, "first grapheme"), num("length", 0, "number of graphemes; 0 is the rest")},
			func(s string, a Args) string { return chop.Substr(s, a.Int("start"), a.Int("length")) }),
		withArgs(g, "substring", "Extract graphemes between start and end",
			[]Param{num("start", 0, "first grapheme"), num("end", 0, "grapheme after the last; 0 is the end")},
			func(s string, a Args) string { return chop.Substring(s, a.Int("start"), a.Int("end")) }),
		withArgs(g, "truncate", "Cut to a length, suffix included",
			[]Param{num("length", 0, "result length in graphemes"), str("suffix", "...", "text appended when cut")},
			func(s string, a Args) string { return chop.Truncate(s, a.Int("length"), a.String("suffix")) }),
		withArgs(g, "prune", "Cut at a word boundary so the result fits a length",
			[]Param{num("length", 0, "result length in graphemes"), str("suffix", "...", "text appended when cut")},
			func(s string, a Args) string { return chop.Prune(s, a.Int("length"), a.String("suffix")) }),
		unary(g, "min", "Return the smallest code point", chop.Min),
		unary(g, "max", "Return the largest code point", chop.Max),
		unary(g, "foreign-key", "Convert to a foreign key column name", chop.ForeignKey),
		withArgs(g, "after", "Return what follows the first occurrence of search", search,
			func(s string, a Args) string { return chop.After(s, a.String("search")) }),
		withArgs(g, "after-last", "Return what follows the last occurrence of search", search,
			func(s string, a Args) string { return chop.AfterLast(s, a.String("search")) }),
		withArgs(g, "before", "Return what precedes the first occurrence of search", search,
			func(s string, a Args) string { return chop.Before(s, a.String("search")) }),
		withArgs(g, "before-last", "Return what precedes the last occurrence of search", search,
			func(s string, a Args) string { return chop.BeforeLast(s, a.String("search")) }),
	}
}

func caseOperations() []Operation {
	const g = "case"
	rest := []Param{flag("rest-to-lower", false, "lowercase everything after the first letter")}
	return []Operation{
		unary(g, "lower", "Lowercase", casing.Lower),
		unary(g, "upper", "Uppercase", casing.Upper),
		withArgs(g, "capitalize", "Uppercase the first letter", rest,
			func(s string, a Args) string { return casing.Capitalize(s, a.Bool("rest-to-lower")) }),
		withArgs(g, "decapitalize", "Lowercase the first letter", rest,
			func(s string, a Args) string { return casing.Decapitalize(s, a.Bool("rest-to-lower")) }),
		unary(g, "upper-first", "Uppercase the first letter only", casing.UpperFirst),
		unary(g, "lower-first", "Lowercase the first letter only", casing.LowerFirst),
		unary(g, "swap", "Swap the case of every letter", casing.Swap),
		unary(g, "camel", "Convert to camelCase", casing.Camel),
		unary(g, "pascal", "Convert to PascalCase", casing.Pascal),
		unary(g, "snake", "Convert to snake_case", casing.Snake),
		unary(g, "shouty-snake", "Convert to SHOUTY_SNAKE_CASE", casing.ShoutySnake),
		unary(g, "kebab", "Convert to kebab-case", casing.Kebab),
		unary(g, "shouty-kebab", "Convert to SHOUTY-KEBAB-CASE", casing.ShoutyKebab),
		unary(g, "train", "Convert to Train-Case", casing.Train),
		unary(g, "title", "Convert to Title Case", casing.Title),
	}
}

// graphemeClasses are the predicates count-where accepts. A grapheme
// belongs to a class when its first rune does.
var graphemeClasses = map[string]func(rune) bool{
	"letter": unicode.IsLetter,
	"digit":  unicode.IsDigit,
	"upper":  unicode.IsUpper,
	"lower":  unicode.IsLower,
	"space":  unicode.IsSpace,
	"punct":  unicode.IsPunct,
}

func countOperations() []Operation {
	const g = "count"
	return []Operation{
		{
			Name:   "count",
			Group:  g,
			Short:  "Count characters, graphemes, words or tokens",
			Params: []Param{str("by", count.ByCharacters.String(), "unit: characters, graphemes, words or tokens")},
			Apply: func(_ context.Context, s string, a Args) (any, error) {
				method, err := count.ParseMethod(a.String("by"))
				if err != nil {
					return nil, err
				}
				counter, err := count.NewCounter(method)
				if err != nil {
					return nil, fmt.Errorf("failed to create counter: %w", err)
				}
				return counter.Count(s), nil
			},
		},
		withArgs(g, "count-substrings", "Count occurrences of a substring",
			[]Param{str("search", "", "substring to count")},
			func(s string, a Args) int { return count.Substrings(s, a.String("search")) }),
		withArgs(g, "count-words", "Count words",
			[]Param{str("sep", "", "separator; empty finds words by their boundaries")},
			func(s string, a Args) int { return count.Words(s, a.String("sep")) }),
		withArgs(g, "count-unique-words", "Count distinct words",
			[]Param{str("sep", "", "separator; empty finds words by their boundaries")},
			func(s string, a Args) int { return count.UniqueWords(s, a.String("sep")) }),
		{
			Name:   "count-where",
			Group:  g,
			Short:  "Count graphemes of a character class",
			Params: []Param{str("class", "letter", "letter, digit, upper, lower, space or punct")},
			Apply: func(_ context.Context, s string, a Args) (any, error) {
				class, ok := graphemeClasses[a.String("class")]
				if !ok {
					return nil, fmt.Errorf("unknown character class %q", a.String("class"))
				}
				return count.Where(s, func(grapheme string) bool {
					r, _ := utf8.DecodeRuneInString(grapheme)
					return class(r)
				}), nil
			},
		},
		{
			Name:   "token-prefix",
			Group:  g,
			Short:  "Keep the longest prefix that fits a token budget",
			Params: []Param{num("max-tokens", 100, "token budget (cl100k_base)")},
			Apply: func(_ context.Context, s string, a Args) (any, error) {
				tc, err := count.NewTokenCounter()
				if err != nil {
					return nil, fmt.Errorf("failed to create token counter: %w", err)
				}
				return tc.Prefix(s, a.Int("max-tokens")), nil
			},
		},
	}
}

func escapeOperations() []Operation {
	const g = "escape"
	return []Operation{
		unary(g, "escape-html", "Escape HTML special characters", escape.HTML),
		unary(g, "unescape-html", "Decode HTML entities", escape.UnescapeHTML),
		unary(g, "escape-regexp", "Escape regular expression special characters", escape.Regexp),
	}
}

func indexOperations() []Operation {
	const g = "index"
	searchFrom := []Param{str("search", "", "substring to look for"), num("from", 0, "grapheme to start at")}
	return []Operation{
		withArgs(g, "index-of", "Position of the first occurrence, relative to from", searchFrom,
			func(s string, a Args) int { return index.IndexOf(s, a.String("search"), a.Int("from")) }),
		withArgs(g, "last-index-of", "Position of the last occurrence, relative to from", searchFrom,
			func(s string, a Args) int { return index.LastIndexOf(s, a.String("search"), a.Int("from")) }),
		withArgs(g, "index-all", "Positions of every grapheme found in chars",
			[]Param{str("chars", "", "graphemes to look for"), num("from", 0, "grapheme to start at")},
			func(s string, a Args) []int { return index.IndexAll(s, a.String("chars"), a.Int("from")) }),
		withArgs(g, "search", "Position of the first regular expression match",
			[]Param{str("pattern", "", "regular expression"), num("from", 0, "grapheme to start at")},
			func(s string, a Args) int { return index.Search(s, a.String("pattern"), a.Int("from")) }),
		withArgs(g, "occurrences", "Grapheme ranges of every occurrence",
			[]Param{str("search", "", "substring to look for")},
			func(s string, a Args) []index.Range { return index.Occurrences(s, a.String("search")) }),
	}
}

func manipulateOperations() []Operation {
	const g = "manipulate"
	padding := []Param{num("length", 0, "result length in graphemes"), str("pad", " ", "padding graphemes")}
	cutset := []Param{str("cutset", "", "graphemes to remove; empty is whitespace")}
	searchReplace := []Param{str("search", "", "substring to replace"), str("replacement", "", "replacement text")}
	tab := []Param{num("tab-size", 4, "spaces per tab")}
	return []Operation{
		withArgs(g, "pad", "Pad both sides to a length", padding,
			func(s string, a Args) string { return manipulate.Pad(s, a.Int("length"), a.String("pad")) }),
		withArgs(g, "pad-left", "Pad the left side to a length", padding,
			func(s string, a Args) string { return manipulate.PadLeft(s, a.Int("length"), a.String("pad")) }),
		withArgs(g, "pad-right", "Pad the right side to a length", padding,
			func(s string, a Args) string { return manipulate.PadRight(s, a.Int("length"), a.String("pad")) }),
		withArgs(g, "zfill", "Pad with leading zeros",
			[]Param{num("length", 0, "result length in graphemes")},
			func(s string, a Args) string { return manipulate.Zfill(s, a.Int("length")) }),
		withArgs(g, "repeat", "Repeat the subject",
			[]Param{num("times", 1, "number of copies")},
			func(s string, a Args) string { return manipulate.Repeat(s, a.Int("times")) }),
		withArgs(g, "insert", "Insert text at a grapheme position",
			[]Param{str("value", "", "text to insert"), num("position", 0, "grapheme position")},
			func(s string, a Args) string { return manipulate.Insert(s, a.String("value"), a.Int("position")) }),
		withArgs(g, "splice", "Remove graphemes and insert text in their place",
			[]Param{num("start", 0, "first grapheme; negative counts from the end"), num("delete-count", 0, "graphemes to remove"), str("value", "", "text to insert")},
			func(s string, a Args) string {
				return manipulate.Splice(s, a.Int("start"), a.Int("delete-count"), a.String("value"))
			}),
		unary(g, "reverse", "Reverse the Unicode scalar values", manipulate.Reverse),
		unary(g, "reverse-grapheme", "Reverse the grapheme clusters", manipulate.ReverseGrapheme),
		withArgs(g, "trim", "Remove graphemes from both ends", cutset,
			func(s string, a Args) string { return manipulate.Trim(s, a.String("cutset")) }),
		withArgs(g, "trim-left", "Remove graphemes from the start", cutset,
			func(s string, a Args) string { return manipulate.TrimLeft(s, a.String("cutset")) }),
		withArgs(g, "trim-right", "Remove graphemes from the end", cutset,
			func(s string, a Args) string { return manipulate.TrimRight(s, a.String("cutset")) }),
		withArgs(g, "tr", "Translate characters; extra from characters are deleted",
			[]Param{str("from", "", "characters to translate"), str("to", "", "replacement characters")},
			func(s string, a Args) string { return manipulate.Tr(s, a.String("from"), a.String("to")) }),
		withArgs(g, "finish", "Append a suffix unless already present",
			[]Param{str("suffix", "", "suffix")},
			func(s string, a Args) string { return manipulate.Finish(s, a.String("suffix")) }),
		withArgs(g, "start", "Prepend a prefix unless already present",
			[]Param{str("prefix", "", "prefix")},
			func(s string, a Args) string { return manipulate.Start(s, a.String("prefix")) }),
		withArgs(g, "expand-tabs", "Replace tabs with spaces", tab,
			func(s string, a Args) string { return manipulate.ExpandTabs(s, a.Int("tab-size")) }),
		withArgs(g, "expand-spaces", "Replace runs of spaces with tabs", tab,
			func(s string, a Args) string { return manipulate.ExpandSpaces(s, a.Int("tab-size")) }),
		unary(g, "latinise", "Remove diacritics and transliterate to ASCII", manipulate.Latinise),
		unary(g, "slugify", "Convert to a URL slug", manipulate.Slugify),
		withArgs(g, "replace", "Replace the first occurrence", searchReplace,
			func(s string, a Args) string {
				return manipulate.Replace(s, a.String("search"), a.String("replacement"))
			}),
		withArgs(g, "replace-all", "Replace every occurrence", searchReplace,
			func(s string, a Args) string {
				return manipulate.ReplaceAll(s, a.String("search"), a.String("replacement"))
			}),
		withArgs(g, "word-wrap", "Wrap words to a line width",
			[]Param{num("width", 75, "line width in graphemes; below 1 disables wrapping"), str("newline", "\n", "line separator"), str("indent", "", "prefix for every line")},
			func(s string, a Args) string {
				return manipulate.WordWrap(s, a.Int("width"), a.String("newline"), a.String("indent"))
			}),
	}
}

func queryOperations() []Operation {
	const g = "query"
	searchFrom := []Param{str("search", "", "text to look for"), num("from", 0, "grapheme to start at")}
	return []Operation{
		withArgs(g, "starts-with", "Report whether the subject starts with prefix",
			[]Param{str("prefix", "", "prefix")},
			func(s string, a Args) bool { return query.StartsWith(s, a.String("prefix")) }),
		withArgs(g, "ends-with", "Report whether the subject ends with suffix",
			[]Param{str("suffix", "", "suffix")},
			func(s string, a Args) bool { return query.EndsWith(s, a.String("suffix")) }),
		withArgs(g, "includes", "Report whether search occurs at or after from", searchFrom,
			func(s string, a Args) bool { return query.Includes(s, a.String("search"), a.Int("from")) }),
		withArgs(g, "matches", "Report whether a regular expression matches at or after from",
			[]Param{str("pattern", "", "regular expression"), num("from", 0, "grapheme to start at")},
			func(s string, a Args) bool { return query.Matches(s, a.String("pattern"), a.Int("from")) }),
		withArgs(g, "query", "Report whether search appears as a subsequence", searchFrom,
			func(s string, a Args) bool { return query.Query(s, a.String("search"), a.Int("from")) }),
		unary(g, "is-alpha", "Report whether the subject is letters only", query.IsAlpha),
		unary(g, "is-alpha-digit", "Report whether the subject is letters and digits only", query.IsAlphaDigit),
		unary(g, "is-blank", "Report whether the subject is empty or whitespace", query.IsBlank),
		unary(g, "is-digit", "Report whether the subject is ASCII digits only", query.IsDigit),
		unary(g, "is-empty", "Report whether the subject is empty", query.IsEmpty),
		unary(g, "is-numeric", "Report whether the subject is a number", query.IsNumeric),
		unary(g, "is-camel-case", "Report whether the subject is camelCase", query.IsCamelCase),
		unary(g, "is-pascal-case", "Report whether the subject is PascalCase", query.IsPascalCase),
		unary(g, "is-snake-case", "Report whether the subject is snake_case", query.IsSnakeCase),
		unary(g, "is-shouty-snake-case", "Report whether the subject is SHOUTY_SNAKE_CASE", query.IsShoutySnakeCase),
		unary(g, "is-kebab-case", "Report whether the subject is kebab-case", query.IsKebabCase),
		unary(g, "is-shouty-kebab-case", "Report whether the subject is SHOUTY-KEBAB-CASE", query.IsShoutyKebabCase),
		unary(g, "is-train-case", "Report whether the subject is Train-Case", query.IsTrainCase),
		unary(g, "is-title", "Report whether every word starts uppercase", query.IsTitle),
		unary(g, "is-capitalize", "Report whether the subject is capitalized", query.IsCapitalize),
		unary(g, "is-decapitalize", "Report whether the subject is decapitalized", query.IsDecapitalize),
		unary(g, "is-lower-case", "Report whether the subject is lowercase", query.IsLowerCase),
		unary(g, "is-upper-case", "Report whether the subject is uppercase", query.IsUpperCase),
		unary(g, "is-lower-first", "Report whether the first letter is lowercase", query.IsLowerFirst),
		unary(g, "is-upper-first", "Report whether the first letter is uppercase", query.IsUpperFirst),
		unary(g, "is-foreign-key", "Report whether the subject is a foreign key name", query.IsForeignKey),
	}
}

func stripOperations() []Operation {
	const g = "strip"
	return []Operation{
		unary(g, "strip-tags", "Remove HTML tags and comments", strip.Tags),
		unary(g, "strip-bom", "Remove a leading byte order mark", strip.BOM),
	}
}
