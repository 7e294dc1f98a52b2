package chop

import (
	"strings"

	"github.com/chriscorrea/voca/internal/casing"
	"github.com/chriscorrea/voca/internal/index"
	"github.com/chriscorrea/voca/internal/split"
)

// ForeignKey turns a class name into a foreign key column name:
// "Test::FooBar" becomes "foo_bar_id".
func ForeignKey(subject string) string {
	if i := strings.LastIndex(subject, "::"); i >= 0 {
		subject = subject[i+len("::"):]
	}
	key := casing.Snake(subject)
	if key == "" || strings.HasSuffix(key, "_id") {
		return key
	}
	return key + "_id"
}

// After returns what follows the first occurrence of search.
func After(subject, search string) string {
	return after(subject, search, index.IndexOf)
}

// AfterLast returns what follows the last occurrence of search.
func AfterLast(subject, search string) string {
	return after(subject, search, index.LastIndexOf)
}

// Before returns what precedes the first occurrence of search.
func Before(subject, search string) string {
	return before(subject, search, index.IndexOf)
}

// BeforeLast returns what precedes the last occurrence of search.
func BeforeLast(subject, search string) string {
	return before(subject, search, index.LastIndexOf)
}

type locator func(subject, search string, from int) int

func after(subject, search string, locate locator) string {
	if subject == "" || search == "" {
		return ""
	}
	pos := locate(subject, search, 0)
	if pos < 0 {
		return ""
	}
	return Slice(subject, pos+len(split.Clusters(search)), 0)
}

func before(subject, search string, locate locator) string {
	if subject == "" || search == "" {
		return ""
	}
	pos := locate(subject, search, 0)
	if pos < 0 {
		return ""
	}
	return First(subject, pos)
}
