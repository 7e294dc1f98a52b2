package query

import (
	"regexp"
	"sync"
)

// numberPatterns holds compiled regex patterns for number detection
type numberPatterns struct {
	decimal *regexp.Regexp
	hex     *regexp.Regexp
}

var (
	patterns     *numberPatterns
	patternsOnce sync.Once
)

// getNumberPatterns returns the singleton instance of compiled regex patterns
func getNumberPatterns() *numberPatterns {
	patternsOnce.Do(func() {
		patterns = &numberPatterns{
			decimal: regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`),
			hex:     regexp.MustCompile(`^0[xX][0-9a-fA-F]+$`),
		}
	})
	return patterns
}
