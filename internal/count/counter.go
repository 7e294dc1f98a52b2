package count

import "fmt"

// Counter defines the interface for different text counting strategies.
type Counter interface {
	// Count returns the number of units (graphemes, words, tokens...) in text.
	Count(text string) int

	// Name returns a human-readable name for this counting method (for logging)
	Name() string
}

// Method represents the different available counting strategies.
type Method int

const (
	// ByCharacters counts runes, including whitespace (default)
	ByCharacters Method = iota
	// ByGraphemes counts user-perceived characters
	ByGraphemes
	// ByWords counts words as found by split.Words
	ByWords
	// ByTokens uses tiktoken with cl100k_base encoding
	ByTokens
)

// String returns the string representation of the counting method.
func (m Method) String() string {
	switch m {
	case ByCharacters:
		return "characters"
	case ByGraphemes:
		return "graphemes"
	case ByWords:
		return "words"
	case ByTokens:
		return "tokens"
	default:
		return "unknown"
	}
}

// ParseMethod returns the Method whose String form is name.
func ParseMethod(name string) (Method, error) {
	for _, m := range []Method{ByCharacters, ByGraphemes, ByWords, ByTokens} {
		if m.String() == name {
			return m, nil
		}
	}
	return ByCharacters, fmt.Errorf("unknown counting method %q", name)
}

// NewCounter creates a new Counter instance based on the specified method.
// Returns an error if the counter cannot be initialized (e.g., tiktoken
// encoding fails).
func NewCounter(method Method) (Counter, error) {
	switch method {
	case ByGraphemes:
		return NewGraphemeCounter(), nil
	case ByWords:
		return NewWordCounter(), nil
	case ByTokens:
		tc, err := NewTokenCounter()
		if err != nil {
			return nil, err
		}
		return tc, nil
	default:
		return NewCharCounter(), nil
	}
}
