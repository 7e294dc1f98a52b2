package count

import "log/slog"

// CharCounter counts runes. A rune is a Unicode scalar value, so a letter
// followed by a combining mark counts as two.
type CharCounter struct{}

// NewCharCounter creates a new CharCounter instance.
func NewCharCounter() Counter {
	return &CharCounter{}
}

// Count returns the number of runes in the given text.
func (cc *CharCounter) Count(text string) int {
	charCount := Chars(text)

	slog.Debug("Character count calculated", "textLength", len(text), "charCount", charCount)
	return charCount
}

// Name returns the name of this counting method for logging and debugging.
func (cc *CharCounter) Name() string {
	return "characters"
}

// GraphemeCounter counts extended grapheme clusters.
type GraphemeCounter struct{}

// NewGraphemeCounter creates a new GraphemeCounter instance.
func NewGraphemeCounter() Counter {
	return &GraphemeCounter{}
}

// Count returns the number of grapheme clusters in the given text.
func (gc *GraphemeCounter) Count(text string) int {
	graphemeCount := Graphemes(text)

	slog.Debug("Grapheme count calculated", "textLength", len(text), "graphemeCount", graphemeCount)
	return graphemeCount
}

// Name returns the name of this counting method for logging and debugging.
func (gc *GraphemeCounter) Name() string {
	return "graphemes"
}
