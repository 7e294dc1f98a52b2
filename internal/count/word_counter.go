package count

import "log/slog"

// WordCounter counts words with the voca word segmenter, so "fooBar" is two
// words and punctuation is never one.
type WordCounter struct{}

// NewWordCounter creates a new WordCounter instance.
func NewWordCounter() Counter {
	return &WordCounter{}
}

// Count returns the number of words in the given text.
func (wc *WordCounter) Count(text string) int {
	wordCount := Words(text, "")

	slog.Debug("Word count calculated", "textLength", len(text), "wordCount", wordCount)
	return wordCount
}

// Name returns the name of this counting method for logging and debugging.
func (wc *WordCounter) Name() string {
	return "words"
}
