package analysis

import (
	"strings"

	"github.com/jdkato/prose/tokenize"
)

// Burstiness is the share of distinct tokens that occur more than once.
// Tokens come from a Treebank word tokenizer over the lowercased text, so
// punctuation marks count as tokens.
func Burstiness(text string) (float64, error) {
	tokens := tokenize.TextToWords(strings.ToLower(text))

	freq := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		freq[tok]++
	}
	if len(freq) == 0 {
		return 0, ErrNoWords
	}

	repeated := 0
	for _, count := range freq {
		if count > 1 {
			repeated++
		}
	}
	return float64(repeated) / float64(len(freq)), nil
}
