package analysis

import (
	"sort"
	"strings"

	"github.com/spacesedan/texttrace/internal/models"
)

const DefaultTopWords = 10

// TopRepeatedWords splits text on whitespace, drops stopwords and punctuation
// tokens, and returns the n most frequent words. Ties keep the order in which
// the words first appeared.
func TopRepeatedWords(text string, n int) []models.WordCount {
	counts := make(map[string]int)
	var order []string

	for _, token := range strings.Fields(text) {
		word := strings.ToLower(token)
		if IsStopword(word) || IsPunctuation(word) {
			continue
		}
		if _, seen := counts[word]; !seen {
			order = append(order, word)
		}
		counts[word]++
	}

	words := make([]models.WordCount, 0, len(order))
	for _, w := range order {
		words = append(words, models.WordCount{Word: w, Count: counts[w]})
	}
	sort.SliceStable(words, func(i, j int) bool {
		return words[i].Count > words[j].Count
	})

	if n >= 0 && len(words) > n {
		words = words[:n]
	}
	return words
}
