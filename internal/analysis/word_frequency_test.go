package analysis

import (
	"fmt"
	"strings"
	"testing"

	"github.com/spacesedan/texttrace/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestTopRepeatedWordsDropsStopwordsAndPunctuation(t *testing.T) {
	got := TopRepeatedWords("The cat and the hat - and THE cat !", DefaultTopWords)

	assert.Equal(t, []models.WordCount{
		{Word: "cat", Count: 2},
		{Word: "hat", Count: 1},
	}, got)
	for _, wc := range got {
		assert.False(t, IsStopword(wc.Word))
		assert.False(t, IsPunctuation(wc.Word))
	}
}

func TestTopRepeatedWordsKeepsFirstSeenOrderOnTies(t *testing.T) {
	got := TopRepeatedWords("zebra apple zebra apple mango", DefaultTopWords)

	assert.Equal(t, []models.WordCount{
		{Word: "zebra", Count: 2},
		{Word: "apple", Count: 2},
		{Word: "mango", Count: 1},
	}, got)
}

func TestTopRepeatedWordsCapsAndSorts(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= 15; i++ {
		for j := 0; j < i; j++ {
			fmt.Fprintf(&b, "word%d ", i)
		}
	}

	got := TopRepeatedWords(b.String(), DefaultTopWords)

	assert.Len(t, got, DefaultTopWords)
	assert.Equal(t, "word15", got[0].Word)
	assert.Equal(t, 15, got[0].Count)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Count, got[i].Count)
	}
}

func TestTopRepeatedWordsOnlyStopwords(t *testing.T) {
	assert.Empty(t, TopRepeatedWords("the and of , .", DefaultTopWords))
}

func TestIsPunctuation(t *testing.T) {
	assert.True(t, IsPunctuation("."))
	assert.True(t, IsPunctuation("~"))
	assert.False(t, IsPunctuation(""))
	assert.False(t, IsPunctuation("..."))
	assert.False(t, IsPunctuation("word."))
}
