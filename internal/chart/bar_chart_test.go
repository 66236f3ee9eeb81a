package chart

import (
	"testing"

	"github.com/spacesedan/texttrace/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopWordsLayout(t *testing.T) {
	c := TopWords([]models.WordCount{
		{Word: "model", Count: 4},
		{Word: "token", Count: 2},
		{Word: "chart", Count: 1},
	})

	require.Len(t, c.Bars, 3)
	assert.Equal(t, "Top 10 Most Repeated Words", c.Title)
	assert.Equal(t, "Words", c.XLabel)
	assert.Equal(t, "Counts", c.YLabel)

	// tallest bar reaches the top of the plot area
	assert.InDelta(t, c.PlotHeight, c.Bars[0].Height, 1e-9)
	assert.InDelta(t, c.PlotY, c.Bars[0].Y, 1e-9)
	assert.InDelta(t, c.PlotHeight/2, c.Bars[1].Height, 1e-9)

	for i, b := range c.Bars {
		assert.InDelta(t, c.AxisY(), b.Y+b.Height, 1e-9)
		assert.GreaterOrEqual(t, b.X, c.PlotX)
		assert.LessOrEqual(t, b.X+b.Width, c.PlotX+c.PlotWidth+1e-9)
		if i > 0 {
			assert.Greater(t, b.X, c.Bars[i-1].X)
		}
	}
}

func TestTicksAreWholeNumbers(t *testing.T) {
	c := TopWords([]models.WordCount{{Word: "a", Count: 13}})

	require.NotEmpty(t, c.Ticks)
	assert.Equal(t, 0, c.Ticks[0].Value)
	assert.Equal(t, 15, c.Ticks[len(c.Ticks)-1].Value)
	assert.InDelta(t, c.PlotY, c.Ticks[len(c.Ticks)-1].Y, 1e-9)
}

func TestEmptyChart(t *testing.T) {
	c := TopWords(nil)
	assert.True(t, c.Empty())
	assert.Empty(t, c.Ticks)
}

func TestNiceCeil(t *testing.T) {
	assert.Equal(t, 1, niceCeil(0))
	assert.Equal(t, 3, niceCeil(3))
	assert.Equal(t, 10, niceCeil(10))
	assert.Equal(t, 15, niceCeil(11))
}
