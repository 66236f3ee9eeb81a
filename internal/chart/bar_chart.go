package chart

import (
	"math"

	"github.com/spacesedan/texttrace/internal/models"
)

const (
	DefaultWidth  = 480
	DefaultHeight = 320

	marginTop    = 40
	marginRight  = 16
	marginBottom = 64
	marginLeft   = 48
	barGapRatio  = 0.2
	tickCount    = 5
)

type Bar struct {
	Label  string
	Value  int
	X      float64
	Y      float64
	Width  float64
	Height float64
	// LabelX is the horizontal centre of the bar, used for the x-axis text.
	LabelX float64
}

type Tick struct {
	Value int
	Y     float64
}

// BarChart is a laid-out vertical bar chart ready for SVG rendering.
type BarChart struct {
	Title  string
	XLabel string
	YLabel string
	Width  float64
	Height float64

	PlotX      float64
	PlotY      float64
	PlotWidth  float64
	PlotHeight float64

	Bars  []Bar
	Ticks []Tick
}

func (c BarChart) Empty() bool {
	return len(c.Bars) == 0
}

// AxisY is the baseline of the plot area.
func (c BarChart) AxisY() float64 {
	return c.PlotY + c.PlotHeight
}

func (c BarChart) PlotRight() float64 {
	return c.PlotX + c.PlotWidth
}

func TopWords(words []models.WordCount) BarChart {
	return Build("Top 10 Most Repeated Words", "Words", "Counts", words, DefaultWidth, DefaultHeight)
}

func Build(title, xLabel, yLabel string, words []models.WordCount, width, height float64) BarChart {
	c := BarChart{
		Title:      title,
		XLabel:     xLabel,
		YLabel:     yLabel,
		Width:      width,
		Height:     height,
		PlotX:      marginLeft,
		PlotY:      marginTop,
		PlotWidth:  math.Max(0, width-marginLeft-marginRight),
		PlotHeight: math.Max(0, height-marginTop-marginBottom),
	}
	if len(words) == 0 {
		return c
	}

	maxValue := 0
	for _, w := range words {
		if w.Count > maxValue {
			maxValue = w.Count
		}
	}
	scaleMax := niceCeil(maxValue)

	slot := c.PlotWidth / float64(len(words))
	barWidth := slot * (1 - barGapRatio)
	for i, w := range words {
		h := 0.0
		if scaleMax > 0 {
			h = c.PlotHeight * float64(w.Count) / float64(scaleMax)
		}
		x := c.PlotX + float64(i)*slot + (slot-barWidth)/2
		c.Bars = append(c.Bars, Bar{
			Label:  w.Word,
			Value:  w.Count,
			X:      x,
			Y:      c.AxisY() - h,
			Width:  barWidth,
			Height: h,
			LabelX: x + barWidth/2,
		})
	}

	step := scaleMax / tickCount
	if step < 1 {
		step = 1
	}
	for v := 0; v <= scaleMax; v += step {
		c.Ticks = append(c.Ticks, Tick{
			Value: v,
			Y:     c.AxisY() - c.PlotHeight*float64(v)/float64(scaleMax),
		})
	}
	return c
}

// niceCeil rounds n up to a value that divides into whole-number ticks.
func niceCeil(n int) int {
	if n <= tickCount {
		return max(n, 1)
	}
	if r := n % tickCount; r != 0 {
		return n + tickCount - r
	}
	return n
}
