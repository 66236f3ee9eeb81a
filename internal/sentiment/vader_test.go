package sentiment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertMarkdownToText(t *testing.T) {
	got := ConvertMarkdownToText("# Title\n\nSome **bold** text with a [link](https://example.com) and https://foo.bar/x")

	assert.NotContains(t, got, "<")
	assert.NotContains(t, got, "https://")
	assert.Contains(t, got, "Title")
	assert.Contains(t, got, "bold")
	assert.Contains(t, got, "link")
}

func TestCompoundToOutput(t *testing.T) {
	tests := []struct {
		compound float64
		label    string
		conf     float64
	}{
		{-1, LabelNegative, 1},
		{-0.5, LabelNegative, 0.75},
		{0, LabelPositive, 0.5},
		{0.8, LabelPositive, 0.9},
	}
	for _, tt := range tests {
		out := CompoundToOutput(tt.compound)
		assert.Equal(t, tt.label, out.Label)
		assert.InDelta(t, tt.conf, out.Confidence, 1e-9)
	}
}

func TestVaderClassifierPolarity(t *testing.T) {
	clf := NewVaderClassifier()

	pos, err := clf.Classify(context.Background(), "I love this wonderful, amazing day!")
	require.NoError(t, err)
	assert.Equal(t, LabelPositive, pos.Label)
	assert.Greater(t, pos.Confidence, 0.5)

	neg, err := clf.Classify(context.Background(), "This is a terrible, horrible, awful mess.")
	require.NoError(t, err)
	assert.Equal(t, LabelNegative, neg.Label)
}
