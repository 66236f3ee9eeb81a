package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/spacesedan/texttrace/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreMapsLabels(t *testing.T) {
	human := Score(models.ClassifierOutput{Label: "LABEL_0", Confidence: 0.876}, "LABEL_0")
	assert.Equal(t, models.LabelHuman, human.Label)
	assert.Equal(t, 87, human.HumanScore)
	assert.Equal(t, 13, human.AIScore)
	assert.Equal(t, "LABEL_0", human.RawLabel)

	ai := Score(models.ClassifierOutput{Label: "LABEL_1", Confidence: 0.9991}, "LABEL_0")
	assert.Equal(t, models.LabelAI, ai.Label)
	assert.Equal(t, 99, ai.AIScore)
	assert.Equal(t, 1, ai.HumanScore)
}

func TestScoresAlwaysSumToHundred(t *testing.T) {
	for _, label := range []string{"LABEL_0", "LABEL_1"} {
		for _, conf := range []float64{0, 0.01, 0.5, 0.5123, 0.75, 0.999999, 1, 1.2, -0.1} {
			c := Score(models.ClassifierOutput{Label: label, Confidence: conf}, "LABEL_0")
			assert.Equal(t, 100, c.HumanScore+c.AIScore, "label=%s conf=%v", label, conf)
			assert.GreaterOrEqual(t, c.HumanScore, 0)
			assert.GreaterOrEqual(t, c.AIScore, 0)
		}
	}
}

func TestClassifyWrapsErrors(t *testing.T) {
	_, err := classify(context.Background(), stubClassifier{err: errors.New("boom")}, "text", "LABEL_0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "classification failed")
}
