package analysis

import (
	"context"
	"fmt"

	"github.com/spacesedan/texttrace/internal/models"
)

// Classifier runs a pretrained binary text classifier and returns its top label.
type Classifier interface {
	Classify(ctx context.Context, text string) (models.ClassifierOutput, error)
}

// Score turns a classifier prediction into a human/AI percentage pair. The
// confidence is truncated to a whole percentage; the two scores sum to 100.
func Score(out models.ClassifierOutput, humanLabel string) models.Classification {
	pct := int(100 * out.Confidence)
	if pct < 0 {
		pct = 0
	} else if pct > 100 {
		pct = 100
	}

	c := models.Classification{
		RawLabel:   out.Label,
		Confidence: out.Confidence,
	}
	if out.Label == humanLabel {
		c.Label = models.LabelHuman
		c.HumanScore = pct
		c.AIScore = 100 - pct
	} else {
		c.Label = models.LabelAI
		c.AIScore = pct
		c.HumanScore = 100 - pct
	}
	return c
}

func classify(ctx context.Context, clf Classifier, text, humanLabel string) (models.Classification, error) {
	out, err := clf.Classify(ctx, text)
	if err != nil {
		return models.Classification{}, fmt.Errorf("classification failed: %w", err)
	}
	return Score(out, humanLabel), nil
}
