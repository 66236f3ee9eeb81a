package sentiment

import (
	"context"
	"math"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"

	"github.com/spacesedan/texttrace/internal/models"
)

// SST-2 label ids: LABEL_0 is negative, LABEL_1 positive.
const (
	LabelNegative = "LABEL_0"
	LabelPositive = "LABEL_1"
)

var (
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
	tagPattern  = regexp.MustCompile(`<[^>]*>`)
)

func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text
	return urlPattern.ReplaceAllString(input, "")
}

func ConvertMarkdownToText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plainText := tagPattern.ReplaceAllString(string(output), " ")
	plainText = strings.Join(strings.Fields(plainText), " ")

	return RemoveLinks(plainText)
}

// VaderClassifier stands in for the ONNX sentiment checkpoint when no model
// is available. It reports SST-2 style labels so the same human/AI mapping
// applies.
type VaderClassifier struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderClassifier() *VaderClassifier {
	return &VaderClassifier{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *VaderClassifier) Classify(ctx context.Context, text string) (models.ClassifierOutput, error) {
	if err := ctx.Err(); err != nil {
		return models.ClassifierOutput{}, err
	}
	compound := v.analyzer.PolarityScores(ConvertMarkdownToText(text)).Compound
	return CompoundToOutput(compound), nil
}

// CompoundToOutput maps a VADER compound score in [-1, 1] onto a binary label
// with a confidence in [0.5, 1].
func CompoundToOutput(compound float64) models.ClassifierOutput {
	label := LabelPositive
	if compound < 0 {
		label = LabelNegative
	}
	return models.ClassifierOutput{
		Label:      label,
		Confidence: (math.Abs(compound) + 1) / 2,
	}
}

func (v *VaderClassifier) Close() error {
	return nil
}
