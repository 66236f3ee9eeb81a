package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/spacesedan/texttrace/config"
	"github.com/spacesedan/texttrace/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAnalyzer(vocab int, clf Classifier) *Analyzer {
	return NewAnalyzer(wordTokenizer{}, &uniformLM{vocab: vocab}, clf, Options{
		MaxTokens:     1024,
		Alignment:     config.AlignmentNext,
		MaxInputChars: 200,
	})
}

func TestAnalyzeFlagsUnpredictableUniformText(t *testing.T) {
	clf := stubClassifier{out: models.ClassifierOutput{Label: "LABEL_0", Confidence: 0.9}}
	a := newTestAnalyzer(50000, clf)

	res, err := a.Analyze(context.Background(), "quantum lattice harbor velvet")
	require.NoError(t, err)

	assert.InDelta(t, 50000, res.Perplexity, 1e-6)
	assert.Equal(t, 0.0, res.Burstiness)
	assert.Equal(t, models.VerdictAI, res.Verdict)
	assert.True(t, res.IsAI())
	assert.Equal(t, 90, res.Classification.HumanScore)
	assert.Equal(t, 4, res.TokenCount)
	assert.Len(t, res.TopWords, 4)
	assert.Equal(t, "quantum lattice harbor velvet", res.Text)
}

func TestVerdictIgnoresClassifier(t *testing.T) {
	clf := stubClassifier{out: models.ClassifierOutput{Label: "LABEL_1", Confidence: 1}}
	a := newTestAnalyzer(10, clf)

	res, err := a.Analyze(context.Background(), "plain words plain words")
	require.NoError(t, err)

	assert.Equal(t, 100, res.Classification.AIScore)
	assert.Equal(t, models.VerdictHuman, res.Verdict)
}

func TestAnalyzeRejectsBadInput(t *testing.T) {
	a := newTestAnalyzer(10, stubClassifier{})

	_, err := a.Analyze(context.Background(), " \n\t ")
	assert.ErrorIs(t, err, ErrEmptyText)

	_, err = a.Analyze(context.Background(), strings.Repeat("x", 201))
	assert.ErrorIs(t, err, ErrTextTooLong)
	assert.True(t, IsInputError(err))
}

func TestAnalyzeSurfacesClassifierFailure(t *testing.T) {
	a := newTestAnalyzer(10, stubClassifier{err: errors.New("pipeline not loaded")})

	_, err := a.Analyze(context.Background(), "some words here")
	require.Error(t, err)
	assert.False(t, IsInputError(err))
}

func TestAnalyzeHonoursCancellation(t *testing.T) {
	a := newTestAnalyzer(10, stubClassifier{out: models.ClassifierOutput{Label: "LABEL_0", Confidence: 0.5}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Analyze(ctx, "some words here")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalyzeLogsCharacterCount(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	a := newTestAnalyzer(10, stubClassifier{out: models.ClassifierOutput{Label: "LABEL_0", Confidence: 0.5}})
	_, err := a.Analyze(context.Background(), "café naïve café")
	require.NoError(t, err)

	line, _, _ := bytes.Cut(buf.Bytes(), []byte("\n"))
	var entry map[string]any
	require.NoError(t, json.Unmarshal(line, &entry))
	assert.Equal(t, "[Analyzer] Starting analysis", entry["msg"])
	assert.Equal(t, float64(15), entry["chars"])
}
