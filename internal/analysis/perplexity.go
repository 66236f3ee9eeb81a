package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/spacesedan/texttrace/config"
)

// Tokenizer turns text into model token ids without adding special tokens.
type Tokenizer interface {
	Encode(text string) ([]int64, error)
}

// LanguageModel returns one row of next-token logits per input position.
type LanguageModel interface {
	Logits(ctx context.Context, ids []int64) ([][]float32, error)
}

type PerplexityResult struct {
	Value      float64
	TokenCount int
	Truncated  bool
}

type PerplexityEstimator struct {
	tokenizer Tokenizer
	lm        LanguageModel
	maxTokens int
	alignment string
}

func NewPerplexityEstimator(tokenizer Tokenizer, lm LanguageModel, maxTokens int, alignment string) *PerplexityEstimator {
	if alignment != config.AlignmentSame {
		alignment = config.AlignmentNext
	}
	return &PerplexityEstimator{
		tokenizer: tokenizer,
		lm:        lm,
		maxTokens: maxTokens,
		alignment: alignment,
	}
}

func (p *PerplexityEstimator) Estimate(ctx context.Context, text string) (PerplexityResult, error) {
	var result PerplexityResult
	if strings.TrimSpace(text) == "" {
		return result, ErrEmptyText
	}

	ids, err := p.tokenizer.Encode(text)
	if err != nil {
		return result, fmt.Errorf("failed to tokenize text: %w", err)
	}
	if p.maxTokens > 0 && len(ids) > p.maxTokens {
		slog.Warn("[Perplexity] Input exceeds model context, truncating",
			slog.Int("tokens", len(ids)),
			slog.Int("max_tokens", p.maxTokens))
		ids = ids[:p.maxTokens]
		result.Truncated = true
	}
	result.TokenCount = len(ids)

	if len(ids) < minTokens(p.alignment) {
		return result, ErrTooFewTokens
	}

	logits, err := p.lm.Logits(ctx, ids)
	if err != nil {
		return result, fmt.Errorf("language model forward pass failed: %w", err)
	}

	ce, err := CrossEntropy(logits, ids, p.alignment)
	if err != nil {
		return result, err
	}
	result.Value = math.Exp(ce)
	return result, nil
}

func minTokens(alignment string) int {
	if alignment == config.AlignmentSame {
		return 1
	}
	return 2
}

// CrossEntropy is the mean negative log-likelihood of ids under logits. With
// AlignmentNext row i is scored against ids[i+1]; with AlignmentSame row i is
// scored against ids[i].
func CrossEntropy(logits [][]float32, ids []int64, alignment string) (float64, error) {
	if len(logits) != len(ids) {
		return 0, fmt.Errorf("logits cover %d positions, expected %d", len(logits), len(ids))
	}

	offset := 1
	if alignment == config.AlignmentSame {
		offset = 0
	}
	n := len(ids) - offset
	if n <= 0 {
		return 0, ErrTooFewTokens
	}

	var total float64
	for i := 0; i < n; i++ {
		target := ids[i+offset]
		row := logits[i]
		if target < 0 || int(target) >= len(row) {
			return 0, fmt.Errorf("token id %d outside vocabulary of size %d", target, len(row))
		}
		total -= logSoftmaxAt(row, int(target))
	}
	return total / float64(n), nil
}

func logSoftmaxAt(row []float32, target int) float64 {
	maxLogit := math.Inf(-1)
	for _, v := range row {
		if float64(v) > maxLogit {
			maxLogit = float64(v)
		}
	}
	var sum float64
	for _, v := range row {
		sum += math.Exp(float64(v) - maxLogit)
	}
	return float64(row[target]) - maxLogit - math.Log(sum)
}
