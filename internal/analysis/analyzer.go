package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/spacesedan/texttrace/config"
	"github.com/spacesedan/texttrace/internal/models"
)

type Options struct {
	MaxTokens     int
	Alignment     string
	HumanLabel    string
	MaxInputChars int
}

func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		MaxTokens:     cfg.LMMaxTokens,
		Alignment:     cfg.PerplexityAlignment,
		HumanLabel:    cfg.ClassifierHumanLabel,
		MaxInputChars: cfg.MaxInputChars,
	}
}

// Analyzer runs one text through every estimator and applies the verdict rule.
// Model sessions are shared, so analyses run one at a time.
type Analyzer struct {
	perplexity    *PerplexityEstimator
	classifier    Classifier
	humanLabel    string
	maxInputChars int

	mu sync.Mutex
}

func NewAnalyzer(tokenizer Tokenizer, lm LanguageModel, classifier Classifier, opts Options) *Analyzer {
	humanLabel := opts.HumanLabel
	if humanLabel == "" {
		humanLabel = "LABEL_0"
	}
	return &Analyzer{
		perplexity:    NewPerplexityEstimator(tokenizer, lm, opts.MaxTokens, opts.Alignment),
		classifier:    classifier,
		humanLabel:    humanLabel,
		maxInputChars: opts.MaxInputChars,
	}
}

func (a *Analyzer) Analyze(ctx context.Context, text string) (*models.AnalysisResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	if a.maxInputChars > 0 && utf8.RuneCountInString(text) > a.maxInputChars {
		return nil, fmt.Errorf("%w: %d characters allowed", ErrTextTooLong, a.maxInputChars)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	start := time.Now()
	slog.Info("[Analyzer] Starting analysis", slog.Int("chars", utf8.RuneCountInString(text)))

	ppl, err := a.perplexity.Estimate(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("perplexity: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	burstiness, err := Burstiness(text)
	if err != nil {
		return nil, fmt.Errorf("burstiness: %w", err)
	}

	classification, err := classify(ctx, a.classifier, text, a.humanLabel)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &models.AnalysisResult{
		Text:           text,
		Perplexity:     ppl.Value,
		Burstiness:     burstiness,
		Classification: classification,
		TopWords:       TopRepeatedWords(text, DefaultTopWords),
		Verdict:        DecideVerdict(ppl.Value, burstiness),
		TokenCount:     ppl.TokenCount,
		Truncated:      ppl.Truncated,
		Elapsed:        time.Since(start),
	}

	slog.Info("[Analyzer] Analysis complete",
		slog.Float64("perplexity", result.Perplexity),
		slog.Float64("burstiness", result.Burstiness),
		slog.Int("ai_score", classification.AIScore),
		slog.String("verdict", string(result.Verdict)),
		slog.Duration("elapsed", result.Elapsed))

	return result, nil
}
