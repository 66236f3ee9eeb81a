package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/spacesedan/texttrace/config"
	"github.com/spacesedan/texttrace/internal/analysis"
	"github.com/spacesedan/texttrace/internal/clients"
	"github.com/spacesedan/texttrace/internal/monitoring"
	"github.com/spacesedan/texttrace/internal/sentiment"
	"github.com/spacesedan/texttrace/internal/transformers"
)

// App owns the loaded models and the analyzer built on top of them.
type App struct {
	Config   config.Config
	Analyzer *analysis.Analyzer
	Health   *monitoring.ModelHealth

	closers []io.Closer
}

type classifierCloser interface {
	analysis.Classifier
	io.Closer
}

// Load fetches and loads both models once. The classifier goes first: hugot
// owns the ONNX Runtime environment when it is in use.
func Load(cfg config.Config) (*App, error) {
	start := time.Now()
	a := &App{Config: cfg, Health: monitoring.NewModelHealth()}
	fetcher := clients.NewHubFetcher(cfg.ModelDir, cfg.DownloadModels)

	classifier, err := loadClassifier(cfg, fetcher)
	if err != nil {
		a.Health.SetClassifier(cfg.ClassifierBackend, false)
		return nil, err
	}
	a.closers = append(a.closers, classifier)
	a.Health.SetClassifier(cfg.ClassifierBackend, true)

	lmSpec := cfg.LMSpec()
	lmDir, err := fetcher.Ensure(lmSpec, cfg.LMTokenizerFile)
	if err != nil {
		a.Health.SetLanguageModel(false)
		return nil, errors.Join(fmt.Errorf("language model: %w", err), a.Close())
	}

	tokenizer, err := transformers.NewBPETokenizer(filepath.Join(lmDir, cfg.LMTokenizerFile))
	if err != nil {
		return nil, errors.Join(err, a.Close())
	}
	a.closers = append(a.closers, tokenizer)

	lm, err := transformers.NewCausalLM(transformers.CausalLMConfig{
		ModelPath:       filepath.Join(lmDir, lmSpec.LocalOnnxFile()),
		OnnxLibraryPath: cfg.OnnxLibraryPath,
		InputNames:      cfg.LMInputNames,
		OutputName:      cfg.LMOutputName,
		VocabSize:       cfg.LMVocabSize,
	})
	if err != nil {
		a.Health.SetLanguageModel(false)
		return nil, errors.Join(err, a.Close())
	}
	a.closers = append(a.closers, lm)
	a.Health.SetLanguageModel(true)

	a.Analyzer = analysis.NewAnalyzer(tokenizer, lm, classifier, analysis.OptionsFromConfig(cfg))

	slog.Info("[ModelLoader] Models ready",
		slog.String("classifier_backend", cfg.ClassifierBackend),
		slog.Duration("elapsed", time.Since(start)))
	return a, nil
}

func loadClassifier(cfg config.Config, fetcher *clients.ModelFetcher) (classifierCloser, error) {
	switch cfg.ClassifierBackend {
	case config.BackendVader:
		slog.Info("[ModelLoader] Using VADER classifier")
		return sentiment.NewVaderClassifier(), nil
	case config.BackendONNX:
		spec := cfg.ClassifierSpec()
		dir, err := fetcher.Ensure(spec, "tokenizer.json")
		if err != nil {
			return nil, fmt.Errorf("classifier: %w", err)
		}
		clf, err := transformers.NewHugotClassifier(dir, spec.LocalOnnxFile(), cfg.OnnxLibraryPath)
		if err != nil {
			return nil, err
		}
		return clf, nil
	default:
		return nil, fmt.Errorf("unknown classifier backend %q", cfg.ClassifierBackend)
	}
}

// Close releases models in reverse load order so the language model session
// is gone before hugot tears down ONNX Runtime.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
