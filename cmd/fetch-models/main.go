package main

import (
	"log/slog"
	"os"

	"github.com/spacesedan/texttrace/config"
	"github.com/spacesedan/texttrace/internal/clients"
	"github.com/spacesedan/texttrace/internal/logging"
	"github.com/spacesedan/texttrace/internal/models"
)

func main() {
	config.LoadEnv(config.Env())
	cfg := config.Load()
	logging.InitLogger(cfg.LogLevel)

	fetcher := clients.GetModelFetcher(cfg.ModelDir, true)

	type target struct {
		spec      models.ModelSpec
		tokenizer string
	}
	targets := map[string]target{
		"language model": {cfg.LMSpec(), cfg.LMTokenizerFile},
	}
	if cfg.ClassifierBackend == config.BackendONNX {
		targets["classifier"] = target{cfg.ClassifierSpec(), "tokenizer.json"}
	}

	failed := false
	for name, t := range targets {
		path, err := fetcher.Ensure(t.spec, t.tokenizer)
		if err != nil {
			slog.Error("[FetchModels] Failed to fetch model",
				slog.String("model", name),
				slog.String("error", err.Error()))
			failed = true
			continue
		}
		slog.Info("[FetchModels] Model ready", slog.String("model", name), slog.String("path", path))
	}
	if failed {
		os.Exit(1)
	}
}
