package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spacesedan/texttrace/config"
	"github.com/spacesedan/texttrace/internal/app"
	"github.com/spacesedan/texttrace/internal/logging"
)

func main() {
	file := flag.String("file", "", "read text from this file instead of stdin")
	flag.Parse()

	config.LoadEnv(config.Env())
	cfg := config.Load()
	logging.InitLogger(cfg.LogLevel)

	if err := run(*file, cfg); err != nil {
		slog.Error("[Analyze] Failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(file string, cfg config.Config) error {
	text, err := readInput(file)
	if err != nil {
		return err
	}

	application, err := app.Load(cfg)
	if err != nil {
		return err
	}
	defer application.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := application.Analyzer.Analyze(ctx, text)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func readInput(file string) (string, error) {
	if file == "" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", file, err)
	}
	return string(b), nil
}
