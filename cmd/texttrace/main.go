package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spacesedan/texttrace/config"
	"github.com/spacesedan/texttrace/internal/api"
	"github.com/spacesedan/texttrace/internal/app"
	"github.com/spacesedan/texttrace/internal/logging"
)

func main() {
	config.LoadEnv(config.Env())
	cfg := config.Load()
	logging.InitLogger(cfg.LogLevel)

	application, err := app.Load(cfg)
	if err != nil {
		slog.Error("[Main] Failed to load models", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Warn("[Main] Failed to release models", slog.String("error", err.Error()))
		}
	}()

	handler := api.NewHandler(application.Analyzer, application.Health, cfg.MaxInputChars)
	router := api.SetupRouter(handler, api.RouterConfig{
		Debug:          cfg.AppEnv == "dev",
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("[Main] TextTrace listening", slog.String("addr", "http://localhost:"+cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("[Main] Server stopped", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("[Main] Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("[Main] Forced shutdown", slog.String("error", err.Error()))
	}
}
