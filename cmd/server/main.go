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

	"github.com/mindhaven/mindhaven/config"
	"github.com/mindhaven/mindhaven/internal/cache"
	"github.com/mindhaven/mindhaven/internal/composer"
	"github.com/mindhaven/mindhaven/internal/content"
	"github.com/mindhaven/mindhaven/internal/logging"
	"github.com/mindhaven/mindhaven/internal/matcher"
	"github.com/mindhaven/mindhaven/internal/pipeline"
	"github.com/mindhaven/mindhaven/internal/sentiment"
	"github.com/mindhaven/mindhaven/internal/server"
	"github.com/mindhaven/mindhaven/internal/store"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	cfg := config.FromEnv()

	catalog := content.DefaultCatalog()
	if err := catalog.Validate(); err != nil {
		slog.Error("[Main] Invalid content catalog",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	turns, err := store.NewSQLiteStore(cfg.SQLitePath)
	if err != nil {
		slog.Error("[Main] Failed to open conversation store",
			slog.String("path", cfg.SQLitePath),
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer turns.Close()

	responses := buildCache(cfg)

	p := pipeline.New(
		sentiment.NewClassifier(sentiment.NewVADER()),
		matcher.New(catalog),
		composer.New(catalog),
		responses,
		turns,
	)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           server.New(p, cfg.HistoryLimit).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("[Main] Listening", slog.String("addr", cfg.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("[Main] Server failed",
				slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("[Main] Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("[Main] Shutdown failed",
			slog.String("error", err.Error()))
	}
}

// buildCache selects the response-cache backend. A Valkey backend that
// cannot be reached degrades to the in-process cache so the service can
// still start.
func buildCache(cfg config.Config) cache.ResponseCache {
	if cfg.CacheBackend != config.CacheBackendValkey {
		return cache.NewMemory()
	}

	vc, err := cache.NewValkey(cache.ValkeyOptions{
		Addr:     cfg.ValkeyAddr,
		Password: cfg.ValkeyPassword,
		UseTLS:   cfg.ValkeyTLS,
	})
	if err != nil {
		slog.Warn("[Main] Valkey unavailable, using in-memory response cache",
			slog.String("error", err.Error()))
		return cache.NewMemory()
	}
	return vc
}
