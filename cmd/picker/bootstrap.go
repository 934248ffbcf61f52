package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"llm-stock-picker/internal/finnhub"
	"llm-stock-picker/internal/llm"
	"llm-stock-picker/internal/logger"
	"llm-stock-picker/internal/recorder"
	"llm-stock-picker/internal/store"
	"llm-stock-picker/internal/types"
)

// initializeSystem loads the environment and initializes the logger/tracer
func initializeSystem() error {
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// loadConfig loads and returns the configuration. CONFIG_PATH overrides the
// default config.yaml.
func loadConfig(ctx context.Context) (*store.Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}

	cfg, err := store.LoadConfig(path)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err, "path", path)
		return nil, err
	}
	return cfg, nil
}

// logStartup logs masked credentials so a misconfigured environment is
// visible at a glance. Empty credentials are not rejected here; the
// providers reject them on first use.
func logStartup(ctx context.Context) {
	logger.Info(ctx, "Starting the stock picker",
		"finnhub_key", maskKey(os.Getenv("FINNHUB_API_KEY")),
		"openai_key", maskKey(os.Getenv("OPENAI_API_KEY")),
	)
}

// maskKey keeps the first and last 4 characters of a credential. Keys too
// short to mask that way are still reported as present.
func maskKey(key string) string {
	if key == "" {
		return "(unset)"
	}
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

// initializeQuoteClient creates the Finnhub client from config
func initializeQuoteClient(cfg *store.Config) *finnhub.Client {
	opts := []finnhub.Option{
		finnhub.WithRateLimit(cfg.Market.RateLimit),
	}
	if cfg.Market.BaseURL != "" {
		opts = append(opts, finnhub.WithBaseURL(cfg.Market.BaseURL))
	}
	return finnhub.New(os.Getenv("FINNHUB_API_KEY"), opts...)
}

// initializeAdvisor creates the configured LLM advisor
func initializeAdvisor(ctx context.Context, cfg *store.Config) (types.Advisor, error) {
	advisor, err := llm.New(ctx, cfg)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to initialize LLM advisor", err, "provider", cfg.LLM.Provider)
		return nil, err
	}
	return advisor, nil
}

// initializeRecorder creates the SQLite recorder when configured, falling
// back to noop so a broken database never blocks the loop.
func initializeRecorder(ctx context.Context, cfg *store.Config) recorder.Recorder {
	if cfg.Database.SQLitePath == "" {
		return recorder.NewNoopRecorder()
	}

	rec, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
	if err != nil {
		logger.Warn(ctx, "Failed to open sqlite recorder, recording disabled", "path", cfg.Database.SQLitePath, "error", err)
		return recorder.NewNoopRecorder()
	}

	logger.Info(ctx, "SQLite recorder opened", "path", cfg.Database.SQLitePath)
	return rec
}
