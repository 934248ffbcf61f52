package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"llm-stock-picker/internal/analyzer"
	"llm-stock-picker/internal/logger"
	"llm-stock-picker/internal/poller"
	"llm-stock-picker/internal/universe"
	"llm-stock-picker/internal/window"
)

func main() {
	if err := run(); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := initializeSystem(); err != nil {
		return err
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if serr := logger.Shutdown(shutdownCtx); serr != nil {
			fmt.Fprintf(os.Stderr, "tracer shutdown: %v\n", serr)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigc
		logger.Info(ctx, "Shutting down...")
		cancel()
	}()

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	logStartup(ctx)

	quotes := initializeQuoteClient(cfg)

	// The universe fetch is the only fatal dependency: the loop cannot
	// sample without a population.
	uni, err := universe.Load(ctx, quotes, cfg.Market.Exchange)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load symbol universe", err)
		return err
	}

	advisor, err := initializeAdvisor(ctx, cfg)
	if err != nil {
		return err
	}

	rec := initializeRecorder(ctx, cfg)
	defer func() {
		if err := rec.Close(); err != nil {
			logger.Warn(ctx, "Failed to close recorder", "error", err)
		}
	}()

	anl := analyzer.New(advisor, cfg)
	agg := window.New(advisor, cfg, time.Now())

	p := poller.New(uni, quotes, anl, agg, rec, cfg)
	return p.Run(ctx)
}
