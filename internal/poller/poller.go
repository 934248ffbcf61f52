package poller

import (
	"context"
	"time"

	"llm-stock-picker/internal/logger"
	"llm-stock-picker/internal/recorder"
	"llm-stock-picker/internal/store"
	"llm-stock-picker/internal/types"
	"llm-stock-picker/internal/universe"
	"llm-stock-picker/internal/window"
)

// QuoteGetter is the slice of the quote provider the loop needs.
type QuoteGetter interface {
	GetQuote(ctx context.Context, symbol string) (types.Quote, error)
}

// StockAnalyzer produces one analysis per quote. It never fails the tick;
// provider errors surface as a sentinel analysis.
type StockAnalyzer interface {
	Analyze(ctx context.Context, symbol string, quote types.Quote) types.Analysis
}

// Poller drives one iteration per tick: sample a symbol, fetch its quote,
// analyze it, append to the window, flush when the interval elapses.
type Poller struct {
	universe   *universe.Universe
	quotes     QuoteGetter
	analyzer   StockAnalyzer
	window     *window.Aggregator
	recorder   recorder.Recorder
	tick       time.Duration
	retryPause time.Duration
}

func New(u *universe.Universe, quotes QuoteGetter, analyzer StockAnalyzer, w *window.Aggregator, rec recorder.Recorder, cfg *store.Config) *Poller {
	return &Poller{
		universe:   u,
		quotes:     quotes,
		analyzer:   analyzer,
		window:     w,
		recorder:   rec,
		tick:       cfg.TickPeriod(),
		retryPause: cfg.RetryPause(),
	}
}

// Run loops until the context is cancelled. A single tick's failure never
// terminates the loop. Each tick sleeps only the remainder of the tick
// budget, clamped to zero, so the loop does not drift under slow calls.
func (p *Poller) Run(ctx context.Context) error {
	logger.Info(ctx, "Poll loop started", "universe", p.universe.Len(), "tick", p.tick.String())

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		symbol := p.universe.Pick()

		quote, err := p.quotes.GetQuote(ctx, symbol)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logger.ErrorWithErr(ctx, "Quote fetch failed, skipping tick", err, "symbol", symbol)
			if !sleepCtx(ctx, p.retryPause) {
				return ctx.Err()
			}
			continue
		}

		analysis := p.analyzer.Analyze(ctx, symbol, quote)
		entry := types.AnalyzedEntry{
			Symbol:     symbol,
			Quote:      quote,
			Analysis:   analysis,
			CapturedAt: time.Now(),
		}
		p.window.Append(entry)
		logger.Debug(ctx, "Entry buffered", "symbol", symbol, "price", quote.Current, "buffered", p.window.Len())

		if err := p.recorder.RecordAnalysis(&entry); err != nil {
			logger.Warn(ctx, "Failed to record analysis", "symbol", symbol, "error", err)
		}

		if pick, flushed := p.window.MaybeFlush(ctx, time.Now()); flushed {
			logger.Pick(ctx, pick.Text, pick.Entries, pick.Failed)
			if err := p.recorder.RecordPick(pick); err != nil {
				logger.Warn(ctx, "Failed to record pick", "error", err)
			}
		}

		if remaining := p.tick - time.Since(start); remaining > 0 {
			if !sleepCtx(ctx, remaining) {
				return ctx.Err()
			}
		}
	}
}

// sleepCtx sleeps for d or until the context is cancelled. Returns false on
// cancellation.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
