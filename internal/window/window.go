package window

import (
	"context"
	"fmt"
	"strings"
	"time"

	"llm-stock-picker/internal/logger"
	"llm-stock-picker/internal/store"
	"llm-stock-picker/internal/types"
)

// SentinelText is substituted for the pick when the comparison call fails.
// The buffer is still cleared and the interval timer still resets.
const SentinelText = "comparison unavailable"

// Aggregator buffers per-symbol analyses across a fixed wall-clock interval
// and asks the advisor for a single best pick when the interval elapses.
// It is driven by the single poll-loop goroutine; Append and MaybeFlush
// never interleave.
type Aggregator struct {
	advisor    types.Advisor
	pickSystem string
	interval   time.Duration
	truncate   int
	flushEmpty bool
	maxEntries int

	entries   []types.AnalyzedEntry
	lastFlush time.Time
}

// New creates an aggregator with the window open as of now.
func New(advisor types.Advisor, cfg *store.Config, now time.Time) *Aggregator {
	return &Aggregator{
		advisor:    advisor,
		pickSystem: cfg.LLM.PickSystem,
		interval:   cfg.WindowInterval(),
		truncate:   cfg.Window.TruncateChars,
		flushEmpty: cfg.FlushEmptyEnabled(),
		maxEntries: cfg.Window.MaxEntries,
		lastFlush:  now,
	}
}

// Append adds one entry to the current window. When a max-entries cap is
// configured and the buffer is full, the oldest entry is dropped so the
// freshest analyses survive to the flush.
func (a *Aggregator) Append(e types.AnalyzedEntry) {
	if a.maxEntries > 0 && len(a.entries) >= a.maxEntries {
		a.entries = a.entries[1:]
	}
	a.entries = append(a.entries, e)
}

// MaybeFlush runs the comparison if the interval has elapsed (boundary
// inclusive). On flush the buffer is cleared and the timer reset regardless
// of the comparison outcome. Returns the pick and whether a flush happened;
// an expired empty window with flush_empty disabled resets the timer but
// produces no pick.
func (a *Aggregator) MaybeFlush(ctx context.Context, now time.Time) (*types.Pick, bool) {
	if now.Sub(a.lastFlush) < a.interval {
		return nil, false
	}

	if len(a.entries) == 0 && !a.flushEmpty {
		logger.Debug(ctx, "Window expired with empty buffer, restarting window")
		a.lastFlush = now
		return nil, false
	}

	op := logger.StartOperation(ctx, "window.flush", "entries", len(a.entries))
	ctx = op.GetContext()

	pick := types.Pick{
		Entries:   len(a.entries),
		FlushedAt: now,
	}

	text, err := a.advisor.Complete(ctx, a.pickSystem, a.buildComparisonPrompt())
	if err != nil {
		logger.Warn(ctx, "Comparison call failed, substituting sentinel", "entries", len(a.entries), "error", err)
		pick.Text = SentinelText
		pick.Failed = true
		op.EndWithError(err)
	} else {
		pick.Text = strings.TrimSpace(text)
		op.End()
	}

	a.entries = a.entries[:0]
	a.lastFlush = now

	return &pick, true
}

// buildComparisonPrompt concatenates symbol, current price and (truncated)
// analysis text for every buffered entry.
func (a *Aggregator) buildComparisonPrompt() string {
	var lines []string
	for _, e := range a.entries {
		lines = append(lines, fmt.Sprintf("Symbol: %s\nPrice: %g\nAI Analysis: %s\n",
			e.Symbol, e.Quote.Current, truncateText(e.Analysis.Text, a.truncate)))
	}

	return fmt.Sprintf(`You have the following stock analyses from the last interval:

%s

Among these, which stock appears to be the best high-yield option
in the short- to mid-term?
Pick exactly one symbol and provide a brief rationale.`, strings.Join(lines, "\n"))
}

// truncateText bounds a text to max runes, appending "..." when cut.
// max <= 0 disables truncation.
func truncateText(text string, max int) string {
	if max <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}

// Len returns the number of entries buffered in the current window.
func (a *Aggregator) Len() int {
	return len(a.entries)
}

// LastFlush returns the instant the current window opened.
func (a *Aggregator) LastFlush() time.Time {
	return a.lastFlush
}
