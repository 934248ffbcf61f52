package types

import (
	"context"
	"time"
)

// Quote is a point-in-time snapshot for one symbol. JSON tags match the
// Finnhub /quote response keys.
type Quote struct {
	Current   float64 `json:"c"`
	High      float64 `json:"h"`
	Low       float64 `json:"l"`
	Open      float64 `json:"o"`
	PrevClose float64 `json:"pc"`
	Timestamp int64   `json:"t"`
}

// Analysis is the outcome of one single-stock completion. Failed analyses
// carry the sentinel text and still occupy a window slot.
type Analysis struct {
	Text   string `json:"text"`
	Failed bool   `json:"failed,omitempty"`
}

// AnalyzedEntry is produced once per successful poll tick and buffered until
// the next window flush. Never mutated after append.
type AnalyzedEntry struct {
	Symbol     string    `json:"symbol"`
	Quote      Quote     `json:"quote"`
	Analysis   Analysis  `json:"analysis"`
	CapturedAt time.Time `json:"captured_at"`
}

// Pick is the result of one window flush: the model's best candidate among
// the buffered entries, or the sentinel text when the comparison call failed.
type Pick struct {
	Text      string    `json:"text"`
	Failed    bool      `json:"failed,omitempty"`
	Entries   int       `json:"entries"`
	FlushedAt time.Time `json:"flushed_at"`
}

// Advisor generates one completion for a system/user message pair. Model,
// temperature and output length are fixed at construction.
type Advisor interface {
	Complete(ctx context.Context, system, user string) (string, error)
}
