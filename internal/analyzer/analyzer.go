package analyzer

import (
	"context"
	"fmt"

	"llm-stock-picker/internal/logger"
	"llm-stock-picker/internal/store"
	"llm-stock-picker/internal/types"
)

// SentinelText is substituted for the completion when the provider call
// fails. It still occupies a window slot.
const SentinelText = "analysis unavailable"

// Analyzer builds one analysis prompt per quote and requests a completion.
type Analyzer struct {
	advisor types.Advisor
	cfg     *store.Config
}

func New(advisor types.Advisor, cfg *store.Config) *Analyzer {
	return &Analyzer{advisor: advisor, cfg: cfg}
}

// Analyze requests a qualitative analysis of one quote. Provider failures
// are converted into the sentinel result so the poll loop never halts on a
// failed analysis call.
func (a *Analyzer) Analyze(ctx context.Context, symbol string, quote types.Quote) types.Analysis {
	prompt := buildPrompt(symbol, quote)

	text, err := a.advisor.Complete(ctx, a.cfg.LLM.System, prompt)
	if err != nil {
		logger.Warn(ctx, "Analysis call failed, substituting sentinel", "symbol", symbol, "error", err)
		return types.Analysis{Text: SentinelText, Failed: true}
	}

	return types.Analysis{Text: text}
}

// buildPrompt embeds all six quote fields in a fixed template.
func buildPrompt(symbol string, q types.Quote) string {
	return fmt.Sprintf(`You are an advanced financial AI. Analyze the following stock in depth:
Symbol: %s
Current Price (c): %g
High (h): %g
Low (l): %g
Open (o): %g
Previous Close (pc): %g
Timestamp (t): %d

Provide a succinct yet thorough analysis describing:
- Recent performance
- Notable price changes
- Short-term prediction
- Suggested action (buy, hold, or sell), with reasoning`,
		symbol, q.Current, q.High, q.Low, q.Open, q.PrevClose, q.Timestamp)
}
