package noop

import (
	"context"

	"llm-stock-picker/internal/logger"
)

// Advisor is a fallback advisor used when no LLM provider is configured.
// It returns a fixed canned response and never errors, which keeps dry runs
// and tests off the network.
type Advisor struct{}

// New returns an advisor that always answers with a fixed text.
func New() *Advisor {
	return &Advisor{}
}

// Complete implements types.Advisor.
func (a *Advisor) Complete(ctx context.Context, system, user string) (string, error) {
	logger.Debug(ctx, "Noop advisor called - returning canned response")
	return "No analysis available: no LLM provider configured.", nil
}
