package llm

import (
	"context"
	"fmt"

	"llm-stock-picker/internal/llm/claude"
	"llm-stock-picker/internal/llm/gemini"
	"llm-stock-picker/internal/llm/llmobs"
	"llm-stock-picker/internal/llm/noop"
	"llm-stock-picker/internal/llm/openai"
	"llm-stock-picker/internal/logger"
	"llm-stock-picker/internal/store"
	"llm-stock-picker/internal/types"
)

// New creates the advisor selected by llm.provider and wraps it with
// observability middleware.
func New(ctx context.Context, cfg *store.Config) (types.Advisor, error) {
	var advisor types.Advisor

	switch cfg.LLM.Provider {
	case "OPENAI":
		advisor = openai.New(cfg)
	case "CLAUDE":
		advisor = claude.New(cfg)
	case "GEMINI":
		g, err := gemini.New(ctx, cfg)
		if err != nil {
			return nil, err
		}
		advisor = g
	case "NOOP":
		advisor = noop.New()
		logger.Warn(ctx, "No LLM provider configured - using Noop advisor (canned responses)")
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLM.Provider)
	}

	return llmobs.Wrap(advisor), nil
}
