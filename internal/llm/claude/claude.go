package claude

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"llm-stock-picker/internal/logger"
	"llm-stock-picker/internal/store"
)

// Advisor calls the Anthropic Messages API and returns the generated text.
type Advisor struct {
	cfg    *store.Config
	client anthropic.Client
}

// New creates a Claude-backed advisor. The API key is read from the
// CLAUDE_API_KEY env var; an empty key is passed through and rejected by the
// provider on first use.
func New(cfg *store.Config) *Advisor {
	client := anthropic.NewClient(
		option.WithAPIKey(os.Getenv("CLAUDE_API_KEY")),
	)
	return &Advisor{cfg: cfg, client: client}
}

// Complete implements types.Advisor.
func (a *Advisor) Complete(ctx context.Context, system, user string) (string, error) {
	ctx, span := logger.StartSpan(ctx, "claude-api-call")
	defer span.End()

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(a.cfg.LLM.Model),
		MaxTokens: int64(a.cfg.LLMMaxTokens()),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
		Temperature: anthropic.Float(float64(a.cfg.LLMTemperature())),
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{
			{Text: system},
		}
	}

	resp, err := a.client.Messages.New(ctx, params)
	if err != nil {
		return "", err
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	if text.Len() == 0 {
		return "", errors.New("empty response from Claude API")
	}

	return strings.TrimSpace(text.String()), nil
}
