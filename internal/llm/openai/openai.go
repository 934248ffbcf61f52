package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"llm-stock-picker/internal/logger"
	"llm-stock-picker/internal/store"
)

// Advisor calls the OpenAI chat-completions API and returns the generated
// text. Model, temperature and max_tokens are fixed from config.
type Advisor struct {
	cfg      *store.Config
	endpoint string
	client   *http.Client
}

// New creates an OpenAI-backed advisor. The endpoint can be overridden via
// the OPENAI_API_ENDPOINT env var for proxies and tests.
func New(cfg *store.Config) *Advisor {
	endpoint := "https://api.openai.com/v1/chat/completions"
	if ep := os.Getenv("OPENAI_API_ENDPOINT"); ep != "" {
		endpoint = ep
	}
	return &Advisor{cfg: cfg, endpoint: endpoint, client: http.DefaultClient}
}

// Complete implements types.Advisor.
func (a *Advisor) Complete(ctx context.Context, system, user string) (string, error) {
	ctx, span := logger.StartSpan(ctx, "openai-api-call")
	defer span.End()

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return "", errors.New("OPENAI_API_KEY missing")
	}

	body := map[string]any{
		"model":       a.cfg.LLM.Model,
		"messages":    []map[string]string{{"role": "system", "content": system}, {"role": "user", "content": user}},
		"temperature": a.cfg.LLMTemperature(),
		"max_tokens":  a.cfg.LLMMaxTokens(),
	}
	bb, _ := json.Marshal(body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(bb))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("openai http %d", resp.StatusCode)
	}

	var r struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return "", err
	}

	if len(r.Choices) == 0 {
		return "", errors.New("no choices")
	}

	return strings.TrimSpace(r.Choices[0].Message.Content), nil
}
