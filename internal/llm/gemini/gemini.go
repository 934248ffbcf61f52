package gemini

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"

	"llm-stock-picker/internal/logger"
	"llm-stock-picker/internal/store"
)

// Advisor calls the Google Gemini API and returns the generated text.
type Advisor struct {
	cfg    *store.Config
	client *genai.Client
}

// New creates a Gemini-backed advisor. The API key is read from the
// GEMINI_API_KEY env var.
func New(ctx context.Context, cfg *store.Config) (*Advisor, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Advisor{cfg: cfg, client: client}, nil
}

// Complete implements types.Advisor.
func (a *Advisor) Complete(ctx context.Context, system, user string) (string, error) {
	ctx, span := logger.StartSpan(ctx, "gemini-api-call")
	defer span.End()

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(a.cfg.LLMTemperature()),
		MaxOutputTokens: int32(a.cfg.LLMMaxTokens()),
	}
	if system != "" {
		config.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	contents := []*genai.Content{
		genai.NewContentFromText(user, genai.RoleUser),
	}

	resp, err := a.client.Models.GenerateContent(ctx, a.cfg.LLM.Model, contents, config)
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.New("empty response from Gemini API")
	}
	return text, nil
}
