package llm

import (
	"context"
	"testing"

	"llm-stock-picker/internal/store"
)

func configFor(provider string) *store.Config {
	cfg := &store.Config{}
	cfg.LLM.Provider = provider
	cfg.LLM.Model = "test-model"
	return cfg
}

func TestNewNoopProvider(t *testing.T) {
	advisor, err := New(context.Background(), configFor("NOOP"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if advisor == nil {
		t.Fatal("expected advisor")
	}

	text, err := advisor.Complete(context.Background(), "s", "u")
	if err != nil {
		t.Fatalf("unexpected completion error: %v", err)
	}
	if text == "" {
		t.Error("expected canned response text")
	}
}

func TestNewOpenAIProvider(t *testing.T) {
	advisor, err := New(context.Background(), configFor("OPENAI"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if advisor == nil {
		t.Fatal("expected advisor")
	}
}

func TestNewClaudeProvider(t *testing.T) {
	advisor, err := New(context.Background(), configFor("CLAUDE"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if advisor == nil {
		t.Fatal("expected advisor")
	}
}

func TestNewUnknownProviderIsError(t *testing.T) {
	for _, provider := range []string{"OPENAIII", "llama", ""} {
		advisor, err := New(context.Background(), configFor(provider))
		if err == nil {
			t.Errorf("expected error for provider %q, got advisor %T", provider, advisor)
		}
		if advisor != nil {
			t.Errorf("expected nil advisor for provider %q", provider)
		}
	}
}
