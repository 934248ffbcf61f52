package analyzer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"llm-stock-picker/internal/store"
	"llm-stock-picker/internal/types"
)

type fakeAdvisor struct {
	lastSys string
	lastUsr string
	text    string
	err     error
}

func (f *fakeAdvisor) Complete(_ context.Context, system, user string) (string, error) {
	f.lastSys = system
	f.lastUsr = user
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func testConfig() *store.Config {
	cfg := &store.Config{}
	cfg.LLM.System = "You are a helpful financial advisor."
	return cfg
}

func TestAnalyzePromptEmbedsAllQuoteFields(t *testing.T) {
	adv := &fakeAdvisor{text: "solid stock"}
	a := New(adv, testConfig())

	quote := types.Quote{
		Current:   150.5,
		High:      152.25,
		Low:       149.75,
		Open:      151.0,
		PrevClose: 148.5,
		Timestamp: 1700000000,
	}

	res := a.Analyze(context.Background(), "AAPL", quote)

	if res.Failed {
		t.Fatal("did not expect failed analysis")
	}
	if res.Text != "solid stock" {
		t.Errorf("unexpected analysis text: %q", res.Text)
	}

	for _, want := range []string{
		"Symbol: AAPL",
		"Current Price (c): 150.5",
		"High (h): 152.25",
		"Low (l): 149.75",
		"Open (o): 151",
		"Previous Close (pc): 148.5",
		"Timestamp (t): 1700000000",
	} {
		if !strings.Contains(adv.lastUsr, want) {
			t.Errorf("prompt missing %q\nprompt:\n%s", want, adv.lastUsr)
		}
	}

	if adv.lastSys != "You are a helpful financial advisor." {
		t.Errorf("unexpected system prompt: %q", adv.lastSys)
	}
}

func TestAnalyzeFailureYieldsSentinel(t *testing.T) {
	adv := &fakeAdvisor{err: errors.New("provider down")}
	a := New(adv, testConfig())

	res := a.Analyze(context.Background(), "AAPL", types.Quote{Current: 100})

	if !res.Failed {
		t.Fatal("expected failed analysis")
	}
	if res.Text != SentinelText {
		t.Errorf("expected sentinel text %q, got %q", SentinelText, res.Text)
	}
}
