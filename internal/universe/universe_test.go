package universe

import (
	"context"
	"errors"
	"testing"
)

type fakeLister struct {
	symbols []string
	err     error
}

func (f *fakeLister) ListSymbols(_ context.Context, _ string) ([]string, error) {
	return f.symbols, f.err
}

func TestLoadDedupes(t *testing.T) {
	lister := &fakeLister{symbols: []string{"AAPL", "MSFT", "AAPL", "GOOG", "MSFT"}}

	u, err := Load(context.Background(), lister, "US")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if u.Len() != 3 {
		t.Errorf("expected 3 distinct symbols, got %d", u.Len())
	}
	for _, s := range []string{"AAPL", "MSFT", "GOOG"} {
		if !u.Contains(s) {
			t.Errorf("expected universe to contain %s", s)
		}
	}
	if u.Contains("TSLA") {
		t.Error("did not expect universe to contain TSLA")
	}
}

func TestLoadEmptyIsError(t *testing.T) {
	if _, err := Load(context.Background(), &fakeLister{}, "US"); err == nil {
		t.Fatal("expected error for empty universe")
	}
}

func TestLoadPropagatesFetchError(t *testing.T) {
	lister := &fakeLister{err: errors.New("boom")}
	if _, err := Load(context.Background(), lister, "US"); err == nil {
		t.Fatal("expected fetch error to propagate")
	}
}

func TestPickStaysInUniverse(t *testing.T) {
	u := NewStatic([]string{"AAPL", "MSFT", "GOOG"}, 42)

	for i := 0; i < 1000; i++ {
		if s := u.Pick(); !u.Contains(s) {
			t.Fatalf("picked symbol %q outside the universe", s)
		}
	}
}

func TestPickCoversAllSymbols(t *testing.T) {
	symbols := []string{"AAPL", "MSFT", "GOOG"}
	u := NewStatic(symbols, 7)

	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		seen[u.Pick()] = true
	}
	for _, s := range symbols {
		if !seen[s] {
			t.Errorf("expected %s to be sampled at least once in 1000 picks", s)
		}
	}
}
