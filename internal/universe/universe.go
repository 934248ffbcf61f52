package universe

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"llm-stock-picker/internal/logger"
)

// SymbolLister is the slice of the quote provider the loader needs.
type SymbolLister interface {
	ListSymbols(ctx context.Context, exchange string) ([]string, error)
}

// Universe is the sampling population of valid symbols, fetched once at
// startup and immutable afterwards.
type Universe struct {
	symbols []string
	index   map[string]struct{}
	rng     *rand.Rand
}

// Load fetches the symbol universe for an exchange. Duplicates are dropped
// preserving first-seen order. An empty result is an error: the poll loop
// cannot run without a sampling population.
func Load(ctx context.Context, lister SymbolLister, exchange string) (*Universe, error) {
	raw, err := lister.ListSymbols(ctx, exchange)
	if err != nil {
		return nil, fmt.Errorf("fetch symbol universe: %w", err)
	}

	index := make(map[string]struct{}, len(raw))
	symbols := make([]string, 0, len(raw))
	for _, s := range raw {
		if _, seen := index[s]; seen {
			continue
		}
		index[s] = struct{}{}
		symbols = append(symbols, s)
	}

	if len(symbols) == 0 {
		return nil, fmt.Errorf("symbol universe for exchange %s is empty", exchange)
	}

	logger.Info(ctx, "Symbol universe loaded", "exchange", exchange, "symbols", len(symbols))

	return &Universe{
		symbols: symbols,
		index:   index,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// NewStatic builds a universe from a fixed symbol list with a seeded source,
// used by tests.
func NewStatic(symbols []string, seed int64) *Universe {
	index := make(map[string]struct{}, len(symbols))
	for _, s := range symbols {
		index[s] = struct{}{}
	}
	return &Universe{
		symbols: symbols,
		index:   index,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Pick returns one symbol selected uniformly at random.
func (u *Universe) Pick() string {
	return u.symbols[u.rng.Intn(len(u.symbols))]
}

// Len returns the number of distinct symbols.
func (u *Universe) Len() int {
	return len(u.symbols)
}

// Contains reports whether a symbol is part of the universe.
func (u *Universe) Contains(symbol string) bool {
	_, ok := u.index[symbol]
	return ok
}
