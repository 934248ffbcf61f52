package finnhub_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"llm-stock-picker/internal/finnhub"
)

func TestListSymbols(t *testing.T) {
	// Arrange: a fake Finnhub that records the request.
	var gotPath, gotToken, gotExchange string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.URL.Query().Get("token")
		gotExchange = r.URL.Query().Get("exchange")
		fmt.Fprint(w, `[{"symbol":"AAPL"},{"symbol":"MSFT"},{"description":"no symbol"},{"symbol":"GOOG"}]`)
	}))
	defer srv.Close()

	client := finnhub.New("secret-token", finnhub.WithBaseURL(srv.URL))

	// Act
	symbols, err := client.ListSymbols(context.Background(), "US")

	// Assert: token as query parameter, empty records skipped.
	require.NoError(t, err)
	require.Equal(t, "/stock/symbol", gotPath)
	require.Equal(t, "secret-token", gotToken)
	require.Equal(t, "US", gotExchange)
	require.Equal(t, []string{"AAPL", "MSFT", "GOOG"}, symbols)
}

func TestGetQuote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/quote", r.URL.Path)
		require.Equal(t, "AAPL", r.URL.Query().Get("symbol"))
		require.Equal(t, "secret-token", r.URL.Query().Get("token"))
		fmt.Fprint(w, `{"c":150.5,"h":152.0,"l":149.0,"o":151.0,"pc":148.5,"t":1700000000}`)
	}))
	defer srv.Close()

	client := finnhub.New("secret-token", finnhub.WithBaseURL(srv.URL))

	quote, err := client.GetQuote(context.Background(), "AAPL")
	require.NoError(t, err)
	require.Equal(t, 150.5, quote.Current)
	require.Equal(t, 152.0, quote.High)
	require.Equal(t, 149.0, quote.Low)
	require.Equal(t, 151.0, quote.Open)
	require.Equal(t, 148.5, quote.PrevClose)
	require.Equal(t, int64(1700000000), quote.Timestamp)
}

func TestGetQuoteAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid API key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := finnhub.New("bad-token", finnhub.WithBaseURL(srv.URL))

	_, err := client.GetQuote(context.Background(), "AAPL")
	require.Error(t, err)

	var apiErr *finnhub.APIError
	require.True(t, errors.As(err, &apiErr), "expected *APIError, got %T", err)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.Equal(t, "/quote", apiErr.Endpoint)
}

func TestContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	defer srv.Close()

	client := finnhub.New("token", finnhub.WithBaseURL(srv.URL))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetQuote(ctx, "AAPL")
	require.Error(t, err)
}
