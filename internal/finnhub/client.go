package finnhub

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"llm-stock-picker/internal/logger"
	"llm-stock-picker/internal/types"
)

const (
	// DefaultBaseURL is the base URL for the Finnhub API.
	DefaultBaseURL = "https://finnhub.io/api/v1"

	// DefaultTimeout is the default HTTP timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultRateLimit is the default rate limit (requests per second).
	DefaultRateLimit = 10
)

// Client is a Finnhub API client. The token is passed as a query parameter
// on every request.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Option configures the Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the HTTP timeout on the default client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithRateLimit sets a custom rate limit.
func WithRateLimit(requestsPerSecond int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// New creates a new Finnhub API client.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// get performs a GET request to the API.
func (c *Client) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("token", c.apiKey)

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	logger.Debug(ctx, "Finnhub API request", "endpoint", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{
			StatusCode: resp.StatusCode,
			Endpoint:   path,
			Body:       string(body),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// ListSymbols retrieves the full set of symbols traded on an exchange.
// Records without a symbol are skipped.
func (c *Client) ListSymbols(ctx context.Context, exchange string) ([]string, error) {
	params := url.Values{}
	params.Set("exchange", exchange)

	var records []symbolRecord
	if err := c.get(ctx, "/stock/symbol", params, &records); err != nil {
		return nil, fmt.Errorf("list symbols for %s: %w", exchange, err)
	}

	symbols := make([]string, 0, len(records))
	for _, rec := range records {
		if rec.Symbol == "" {
			continue
		}
		symbols = append(symbols, rec.Symbol)
	}
	return symbols, nil
}

// GetQuote retrieves the current quote for a single symbol.
func (c *Client) GetQuote(ctx context.Context, symbol string) (types.Quote, error) {
	params := url.Values{}
	params.Set("symbol", symbol)

	var quote types.Quote
	if err := c.get(ctx, "/quote", params, &quote); err != nil {
		return types.Quote{}, fmt.Errorf("get quote for %s: %w", symbol, err)
	}
	return quote, nil
}
