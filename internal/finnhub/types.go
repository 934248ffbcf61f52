package finnhub

import "fmt"

// symbolRecord is one entry of the /stock/symbol response. Only the symbol
// itself is consumed; the remaining descriptive fields are ignored.
type symbolRecord struct {
	Symbol        string `json:"symbol"`
	Description   string `json:"description"`
	DisplaySymbol string `json:"displaySymbol"`
	Type          string `json:"type"`
}

// APIError represents a non-success response from the Finnhub API.
type APIError struct {
	StatusCode int
	Endpoint   string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("finnhub API error %d on %s: %s", e.StatusCode, e.Endpoint, e.Body)
}
