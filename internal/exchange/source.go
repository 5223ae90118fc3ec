// Package exchange fetches the USD conversion rate used to show costs in a
// local currency.
package exchange

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// DefaultURL serves the latest quote for a currency pair as
// {"USDBRL": {"bid": "5.43", ...}}.
var DefaultURL = "https://economia.awesomeapi.com.br/json/last/"

const (
	DefaultPair         = "USD-BRL"
	DefaultFallbackRate = 5.5
)

var ErrInvalidRate = errors.New("invalid exchange rate")

// Source returns the current rate for one currency pair.
type Source interface {
	FetchRate(ctx context.Context) (float64, error)
}

// HTTPSource queries an AwesomeAPI-compatible endpoint.
type HTTPSource struct {
	BaseURL string
	Pair    string
	Client  *http.Client
}

func NewHTTPSource(baseURL, pair string) *HTTPSource {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	if pair == "" {
		pair = DefaultPair
	}
	return &HTTPSource{
		BaseURL: baseURL,
		Pair:    pair,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type quote struct {
	Bid string `json:"bid"`
}

func (s *HTTPSource) FetchRate(ctx context.Context) (float64, error) {
	url := strings.TrimSuffix(s.BaseURL, "/") + "/" + s.Pair
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch rate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("fetch rate: HTTP %d", resp.StatusCode)
	}

	var body map[string]quote
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("decode rate: %w", err)
	}

	key := strings.ToUpper(strings.ReplaceAll(s.Pair, "-", ""))
	q, ok := body[key]
	if !ok {
		return 0, fmt.Errorf("%w: pair %s missing from response", ErrInvalidRate, key)
	}
	v, err := strconv.ParseFloat(q.Bid, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, fmt.Errorf("%w: bid %q", ErrInvalidRate, q.Bid)
	}
	return v, nil
}

// Currency returns the quote currency of the pair, e.g. "BRL" for "USD-BRL".
func (s *HTTPSource) Currency() string {
	if i := strings.LastIndex(s.Pair, "-"); i >= 0 {
		return strings.ToUpper(s.Pair[i+1:])
	}
	return strings.ToUpper(s.Pair)
}

// Convert returns usd expressed in the quote currency.
func Convert(usd, rate float64) float64 {
	return usd * rate
}
