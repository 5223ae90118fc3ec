package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// LiteLLMURL is the community-maintained model price list.
// Exported so tests can point it at an httptest server.
var LiteLLMURL = "https://raw.githubusercontent.com/BerriAI/litellm/main/model_prices_and_context_window.json"

// DefaultModelPrefixes selects the bare model names kept from the list.
// Provider-qualified keys such as "vertex_ai/claude-..." never match.
var DefaultModelPrefixes = []string{"claude-", "gpt-", "gemini-"}

var httpClient = &http.Client{
	Timeout: 15 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:    5,
		IdleConnTimeout: 30 * time.Second,
	},
}

type liteLLMEntry struct {
	InputCostPerToken  *float64 `json:"input_cost_per_token"`
	OutputCostPerToken *float64 `json:"output_cost_per_token"`
	CacheCreationCost  *float64 `json:"cache_creation_input_token_cost"`
	CacheReadCost      *float64 `json:"cache_read_input_token_cost"`
}

// FetchLiteLLM downloads the LiteLLM price list and returns the models whose
// name starts with one of prefixes (DefaultModelPrefixes when none are given).
// Prices are converted from per-token to per-1M-tokens.
func FetchLiteLLM(ctx context.Context, prefixes ...string) (PricingTable, error) {
	if len(prefixes) == 0 {
		prefixes = DefaultModelPrefixes
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, LiteLLMURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch litellm pricing: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("litellm pricing: HTTP %d", resp.StatusCode)
	}

	var raw map[string]liteLLMEntry
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode litellm pricing: %w", err)
	}

	return filterModels(raw, prefixes), nil
}

func filterModels(raw map[string]liteLLMEntry, prefixes []string) PricingTable {
	table := make(PricingTable)
	for key, entry := range raw {
		if !hasAnyPrefix(key, prefixes) {
			continue
		}
		if entry.InputCostPerToken == nil || entry.OutputCostPerToken == nil {
			continue
		}

		mp := ModelPricing{
			Input:  *entry.InputCostPerToken * TokensPerMillion,
			Output: *entry.OutputCostPerToken * TokensPerMillion,
		}
		if entry.CacheCreationCost != nil {
			mp.CacheCreation = *entry.CacheCreationCost * TokensPerMillion
		}
		if entry.CacheReadCost != nil {
			mp.CacheRead = *entry.CacheReadCost * TokensPerMillion
		}
		table[key] = mp
	}
	return table
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
