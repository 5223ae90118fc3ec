package pricing

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func serveLiteLLM(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	origURL := LiteLLMURL
	LiteLLMURL = ts.URL
	t.Cleanup(func() { LiteLLMURL = origURL })
}

func TestFetchLiteLLM(t *testing.T) {
	mockData := map[string]any{
		"claude-sonnet-4-6": map[string]any{
			"input_cost_per_token":            3e-06,
			"output_cost_per_token":           1.5e-05,
			"cache_creation_input_token_cost": 3.75e-06,
			"cache_read_input_token_cost":     3e-07,
		},
		"gpt-4o": map[string]any{
			"input_cost_per_token":        2.5e-06,
			"output_cost_per_token":       1e-05,
			"cache_read_input_token_cost": 1.25e-06,
		},
		"anthropic.claude-sonnet-4-6": map[string]any{
			"input_cost_per_token":  3e-06,
			"output_cost_per_token": 1.5e-05,
		},
		"vertex_ai/claude-sonnet-4-6": map[string]any{
			"input_cost_per_token":  3e-06,
			"output_cost_per_token": 1.5e-05,
		},
		"mistral-large": map[string]any{
			"input_cost_per_token":  2e-06,
			"output_cost_per_token": 6e-06,
		},
	}
	serveLiteLLM(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(mockData)
	})

	table, err := FetchLiteLLM(context.Background())
	if err != nil {
		t.Fatalf("FetchLiteLLM failed: %v", err)
	}

	if len(table) != 2 {
		t.Errorf("expected 2 models, got %d: %v", len(table), table.Names())
	}

	sonnet, ok := table["claude-sonnet-4-6"]
	if !ok {
		t.Fatal("missing claude-sonnet-4-6")
	}
	if !almostEqual(sonnet.Input, 3.0, 0.001) {
		t.Errorf("sonnet Input = %f, want 3.0", sonnet.Input)
	}
	if !almostEqual(sonnet.Output, 15.0, 0.001) {
		t.Errorf("sonnet Output = %f, want 15.0", sonnet.Output)
	}
	if !almostEqual(sonnet.CacheRead, 0.30, 0.001) {
		t.Errorf("sonnet CacheRead = %f, want 0.30", sonnet.CacheRead)
	}

	gpt, ok := table["gpt-4o"]
	if !ok {
		t.Fatal("missing gpt-4o")
	}
	if gpt.CacheCreation != 0 {
		t.Errorf("gpt-4o CacheCreation = %f, want 0", gpt.CacheCreation)
	}
}

func TestFetchLiteLLM_CustomPrefixes(t *testing.T) {
	serveLiteLLM(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"claude-haiku-4-5": map[string]any{"input_cost_per_token": 1e-06, "output_cost_per_token": 5e-06},
			"mistral-large":    map[string]any{"input_cost_per_token": 2e-06, "output_cost_per_token": 6e-06},
		})
	})

	table, err := FetchLiteLLM(context.Background(), "mistral-")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := table["mistral-large"]; !ok || len(table) != 1 {
		t.Errorf("expected only mistral-large, got %v", table.Names())
	}
}

func TestFetchLiteLLM_HTTPError(t *testing.T) {
	serveLiteLLM(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	if _, err := FetchLiteLLM(context.Background()); err == nil {
		t.Error("expected error on HTTP 500")
	}
}

func TestFetchLiteLLM_BadJSON(t *testing.T) {
	serveLiteLLM(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	})

	if _, err := FetchLiteLLM(context.Background()); err == nil {
		t.Error("expected decode error")
	}
}

func TestFilterModels_MissingPrices(t *testing.T) {
	inputOnly := 3e-06
	raw := map[string]liteLLMEntry{
		"claude-incomplete": {InputCostPerToken: &inputOnly},
	}

	table := filterModels(raw, DefaultModelPrefixes)
	if len(table) != 0 {
		t.Errorf("model without output price should be excluded, got %d", len(table))
	}
}
