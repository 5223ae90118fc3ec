package main

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anomredux/tokencalc/internal/domain"
	"github.com/anomredux/tokencalc/internal/pricing"
)

func TestCalcCommand(t *testing.T) {
	t.Run("explicit prices", func(t *testing.T) {
		cfgPath := writeTestConfig(t, "")
		r := calcJSON(t, cfgPath,
			"--input-price", "3", "--output-price", "15", "--cached-price", "0.3",
			"--input", "Summarize the quarterly report", "--output", "Revenue grew",
			"-q", "1000", "--markup", "50",
		)
		assert.NotEmpty(t, r.ID)
		assert.Equal(t, 3.0, r.Parameters.InputTokenPrice)
		assert.Equal(t, 1000, r.Summary.Quantity)
		assert.Equal(t, 50.0, r.Financials.MarkupPercentage)
		assert.InDelta(t, r.Summary.TotalCost*1.5, r.Financials.TotalSalePrice, 1e-9)
		assert.NotEmpty(t, r.Scenarios)
	})

	t.Run("model preset fills prices", func(t *testing.T) {
		cfgPath := writeTestConfig(t, "")
		r := calcJSON(t, cfgPath, "--model", "gpt-4o-mini", "--input", "hello", "--output", "world")
		assert.Equal(t, 0.15, r.Parameters.InputTokenPrice)
		assert.Equal(t, 0.6, r.Parameters.OutputTokenPrice)
		assert.Equal(t, 0.075, r.Parameters.CachedTokenPrice)
	})

	t.Run("config defaults", func(t *testing.T) {
		cfgPath := writeTestConfig(t, "")
		r := calcJSON(t, cfgPath, "--input", "hello", "--output", "world")
		assert.Equal(t, 3.0, r.Parameters.InputTokenPrice)
		assert.Equal(t, 15.0, r.Parameters.OutputTokenPrice)
		assert.Equal(t, 1, r.Summary.Quantity)
	})

	t.Run("text read from files", func(t *testing.T) {
		cfgPath := writeTestConfig(t, "")
		in := filepath.Join(t.TempDir(), "prompt.txt")
		require.NoError(t, os.WriteFile(in, []byte("a prompt from disk"), 0600))
		r := calcJSON(t, cfgPath, "--input-file", in, "--output", "ok")
		assert.Equal(t, "a prompt from disk", r.Parameters.InputText)
	})

	t.Run("invalid parameters are not recorded", func(t *testing.T) {
		cfgPath := writeTestConfig(t, "")
		_, err := run(t, cfgPath, "calc", "--input", "hello", "-q", "0")
		require.Error(t, err)
		assert.ErrorIs(t, err, pricing.ErrInvalidParameters)

		out, err := run(t, cfgPath, "history", "list")
		require.NoError(t, err)
		assert.Contains(t, out, "No calculations")
	})

	t.Run("text output", func(t *testing.T) {
		cfgPath := writeTestConfig(t, "")
		out, err := run(t, cfgPath, "calc", "--model", "claude-sonnet-4-6", "--input", "hello", "--output", "world", "-q", "10")
		require.NoError(t, err)
		assert.Contains(t, out, "claude-sonnet-4-6")
		assert.Contains(t, out, "$")
	})

	t.Run("csv output", func(t *testing.T) {
		cfgPath := writeTestConfig(t, "")
		out, err := run(t, cfgPath, "calc", "--format", "csv", "--input", "hello, \"world\"", "--output", "ok", "-q", "100")
		require.NoError(t, err)
		parts := strings.SplitN(out, "\n\n", 2)
		require.Len(t, parts, 2)

		breakdown, err := csv.NewReader(strings.NewReader(parts[0])).ReadAll()
		require.NoError(t, err)
		assert.Len(t, breakdown, 5)

		scenarios, err := csv.NewReader(strings.NewReader(parts[1])).ReadAll()
		require.NoError(t, err)
		assert.Greater(t, len(scenarios), 1)
	})

	t.Run("convert shows local currency", func(t *testing.T) {
		srv := rateServer(t, "5.00")
		cfgPath := writeTestConfig(t, srv.URL)
		out, err := run(t, cfgPath, "calc", "--input", "hello", "--output", "world", "--convert")
		require.NoError(t, err)
		assert.Contains(t, out, "BRL")
	})
}

func TestBatchCommand(t *testing.T) {
	cfgPath := writeTestConfig(t, "")
	dir := t.TempDir()
	lines := []string{
		`{"inputTokenPrice":3,"outputTokenPrice":15,"cachedTokenPrice":0.3,"inputText":"first","outputText":"one","quantity":10}`,
		`# comment`,
		`{"inputTokenPrice":3,"outputTokenPrice":15,"cachedTokenPrice":0.3,"inputText":"first","outputText":"one","quantity":10}`,
		`{"model":"gpt-4o","inputText":"second","outputText":"two","quantity":5}`,
		`{"inputTokenPrice":3,"outputTokenPrice":15,"cachedTokenPrice":0.3,"inputText":"bad","outputText":"qty","quantity":0}`,
		`{not json`,
		`{}`,
	}
	path := filepath.Join(dir, "requests.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0600))

	out, err := run(t, cfgPath, "batch", path, "--format", "json", "--concurrency", "2")
	require.NoError(t, err)

	var rep batchOutput
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 2, rep.Succeeded)
	assert.Equal(t, 1, rep.Failed)
	assert.Equal(t, 1, rep.Skipped)
	assert.Equal(t, 1, rep.ParseErrors)
	require.Len(t, rep.Items, 3)
	assert.Equal(t, path+":1", rep.Items[0].Source)
	assert.Equal(t, path+":4", rep.Items[1].Source)
	assert.NotEmpty(t, rep.Items[2].Error)

	out, err = run(t, cfgPath, "history", "list", "--format", "json")
	require.NoError(t, err)
	var entries []domain.Result
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 2)
	// Recorded in input order, so the last record is the newest entry.
	assert.Equal(t, "second", entries[0].Parameters.InputText)
	assert.Equal(t, "first", entries[1].Parameters.InputText)
}

func TestBatchCommand_NoRecord(t *testing.T) {
	cfgPath := writeTestConfig(t, "")
	path := filepath.Join(t.TempDir(), "one.jsonl")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"inputTokenPrice":1,"outputTokenPrice":2,"cachedTokenPrice":0.1,"inputText":"x","outputText":"y","quantity":1}`), 0600))

	out, err := run(t, cfgPath, "batch", path, "--no-record")
	require.NoError(t, err)
	assert.Contains(t, out, "SOURCE")
	assert.Contains(t, out, "1 ok, 0 failed")

	out, err = run(t, cfgPath, "history", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No calculations")
}

func TestBatchCommand_MissingPath(t *testing.T) {
	_, err := run(t, writeTestConfig(t, ""), "batch", filepath.Join(t.TempDir(), "nope.jsonl"))
	require.Error(t, err)
}

func TestHistoryCommands(t *testing.T) {
	cfgPath := writeTestConfig(t, "")
	a := calcJSON(t, cfgPath, "--input", "short", "--output", "x", "-q", "1")
	b := calcJSON(t, cfgPath, "--input", "a much longer prompt than the first one", "--output", "x", "-q", "2")

	t.Run("list text", func(t *testing.T) {
		out, err := run(t, cfgPath, "history", "list")
		require.NoError(t, err)
		assert.Contains(t, out, "ID")
		assert.Contains(t, out, shortID(a.ID))
		assert.Contains(t, out, shortID(b.ID))
		assert.Less(t, strings.Index(out, shortID(b.ID)), strings.Index(out, shortID(a.ID)))
	})

	t.Run("list limit", func(t *testing.T) {
		out, err := run(t, cfgPath, "history", "list", "-n", "1", "--format", "csv")
		require.NoError(t, err)
		rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, b.ID, rows[1][0])
	})

	t.Run("list bad date", func(t *testing.T) {
		_, err := run(t, cfgPath, "history", "list", "--since", "yesterday")
		require.Error(t, err)
	})

	t.Run("show by prefix", func(t *testing.T) {
		out, err := run(t, cfgPath, "history", "show", shortID(a.ID), "--format", "json")
		require.NoError(t, err)
		var r domain.Result
		require.NoError(t, json.Unmarshal([]byte(out), &r))
		assert.Equal(t, a.ID, r.ID)
	})

	t.Run("show unknown", func(t *testing.T) {
		_, err := run(t, cfgPath, "history", "show", "does-not-exist")
		require.Error(t, err)
	})

	t.Run("stats", func(t *testing.T) {
		out, err := run(t, cfgPath, "history", "stats")
		require.NoError(t, err)
		assert.Contains(t, out, "Calculations")
		assert.Contains(t, out, "2")
	})

	t.Run("export to file", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "history.csv")
		_, err := run(t, cfgPath, "history", "export", "--out", dest)
		require.NoError(t, err)
		data, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.Contains(t, string(data), a.ID)
		assert.Contains(t, string(data), b.ID)
	})

	t.Run("compare", func(t *testing.T) {
		out, err := run(t, cfgPath, "compare", a.ID, b.ID, "--format", "json")
		require.NoError(t, err)
		var c domain.Comparison
		require.NoError(t, json.Unmarshal([]byte(out), &c))
		assert.Equal(t, a.Summary.TotalCost, c.TotalCost.A)
		assert.Equal(t, b.Summary.TotalCost, c.TotalCost.B)
		assert.InDelta(t, b.Summary.TotalCost-a.Summary.TotalCost, c.TotalCost.Difference, 1e-12)

		out, err = run(t, cfgPath, "compare", shortID(a.ID), shortID(b.ID))
		require.NoError(t, err)
		assert.Contains(t, out, "Total cost")
		assert.Contains(t, out, "%")
	})

	t.Run("clear requires confirmation", func(t *testing.T) {
		_, err := run(t, cfgPath, "history", "clear")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--yes")

		out, err := run(t, cfgPath, "history", "clear", "--yes")
		require.NoError(t, err)
		assert.Contains(t, out, "Deleted 2 entries")

		out, err = run(t, cfgPath, "history", "stats")
		require.NoError(t, err)
		assert.Contains(t, out, "No calculations")
	})
}

func TestFindResult_Ambiguous(t *testing.T) {
	cfgPath := writeTestConfig(t, "")
	calcJSON(t, cfgPath, "--input", "a", "--output", "b")
	calcJSON(t, cfgPath, "--input", "c", "--output", "d")

	// The empty prefix matches every entry.
	_, err := run(t, cfgPath, "history", "show", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errAmbiguousID)
}

func rateServer(t *testing.T, bid string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/USD-BRL") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"USDBRL":{"bid":"` + bid + `"}}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRateCommand(t *testing.T) {
	t.Run("fetches", func(t *testing.T) {
		srv := rateServer(t, "5.1234")
		out, err := run(t, writeTestConfig(t, srv.URL), "rate", "--format", "json")
		require.NoError(t, err)
		var got rateOutput
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, "BRL", got.Currency)
		assert.Equal(t, 5.1234, got.Rate)
		assert.False(t, got.Fallback)
		assert.NotNil(t, got.UpdatedAt)
	})

	t.Run("failure is reported", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		t.Cleanup(srv.Close)

		_, err := run(t, writeTestConfig(t, srv.URL), "rate")
		require.Error(t, err)

		out, err := run(t, writeTestConfig(t, srv.URL), "rate", "--fallback")
		require.NoError(t, err)
		assert.Contains(t, out, "BRL 5.50")
		assert.Contains(t, out, "fallback")
	})
}

func TestPresetsCommand(t *testing.T) {
	cfgPath := writeTestConfig(t, "")

	t.Run("builtin", func(t *testing.T) {
		out, err := run(t, cfgPath, "presets")
		require.NoError(t, err)
		assert.Contains(t, out, "MODEL")
		assert.Contains(t, out, "gpt-4o-mini")
		assert.Contains(t, out, "claude-haiku-4-5")
	})

	t.Run("prefix filter", func(t *testing.T) {
		out, err := run(t, cfgPath, "presets", "gemini", "--format", "json")
		require.NoError(t, err)
		var rows []presetRow
		require.NoError(t, json.Unmarshal([]byte(out), &rows))
		require.Len(t, rows, 1)
		assert.Equal(t, "gemini-2.5-pro", rows[0].Model)
	})

	t.Run("no match", func(t *testing.T) {
		out, err := run(t, cfgPath, "presets", "llama")
		require.NoError(t, err)
		assert.Contains(t, out, "No matching presets")
	})

	t.Run("remote merge", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{
				"gpt-5": {"input_cost_per_token": 0.00000125, "output_cost_per_token": 0.00001},
				"mistral-large": {"input_cost_per_token": 0.000002, "output_cost_per_token": 0.000006}
			}`))
		}))
		t.Cleanup(srv.Close)
		orig := pricing.LiteLLMURL
		pricing.LiteLLMURL = srv.URL
		t.Cleanup(func() { pricing.LiteLLMURL = orig })

		out, err := run(t, cfgPath, "presets", "gpt-5", "--remote", "--format", "json")
		require.NoError(t, err)
		var rows []presetRow
		require.NoError(t, json.Unmarshal([]byte(out), &rows))
		require.Len(t, rows, 1)
		assert.InDelta(t, 1.25, rows[0].Input, 1e-9)
		assert.InDelta(t, 10.0, rows[0].Output, 1e-9)
	})
}
