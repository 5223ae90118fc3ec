package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_RecordCalculation(t *testing.T) {
	c := NewCollector()
	c.RecordCalculation("claude-sonnet-4-6", 0.0002)
	c.RecordCalculation("claude-sonnet-4-6", 0.5)
	c.RecordCalculation("", 1.2)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.calculations.WithLabelValues("claude-sonnet-4-6")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.calculations.WithLabelValues("custom")))
	assert.Equal(t, 2, testutil.CollectAndCount(c.calculationCost))
}

func TestCollector_Gauges(t *testing.T) {
	c := NewCollector()
	c.SetHistorySize(12)
	c.RecordValidationFailure()
	c.RecordExchangeFailure()
	c.RecordExchangeFailure()

	assert.Equal(t, 12.0, testutil.ToFloat64(c.historyEntries))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.validationFailures))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.exchangeFailures))
}

func TestCollector_WriteTextfile(t *testing.T) {
	c := NewCollector()
	c.SetHistorySize(3)

	path := filepath.Join(t.TempDir(), "textfile", "tokencalc.prom")
	require.NoError(t, c.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "tokencalc_history_entries 3"))
}
