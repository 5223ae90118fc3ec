package pricing

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quantities(t *testing.T, costPerOp float64, tokensPerOp, base int) []int {
	t.Helper()
	var qs []int
	for _, s := range Scenarios(costPerOp, tokensPerOp, base) {
		qs = append(qs, s.Quantity)
	}
	return qs
}

func TestScenarios_Base100(t *testing.T) {
	got := quantities(t, 0.01, 50, 100)
	assert.Equal(t, []int{1, 10, 50, 100, 200, 500, 1000, 5000, 10000}, got)
}

func TestScenarios_Base1(t *testing.T) {
	got := quantities(t, 0.01, 50, 1)
	assert.Equal(t, []int{1, 2, 5, 10, 50, 100, 1000, 10000}, got)
}

func TestScenarios_CappedAtMax(t *testing.T) {
	for _, s := range Scenarios(0.01, 10, 100_000) {
		assert.LessOrEqual(t, s.Quantity, MaxQuantity)
	}
	got := quantities(t, 0.01, 10, 100_000)
	assert.Contains(t, got, 1_000_000)
	assert.NotContains(t, got, 5_000_000)
}

func TestScenarios_DropsBaseAboveMax(t *testing.T) {
	got := quantities(t, 0.01, 10, 2_000_000)
	assert.Equal(t, []int{1, 10, 100, 1000, 10000, 1_000_000}, got)
}

func TestScenarios_Values(t *testing.T) {
	for _, s := range Scenarios(0.002, 40, 7) {
		assert.InDelta(t, 0.002*float64(s.Quantity), s.TotalCost, 1e-12)
		assert.Equal(t, 40*s.Quantity, s.TotalTokens)
		assert.InDelta(t, 0.002/40, s.CostPerToken, 1e-15)
	}
}

func TestScenarios_ZeroTokens(t *testing.T) {
	scenarios := Scenarios(0, 0, 3)
	require.NotEmpty(t, scenarios)
	for _, s := range scenarios {
		assert.Zero(t, s.CostPerToken)
	}
}

func TestScenarios_DistinctSorted(t *testing.T) {
	for _, base := range []int{1, 2, 3, 10, 99, 1000, 20000} {
		got := quantities(t, 1, 1, base)
		assert.True(t, sort.IntsAreSorted(got), "base %d: %v", base, got)
		seen := map[int]bool{}
		for _, q := range got {
			assert.False(t, seen[q], "base %d: duplicate %d", base, q)
			seen[q] = true
		}
		assert.Contains(t, got, base)
	}
}
