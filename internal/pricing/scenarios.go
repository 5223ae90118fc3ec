package pricing

import (
	"math"
	"sort"

	"github.com/anomredux/tokencalc/internal/domain"
)

var (
	scenarioMultipliers = []float64{0.5, 2, 5, 10, 50, 100}
	scenarioFixed       = []int{1, 10, 100, 1000, 10000}
)

// Scenarios projects the per-operation cost onto a spread of quantities: the
// base quantity, multiples of it, and fixed reference volumes. Quantities are
// distinct, sorted ascending and never exceed MaxQuantity.
func Scenarios(costPerOperation float64, tokensPerOperation, base int) []domain.Scenario {
	seen := make(map[int]bool)
	var qs []int
	add := func(q int) {
		if q > MaxQuantity || seen[q] {
			return
		}
		seen[q] = true
		qs = append(qs, q)
	}

	add(base)
	for _, m := range scenarioMultipliers {
		add(max(1, int(math.Round(float64(base)*m))))
	}
	for _, q := range scenarioFixed {
		add(q)
	}
	sort.Ints(qs)

	out := make([]domain.Scenario, 0, len(qs))
	for _, q := range qs {
		totalTokens := tokensPerOperation * q
		totalCost := costPerOperation * float64(q)
		out = append(out, domain.Scenario{
			Quantity:     q,
			TotalCost:    totalCost,
			TotalTokens:  totalTokens,
			CostPerToken: safeDiv(totalCost, float64(totalTokens)),
		})
	}
	return out
}
