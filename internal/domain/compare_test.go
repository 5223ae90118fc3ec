package domain

import (
	"math"
	"testing"
)

func TestCompare(t *testing.T) {
	a := Result{Summary: Summary{TotalCost: 2.0, TotalTokens: 100, AverageCostPerToken: 0.02}}
	b := Result{Summary: Summary{TotalCost: 3.0, TotalTokens: 50, AverageCostPerToken: 0.06}}

	c := Compare(a, b)

	if c.TotalCost.Difference != 1.0 {
		t.Errorf("cost difference = %f, want 1.0", c.TotalCost.Difference)
	}
	if math.Abs(c.TotalCost.PercentageChange-50) > 1e-9 {
		t.Errorf("cost change = %f%%, want 50%%", c.TotalCost.PercentageChange)
	}
	if c.TotalTokens.Difference != -50 {
		t.Errorf("token difference = %f, want -50", c.TotalTokens.Difference)
	}
	if math.Abs(c.TotalTokens.PercentageChange+50) > 1e-9 {
		t.Errorf("token change = %f%%, want -50%%", c.TotalTokens.PercentageChange)
	}
	if math.Abs(c.AverageCostPerToken.PercentageChange-200) > 1e-9 {
		t.Errorf("avg cost change = %f%%, want 200%%", c.AverageCostPerToken.PercentageChange)
	}
}

func TestCompare_ZeroBase(t *testing.T) {
	c := Compare(Result{}, Result{Summary: Summary{TotalCost: 5}})
	if c.TotalCost.PercentageChange != 0 {
		t.Errorf("zero base should give 0%% change, got %f", c.TotalCost.PercentageChange)
	}
	if c.TotalCost.Difference != 5 {
		t.Errorf("difference = %f, want 5", c.TotalCost.Difference)
	}
}
