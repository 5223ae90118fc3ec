package domain

// Delta compares one metric between two results.
type Delta struct {
	A                float64 `json:"calc1" yaml:"calc1"`
	B                float64 `json:"calc2" yaml:"calc2"`
	Difference       float64 `json:"difference" yaml:"difference"`
	PercentageChange float64 `json:"percentageChange" yaml:"percentage_change"`
}

type Comparison struct {
	TotalCost           Delta `json:"totalCost" yaml:"total_cost"`
	TotalTokens         Delta `json:"totalTokens" yaml:"total_tokens"`
	AverageCostPerToken Delta `json:"averageCostPerToken" yaml:"average_cost_per_token"`
}

// Compare reports how b differs from a. A zero base yields a 0% change.
func Compare(a, b Result) Comparison {
	return Comparison{
		TotalCost:           newDelta(a.Summary.TotalCost, b.Summary.TotalCost),
		TotalTokens:         newDelta(float64(a.Summary.TotalTokens), float64(b.Summary.TotalTokens)),
		AverageCostPerToken: newDelta(a.Summary.AverageCostPerToken, b.Summary.AverageCostPerToken),
	}
}

func newDelta(a, b float64) Delta {
	d := Delta{A: a, B: b, Difference: b - a}
	if a != 0 {
		d.PercentageChange = (b - a) / a * 100
	}
	return d
}
