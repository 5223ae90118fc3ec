package domain

import "time"

// Statistics summarises a set of results.
type Statistics struct {
	Count               int       `json:"totalCalculations" yaml:"total_calculations"`
	AverageCost         float64   `json:"averageCost" yaml:"average_cost"`
	MinCost             float64   `json:"minCost" yaml:"min_cost"`
	MaxCost             float64   `json:"maxCost" yaml:"max_cost"`
	AverageTokens       float64   `json:"averageTokens" yaml:"average_tokens"`
	MinTokens           int       `json:"minTokens" yaml:"min_tokens"`
	MaxTokens           int       `json:"maxTokens" yaml:"max_tokens"`
	MostRecentTimestamp time.Time `json:"lastCalculation" yaml:"last_calculation"`
}

// Aggregate computes statistics over results ordered most-recent-first.
// ok is false for an empty slice.
func Aggregate(results []Result) (stats Statistics, ok bool) {
	if len(results) == 0 {
		return Statistics{}, false
	}

	first := results[0].Summary
	stats = Statistics{
		Count:               len(results),
		MinCost:             first.TotalCost,
		MaxCost:             first.TotalCost,
		MinTokens:           first.TotalTokens,
		MaxTokens:           first.TotalTokens,
		MostRecentTimestamp: results[0].Timestamp,
	}

	var costSum float64
	var tokenSum int
	for _, r := range results {
		s := r.Summary
		costSum += s.TotalCost
		tokenSum += s.TotalTokens
		stats.MinCost = min(stats.MinCost, s.TotalCost)
		stats.MaxCost = max(stats.MaxCost, s.TotalCost)
		stats.MinTokens = min(stats.MinTokens, s.TotalTokens)
		stats.MaxTokens = max(stats.MaxTokens, s.TotalTokens)
	}
	stats.AverageCost = costSum / float64(len(results))
	stats.AverageTokens = float64(tokenSum) / float64(len(results))
	return stats, true
}
