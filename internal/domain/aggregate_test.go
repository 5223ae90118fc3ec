package domain

import (
	"math"
	"testing"
	"time"
)

func resultWith(ts time.Time, cost float64, tokens int) Result {
	return Result{Timestamp: ts, Summary: Summary{TotalCost: cost, TotalTokens: tokens}}
}

func TestAggregate(t *testing.T) {
	now := time.Date(2026, 2, 21, 10, 0, 0, 0, time.UTC)
	results := []Result{
		resultWith(now, 2.0, 300),
		resultWith(now.Add(-time.Hour), 1.0, 100),
		resultWith(now.Add(-2*time.Hour), 3.0, 200),
	}

	stats, ok := Aggregate(results)
	if !ok {
		t.Fatal("expected statistics for non-empty results")
	}
	if stats.Count != 3 {
		t.Errorf("Count = %d, want 3", stats.Count)
	}
	if math.Abs(stats.AverageCost-2.0) > 1e-12 {
		t.Errorf("AverageCost = %f, want 2.0", stats.AverageCost)
	}
	if stats.MinCost != 1.0 || stats.MaxCost != 3.0 {
		t.Errorf("cost range = [%f, %f], want [1, 3]", stats.MinCost, stats.MaxCost)
	}
	if stats.AverageTokens != 200 {
		t.Errorf("AverageTokens = %f, want 200", stats.AverageTokens)
	}
	if stats.MinTokens != 100 || stats.MaxTokens != 300 {
		t.Errorf("token range = [%d, %d], want [100, 300]", stats.MinTokens, stats.MaxTokens)
	}
	if !stats.MostRecentTimestamp.Equal(now) {
		t.Errorf("MostRecentTimestamp = %v, want %v", stats.MostRecentTimestamp, now)
	}
}

func TestAggregate_Empty(t *testing.T) {
	if _, ok := Aggregate(nil); ok {
		t.Error("empty results should report ok=false")
	}
}
