// Package batch runs many parameter sets through the calculator at once.
package batch

import (
	"runtime"

	"github.com/anomredux/tokencalc/internal/domain"
	"github.com/anomredux/tokencalc/internal/parser"
	"github.com/anomredux/tokencalc/internal/pricing"
	"github.com/sourcegraph/conc/iter"
)

// Item is the outcome of one record.
type Item struct {
	Source string
	Result domain.Result
	Err    error
}

// Report summarizes a run. Items keep the input order.
type Report struct {
	Items     []Item
	Succeeded int
	Failed    int
	TotalCost float64
}

// Results returns the successful results in input order.
func (r Report) Results() []domain.Result {
	out := make([]domain.Result, 0, r.Succeeded)
	for _, it := range r.Items {
		if it.Err == nil {
			out = append(out, it.Result)
		}
	}
	return out
}

type Runner struct {
	calc        *pricing.Calculator
	concurrency int
}

// NewRunner returns a runner using up to concurrency goroutines;
// zero or less means GOMAXPROCS.
func NewRunner(calc *pricing.Calculator, concurrency int) *Runner {
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}
	return &Runner{calc: calc, concurrency: concurrency}
}

// Run calculates every record. Invalid records yield an Item with Err set;
// they never stop the run.
func (r *Runner) Run(records []parser.Record) Report {
	mapper := iter.Mapper[parser.Record, Item]{MaxGoroutines: r.concurrency}
	items := mapper.Map(records, func(rec *parser.Record) Item {
		res, err := r.calc.Calculate(rec.Params)
		return Item{Source: rec.Source, Result: res, Err: err}
	})

	rep := Report{Items: items}
	for _, it := range items {
		if it.Err != nil {
			rep.Failed++
			continue
		}
		rep.Succeeded++
		rep.TotalCost += it.Result.Summary.TotalCost
	}
	return rep
}
