// Package export renders calculation results as CSV, JSON or YAML.
package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/anomredux/tokencalc/internal/domain"
	"github.com/anomredux/tokencalc/internal/i18n"
)

// Costs are written at full precision so the rows can be re-summed.
func formatCost(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// BreakdownRows returns the header and rows of the breakdown export: a
// summary row followed by one row per token category. Token counts are
// totals across the whole quantity.
func BreakdownRows(r domain.Result) [][]string {
	q := strconv.Itoa(r.Summary.Quantity)
	rows := [][]string{
		{i18n.T("csv_type"), i18n.T("csv_description"), i18n.T("csv_quantity"), i18n.T("csv_tokens"), i18n.T("csv_cost")},
		{i18n.T("row_summary"), i18n.T("row_total_cost"), q, strconv.Itoa(r.Summary.TotalTokens), formatCost(r.Summary.TotalCost)},
	}

	categories := []struct {
		key  string
		cost domain.CategoryCost
	}{
		{"row_input", r.Breakdown.Input},
		{"row_output", r.Breakdown.Output},
		{"row_cached", r.Breakdown.Cached},
	}
	for _, c := range categories {
		name := i18n.T(c.key)
		rows = append(rows, []string{
			name,
			i18n.Tf("row_tokens_of", strings.ToLower(name)),
			q,
			strconv.Itoa(c.cost.Tokens * r.Summary.Quantity),
			formatCost(c.cost.TotalCost),
		})
	}
	return rows
}

// ScenarioRows returns the header and one row per scenario.
func ScenarioRows(r domain.Result) [][]string {
	rows := [][]string{{
		i18n.T("csv_quantity"), i18n.T("csv_total_tokens"), i18n.T("csv_total_cost"), i18n.T("csv_cost_per_token"),
	}}
	for _, s := range r.Scenarios {
		rows = append(rows, []string{
			strconv.Itoa(s.Quantity),
			strconv.Itoa(s.TotalTokens),
			formatCost(s.TotalCost),
			formatCost(s.CostPerToken),
		})
	}
	return rows
}

// HistoryRows returns one summary row per history entry.
func HistoryRows(results []domain.Result) [][]string {
	rows := [][]string{{
		i18n.T("csv_id"), i18n.T("csv_timestamp"), i18n.T("csv_model"), i18n.T("csv_quantity"),
		i18n.T("csv_total_tokens"), i18n.T("csv_total_cost"), i18n.T("csv_sale_price"),
	}}
	for _, r := range results {
		rows = append(rows, []string{
			r.ID,
			r.Timestamp.UTC().Format(time.RFC3339),
			r.Parameters.Model,
			strconv.Itoa(r.Summary.Quantity),
			strconv.Itoa(r.Summary.TotalTokens),
			formatCost(r.Summary.TotalCost),
			formatCost(r.Financials.TotalSalePrice),
		})
	}
	return rows
}

// BreakdownCSV writes the breakdown export. Fields containing a comma, quote
// or newline are quoted with inner quotes doubled.
func BreakdownCSV(w io.Writer, r domain.Result) error {
	return writeCSV(w, BreakdownRows(r))
}

func ScenariosCSV(w io.Writer, r domain.Result) error {
	return writeCSV(w, ScenarioRows(r))
}

func HistoryCSV(w io.Writer, results []domain.Result) error {
	return writeCSV(w, HistoryRows(results))
}

func writeCSV(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}
