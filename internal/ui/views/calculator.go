package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/anomredux/tokencalc/internal/domain"
	"github.com/anomredux/tokencalc/internal/exchange"
	"github.com/anomredux/tokencalc/internal/i18n"
	"github.com/anomredux/tokencalc/internal/theme"
	"github.com/anomredux/tokencalc/internal/ui/components"
)

// CalculatorView shows the current result: summary, per-category breakdown
// and resale figures.
type CalculatorView struct {
	result   *domain.Result
	rate     Rate
	AnimTick uint
}

func NewCalculatorView() *CalculatorView {
	return &CalculatorView{}
}

func (v *CalculatorView) SetResult(r domain.Result) { v.result = &r }

func (v *CalculatorView) SetRate(r Rate) { v.rate = r }

func (v *CalculatorView) Update(tea.Msg) tea.Cmd { return nil }

func (v *CalculatorView) Render(width, height int, compact bool) string {
	cardWidth := width - 4

	if v.result == nil {
		card := components.Card{
			Title:   theme.AnimatedGradientText(i18n.T("summary"), v.AnimTick),
			Width:   cardWidth,
			Compact: compact,
			Content: theme.MutedStyle.Render(i18n.T("no_result")),
		}
		return card.Render()
	}

	sections := []string{
		v.renderSummary(cardWidth, compact),
		v.renderBreakdown(cardWidth, compact),
		v.renderFinancials(cardWidth, compact),
	}
	return strings.Join(sections, "\n")
}

func (v *CalculatorView) renderSummary(cardWidth int, compact bool) string {
	r := v.result
	title := i18n.T("summary")
	if r.Parameters.Model != "" {
		title += " · " + r.Parameters.Model
	}
	card := components.Card{
		Title:   theme.AnimatedGradientText(title, v.AnimTick),
		Width:   cardWidth,
		Compact: compact,
	}
	if v.rate.valid() {
		card.Badge = theme.MutedStyle.Render(i18n.Tf("exchange_rate", v.rate.Currency, v.rate.Value))
	}

	s := r.Summary
	total := components.StatCard{
		Value: components.FormatUSD(s.TotalCost),
		Label: i18n.T("total_cost"),
		Color: theme.ColorCost,
	}
	if v.rate.valid() {
		total.Sub = components.FormatMoney(v.rate.Currency, exchange.Convert(s.TotalCost, v.rate.Value))
	}
	stats := []components.StatCard{
		total,
		{Value: components.FormatNumber(s.TotalTokens), Label: i18n.T("total_tokens"), Color: theme.ColorTokens},
		{Value: components.FormatUSD(s.CostPerOperation), Label: i18n.T("cost_per_operation"), Color: theme.ColorLavender},
		{Value: components.FormatUSD(s.AverageCostPerToken), Label: i18n.T("avg_cost_per_token"), Color: theme.ColorMauve},
		{Value: components.FormatNumber(s.Quantity), Label: i18n.T("quantity"), Color: theme.ColorGold},
	}
	innerW := card.InnerWidth()
	card.Content = components.RenderStatRow(stats, innerW, 2)
	return card.Render()
}

func (v *CalculatorView) renderBreakdown(cardWidth int, compact bool) string {
	card := components.Card{
		Title:   theme.GradientText(i18n.T("breakdown"), theme.ColorLavender, theme.ColorSkyBlue),
		Width:   cardWidth,
		Compact: compact,
	}
	b := v.result.Breakdown

	rows := [][]string{
		categoryRow("input", i18n.T("row_input"), b.Input),
		categoryRow("output", i18n.T("row_output"), b.Output),
		categoryRow("cached", i18n.T("row_cached"), b.Cached),
	}

	labelW := max(card.InnerWidth()-4*15, 12)
	card.Content = components.Table{
		Columns: []components.Column{
			{Title: i18n.T("tokens"), Width: labelW},
			{Title: i18n.T("tokens_per_operation"), Width: 14, Numeric: true},
			{Title: i18n.T("price_per_million"), Width: 14, Numeric: true},
			{Title: i18n.T("cost_per_operation"), Width: 14, Numeric: true},
			{Title: i18n.T("total_cost"), Width: 14, Numeric: true},
		},
		Rows: rows,
	}.Render()
	return card.Render()
}

func categoryRow(key, label string, c domain.CategoryCost) []string {
	color := theme.CategoryColors[key]
	name := components.Swatch(color) + " " + lipgloss.NewStyle().Foreground(theme.ColorBodyText).Render(label)
	return []string{
		name,
		components.FormatNumber(c.Tokens),
		components.FormatUSD(c.PricePerMillion),
		components.FormatUSD(c.Cost),
		lipgloss.NewStyle().Foreground(color).Render(components.FormatUSD(c.TotalCost)),
	}
}

func (v *CalculatorView) renderFinancials(cardWidth int, compact bool) string {
	card := components.Card{
		Title:   theme.GradientText(i18n.T("financials"), theme.ColorMauve, theme.ColorPeach),
		Width:   cardWidth,
		Compact: compact,
	}
	f := v.result.Financials

	sale := components.StatCard{
		Value: components.FormatUSD(f.TotalSalePrice),
		Label: i18n.T("sale_price"),
		Color: theme.ColorGold,
	}
	if v.rate.valid() {
		sale.Sub = components.FormatMoney(v.rate.Currency, exchange.Convert(f.TotalSalePrice, v.rate.Value))
	}
	top := []components.StatCard{
		sale,
		{Value: components.FormatUSD(f.GrossProfit), Label: i18n.T("gross_profit"), Color: theme.SignedColor(f.GrossProfit)},
		{Value: components.FormatPercent(f.Margin, false), Label: i18n.T("margin"), Color: theme.SignedColor(f.Margin)},
		{Value: components.FormatPercent(f.MarkupPercentage, false), Label: i18n.T("markup"), Color: theme.ColorLavender},
	}
	bottom := []components.StatCard{
		{Value: components.FormatRatio(f.TokensPerCredit), Label: i18n.T("tokens_per_credit"), Color: theme.ColorSkyBlue},
		{Value: components.FormatRatio(f.OperationsPerCredit), Label: i18n.T("operations_per_credit"), Color: theme.ColorSkyBlue},
		{Value: components.FormatUSD(f.PricePerOperation), Label: i18n.T("price_per_operation"), Color: theme.ColorMauve},
	}

	innerW := card.InnerWidth()
	content := components.RenderStatRow(top, innerW, 2)
	if !compact {
		content += "\n\n" + components.RenderStatRow(bottom, innerW, 2)
	}
	card.Content = content
	return card.Render()
}
