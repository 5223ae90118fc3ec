package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/anomredux/tokencalc/internal/domain"
	"github.com/anomredux/tokencalc/internal/exchange"
	"github.com/anomredux/tokencalc/internal/i18n"
	"github.com/anomredux/tokencalc/internal/theme"
	"github.com/anomredux/tokencalc/internal/ui/components"
)

// ScenariosView lists the projections of the current result at other
// quantities. The row matching the calculated quantity is highlighted.
type ScenariosView struct {
	scenarios []domain.Scenario
	base      int
	rate      Rate
	cursor    int
	AnimTick  uint
}

func NewScenariosView() *ScenariosView {
	return &ScenariosView{}
}

func (v *ScenariosView) SetResult(r domain.Result) {
	v.scenarios = r.Scenarios
	v.base = r.Summary.Quantity
	v.cursor = 0
	for i, s := range v.scenarios {
		if s.Quantity == v.base {
			v.cursor = i
			break
		}
	}
}

func (v *ScenariosView) SetRate(r Rate) { v.rate = r }

func (v *ScenariosView) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch km.String() {
	case "j", "down":
		if v.cursor < len(v.scenarios)-1 {
			v.cursor++
		}
		return KeyHandledCmd
	case "k", "up":
		if v.cursor > 0 {
			v.cursor--
		}
		return KeyHandledCmd
	}
	return nil
}

func (v *ScenariosView) Render(width, height int, compact bool) string {
	title := fmt.Sprintf("%s (%d)", i18n.T("scenarios"), len(v.scenarios))
	card := components.Card{
		Title:   theme.AnimatedGradientText(title, v.AnimTick),
		Width:   width - 4,
		Compact: compact,
	}
	if len(v.scenarios) == 0 {
		card.Content = theme.MutedStyle.Render(i18n.T("no_result"))
		return card.Render()
	}
	innerW := card.InnerWidth()

	cols := []components.Column{
		{Title: i18n.T("quantity"), Width: 12, Numeric: true},
		{Title: i18n.T("total_tokens"), Width: 16, Numeric: true},
		{Title: i18n.T("total_cost"), Width: 14, Numeric: true},
		{Title: i18n.T("cost_per_token"), Width: 14, Numeric: true},
	}
	if v.rate.valid() {
		cols = append(cols, components.Column{Title: i18n.Tf("local_total", v.rate.Currency), Width: 16, Numeric: true})
	}
	cols = append(cols, components.Column{Title: "", Width: 10})

	baseStyle := lipgloss.NewStyle().Foreground(theme.ColorGold).Bold(true)
	rows := make([][]string, 0, len(v.scenarios))
	for _, s := range v.scenarios {
		row := []string{
			components.FormatNumber(s.Quantity),
			lipgloss.NewStyle().Foreground(theme.ColorTokens).Render(components.FormatNumber(s.TotalTokens)),
			lipgloss.NewStyle().Foreground(theme.ColorCost).Render(components.FormatUSD(s.TotalCost)),
			components.FormatUSD(s.CostPerToken),
		}
		if v.rate.valid() {
			row = append(row, components.FormatMoney(v.rate.Currency, exchange.Convert(s.TotalCost, v.rate.Value)))
		}
		marker := ""
		if s.Quantity == v.base {
			marker = baseStyle.Render("◀ " + i18n.T("current_marker"))
		}
		rows = append(rows, append(row, marker))
	}

	lines := []string{
		lipgloss.PlaceHorizontal(innerW, lipgloss.Right, theme.MutedStyle.Render(i18n.T("scenarios_help"))),
		components.Table{
			Columns: cols,
			Rows:    rows,
			Prefix:  func(i int) string { return components.CursorIndicator(i == v.cursor) },
		}.Render(),
	}
	card.Content = strings.Join(lines, "\n")
	return card.Render()
}
