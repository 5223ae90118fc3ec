package views

import (
	"fmt"
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/anomredux/tokencalc/internal/domain"
	"github.com/anomredux/tokencalc/internal/i18n"
	"github.com/anomredux/tokencalc/internal/theme"
	"github.com/anomredux/tokencalc/internal/ui/components"
)

// HistoryView lists past calculations, newest first. Enter makes an entry
// current, space marks up to two entries for comparison and c (pressed
// twice) clears the history.
type HistoryView struct {
	entries      []domain.Result
	stats        domain.Statistics
	hasStats     bool
	tz           *time.Location
	cursor       int
	scroll       int
	marked       []string
	comparison   *domain.Comparison
	confirmClear bool
	AnimTick     uint
}

func NewHistoryView(tz *time.Location) *HistoryView {
	return &HistoryView{tz: tz}
}

func (v *HistoryView) SetTimezone(tz *time.Location) { v.tz = tz }

// SetData replaces the listed entries. Marks on entries that are gone are
// dropped along with any comparison built on them.
func (v *HistoryView) SetData(entries []domain.Result) {
	v.entries = entries
	v.stats, v.hasStats = domain.Aggregate(entries)
	if v.cursor >= len(entries) {
		v.cursor = max(0, len(entries)-1)
	}

	kept := v.marked[:0]
	for _, id := range v.marked {
		if v.indexOf(id) >= 0 {
			kept = append(kept, id)
		}
	}
	v.marked = kept
	if len(v.marked) < 2 {
		v.comparison = nil
	}
}

func (v *HistoryView) SetComparison(c domain.Comparison) { v.comparison = &c }

// Marked returns the IDs picked for comparison, in marking order.
func (v *HistoryView) Marked() []string { return slices.Clone(v.marked) }

// ConfirmingClear reports whether the next c clears the history.
func (v *HistoryView) ConfirmingClear() bool { return v.confirmClear }

func (v *HistoryView) indexOf(id string) int {
	return slices.IndexFunc(v.entries, func(r domain.Result) bool { return r.ID == id })
}

func (v *HistoryView) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	key := km.String()
	if key != "c" {
		v.confirmClear = false
	}

	switch key {
	case "j", "down":
		if v.cursor < len(v.entries)-1 {
			v.cursor++
		}
		return KeyHandledCmd
	case "k", "up":
		if v.cursor > 0 {
			v.cursor--
		}
		return KeyHandledCmd
	case "enter":
		if len(v.entries) == 0 {
			return KeyHandledCmd
		}
		return emit(SelectResultMsg{ID: v.entries[v.cursor].ID})
	case " ", "space":
		if len(v.entries) == 0 {
			return KeyHandledCmd
		}
		return v.toggleMark(v.entries[v.cursor].ID)
	case "c":
		if len(v.entries) == 0 {
			return KeyHandledCmd
		}
		if v.confirmClear {
			v.confirmClear = false
			return emit(ClearHistoryMsg{})
		}
		v.confirmClear = true
		return KeyHandledCmd
	case "esc":
		if len(v.marked) == 0 {
			return nil
		}
		v.marked = nil
		v.comparison = nil
		return KeyHandledCmd
	}
	return nil
}

func (v *HistoryView) toggleMark(id string) tea.Cmd {
	if i := slices.Index(v.marked, id); i >= 0 {
		v.marked = slices.Delete(v.marked, i, i+1)
		v.comparison = nil
		return KeyHandledCmd
	}
	v.marked = append(v.marked, id)
	if len(v.marked) > 2 {
		v.marked = v.marked[len(v.marked)-2:]
	}
	if len(v.marked) == 2 {
		return emit(CompareMsg{A: v.marked[0], B: v.marked[1]})
	}
	return KeyHandledCmd
}

func (v *HistoryView) Render(width, height int, compact bool) string {
	cardWidth := width - 4

	if len(v.entries) == 0 {
		card := components.Card{
			Title:   theme.AnimatedGradientText(i18n.T("history"), v.AnimTick),
			Width:   cardWidth,
			Compact: compact,
			Content: theme.MutedStyle.Render(i18n.T("no_history")),
		}
		return card.Render()
	}

	statsCard := v.renderStats(cardWidth, compact)
	compareCard := v.renderComparison(cardWidth, compact)
	listHeight := height - lipgloss.Height(statsCard) - lipgloss.Height(compareCard)
	return strings.Join([]string{statsCard, v.renderList(cardWidth, listHeight, compact), compareCard}, "\n")
}

func (v *HistoryView) renderStats(cardWidth int, compact bool) string {
	card := components.Card{
		Title:   theme.GradientText(i18n.T("statistics"), theme.ColorLavender, theme.ColorSkyBlue),
		Width:   cardWidth,
		Compact: compact,
	}
	s := v.stats
	last := ""
	if v.hasStats {
		last = s.MostRecentTimestamp.In(v.tz).Format("Jan 02 15:04")
	}
	stats := []components.StatCard{
		{Value: components.FormatNumber(s.Count), Label: i18n.T("calculations"), Color: theme.ColorGold},
		{Value: components.FormatUSD(s.AverageCost), Label: i18n.T("avg_cost"), Color: theme.ColorCost},
		{Value: components.FormatUSD(s.MinCost), Label: i18n.T("min_cost"), Color: theme.ColorSkyBlue},
		{Value: components.FormatUSD(s.MaxCost), Label: i18n.T("max_cost"), Color: theme.ColorMauve},
		{Value: last, Label: i18n.T("last_calculation"), Color: theme.ColorLavender},
	}
	card.Content = components.RenderStatRow(stats, card.InnerWidth(), 2)
	return card.Render()
}

func (v *HistoryView) renderList(cardWidth, contentHeight int, compact bool) string {
	title := fmt.Sprintf("%s (%d)", i18n.T("history"), len(v.entries))
	card := components.Card{
		Title:   theme.AnimatedGradientText(title, v.AnimTick),
		Width:   cardWidth,
		Compact: compact,
	}
	innerW := card.InnerWidth()

	help := i18n.T("history_help")
	helpStyle := theme.MutedStyle
	if v.confirmClear {
		help = i18n.T("clear_confirm")
		helpStyle = theme.WarningStyle
	}

	cols := []components.Column{
		{Title: i18n.T("when"), Width: 13},
		{Title: i18n.T("model"), Width: 20},
		{Title: i18n.T("quantity"), Width: 10, Numeric: true},
		{Title: i18n.T("total_tokens"), Width: 14, Numeric: true},
		{Title: i18n.T("total_cost"), Width: 12, Numeric: true},
		{Title: i18n.T("sale_price"), Width: 12, Numeric: true},
	}
	// spare room goes to the model column
	used := 4 + len(cols) - 1
	for _, c := range cols {
		used += c.Width
	}
	if extra := innerW - used; extra > 0 {
		cols[1].Width += extra
	}

	visibleRows := max(contentHeight-7, 3)
	if v.cursor < v.scroll {
		v.scroll = v.cursor
	}
	if v.cursor >= v.scroll+visibleRows {
		v.scroll = v.cursor - visibleRows + 1
	}
	end := min(v.scroll+visibleRows, len(v.entries))
	window := v.entries[v.scroll:end]

	rows := make([][]string, 0, len(window))
	for _, r := range window {
		model := r.Parameters.Model
		if model == "" {
			model = i18n.T("form_custom")
		}
		rows = append(rows, []string{
			theme.MutedStyle.Render(r.Timestamp.In(v.tz).Format("Jan 02 15:04")),
			theme.BodyStyle.Render(model),
			components.FormatNumber(r.Summary.Quantity),
			lipgloss.NewStyle().Foreground(theme.ColorTokens).Render(components.FormatNumber(r.Summary.TotalTokens)),
			lipgloss.NewStyle().Foreground(theme.ColorCost).Render(components.FormatUSD(r.Summary.TotalCost)),
			components.FormatUSD(r.Financials.TotalSalePrice),
		})
	}

	lines := []string{
		lipgloss.PlaceHorizontal(innerW, lipgloss.Right, helpStyle.Render(help)),
		components.Table{
			Columns: cols,
			Rows:    rows,
			Prefix: func(i int) string {
				idx := v.scroll + i
				return components.CursorIndicator(idx == v.cursor) +
					components.MarkIndicator(slices.Contains(v.marked, v.entries[idx].ID))
			},
		}.Render(),
	}
	if len(v.entries) > visibleRows {
		lines = append(lines, theme.MutedStyle.Render(
			fmt.Sprintf("  [%d-%d / %d]", v.scroll+1, end, len(v.entries))))
	}
	card.Content = strings.Join(lines, "\n")
	return card.Render()
}

func (v *HistoryView) renderComparison(cardWidth int, compact bool) string {
	card := components.Card{
		Title:   theme.GradientText(i18n.T("comparison"), theme.ColorMauve, theme.ColorPeach),
		Width:   cardWidth,
		Compact: compact,
	}
	if v.comparison == nil {
		card.Content = theme.MutedStyle.Render(i18n.T("compare_hint"))
		return card.Render()
	}

	c := v.comparison
	usd := components.FormatUSD
	count := func(f float64) string { return components.FormatNumber(int(f)) }
	rows := [][]string{
		deltaRow(i18n.T("total_cost"), c.TotalCost, usd),
		deltaRow(i18n.T("total_tokens"), c.TotalTokens, count),
		deltaRow(i18n.T("avg_cost_per_token"), c.AverageCostPerToken, usd),
	}
	card.Content = components.Table{
		Columns: []components.Column{
			{Title: "", Width: 18},
			{Title: "A", Width: 14, Numeric: true},
			{Title: "B", Width: 14, Numeric: true},
			{Title: i18n.T("difference"), Width: 14, Numeric: true},
			{Title: i18n.T("change"), Width: 10, Numeric: true},
		},
		Rows: rows,
	}.Render()
	return card.Render()
}

// deltaRow colors a cost increase as a loss.
func deltaRow(label string, d domain.Delta, format func(float64) string) []string {
	color := theme.SignedColor(-d.Difference)
	style := lipgloss.NewStyle().Foreground(color)
	diff := format(d.Difference)
	if d.Difference > 0 {
		diff = "+" + diff
	}
	return []string{
		theme.BodyStyle.Render(label),
		format(d.A),
		format(d.B),
		style.Render(diff),
		style.Render(components.FormatPercent(d.PercentageChange, true)),
	}
}
