package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/anomredux/tokencalc/internal/theme"
)

var (
	statValueStyle = lipgloss.NewStyle().Foreground(theme.ColorBrightText).Bold(true)
	statLabelStyle = lipgloss.NewStyle().Foreground(theme.ColorMutedText)
)

// StatCard renders a big number over a small label.
type StatCard struct {
	Value string // e.g. "$0.2262"
	Sub   string // optional secondary text e.g. "R$ 1.23"
	Label string
	Width int
	Color lipgloss.Color // optional value color
}

// Render returns the stat card as a block of lines.
func (s StatCard) Render() []string {
	w := max(s.Width, 8)

	valueStyle := statValueStyle
	if s.Color != "" {
		valueStyle = lipgloss.NewStyle().Foreground(s.Color).Bold(true)
	}

	lines := []string{CenterText(valueStyle.Render(s.Value), w)}
	if s.Sub != "" {
		lines = append(lines, CenterText(theme.MutedStyle.Render(s.Sub), w))
	}
	return append(lines, CenterText(statLabelStyle.Render(s.Label), w))
}

// RenderStatRow renders stat cards side by side. Cards without a width are
// given an even share of totalWidth.
func RenderStatRow(cards []StatCard, totalWidth, gap int) string {
	if len(cards) == 0 {
		return ""
	}
	share := (totalWidth - gap*(len(cards)-1)) / len(cards)
	blocks := make([][]string, 0, len(cards))
	for _, c := range cards {
		if c.Width == 0 {
			c.Width = share
		}
		blocks = append(blocks, c.Render())
	}
	return strings.Join(JoinHorizontal(blocks, gap), "\n")
}
