package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/anomredux/tokencalc/internal/theme"
)

// TabBar renders a numbered tab bar with active highlighting and a bottom
// separator. Badge, when set, is right-aligned on the same line.
type TabBar struct {
	ViewNames   []string
	ActiveIndex int
	Width       int
	Badge       string
}

var (
	tabActiveStyle = lipgloss.NewStyle().
			Foreground(theme.ColorGold).
			Background(theme.ColorElevatedBg).
			Bold(true).
			Padding(0, 1)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(theme.ColorMutedText).
				Padding(0, 1)

	badgeStyle = lipgloss.NewStyle().Foreground(theme.ColorMauve)
)

func (tb TabBar) Render() string {
	var tabs []string
	for i, name := range tb.ViewNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if i == tb.ActiveIndex {
			tabs = append(tabs, tabActiveStyle.Render(label))
		} else {
			tabs = append(tabs, tabInactiveStyle.Render(label))
		}
	}
	line := " " + strings.Join(tabs, "")

	if tb.Badge != "" {
		badge := badgeStyle.Render(tb.Badge) + " "
		if gap := tb.Width - VisualWidth(line) - VisualWidth(badge); gap > 0 {
			line += strings.Repeat(" ", gap) + badge
		}
	}

	sep := theme.MutedStyle.Render(strings.Repeat("─", tb.Width))
	return PadRight(line, tb.Width) + "\n" + sep
}
