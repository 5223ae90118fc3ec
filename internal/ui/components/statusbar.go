package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/anomredux/tokencalc/internal/i18n"
	"github.com/anomredux/tokencalc/internal/theme"
)

// StatusBar renders the bottom status bar with key hints. Activity, when
// set (e.g. a spinner with "Calculating..."), is shown on the right.
type StatusBar struct {
	Width    int
	Activity string
}

func (s StatusBar) Render() string {
	line := s.renderKeyHints()
	if s.Activity != "" {
		if gap := s.Width - VisualWidth(line) - VisualWidth(s.Activity) - 2; gap > 0 {
			line += strings.Repeat(" ", gap) + s.Activity
		}
	}
	sep := theme.MutedStyle.Render(strings.Repeat("─", s.Width))
	return sep + "\n" + line
}

// One color per hint: SkyBlue → Lavender → Mauve → Peach → Gold
var keyColors = []lipgloss.Color{
	theme.ColorSkyBlue,
	theme.ColorLavender,
	theme.ColorMauve,
	theme.ColorPeach,
	theme.ColorGold,
}

func (s StatusBar) renderKeyHints() string {
	hints := []struct{ key, desc string }{
		{"?", i18n.T("status_help")},
		{"n", i18n.T("status_new")},
		{"e", i18n.T("status_export")},
		{"x", i18n.T("status_rate")},
		{"q", i18n.T("status_quit")},
	}

	var parts []string
	for i, h := range hints {
		keyStyle := lipgloss.NewStyle().Foreground(keyColors[i%len(keyColors)]).Bold(true)
		parts = append(parts, keyStyle.Render(h.key)+" "+theme.MutedStyle.Render(h.desc))
	}
	return "  " + strings.Join(parts, "  ")
}
