package overlays

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/anomredux/tokencalc/internal/i18n"
	"github.com/anomredux/tokencalc/internal/theme"
)

type HelpOverlay struct {
	AnimTick uint
}

func NewHelpOverlay() *HelpOverlay {
	return &HelpOverlay{}
}

// Render lists the key bindings. height is unused: the list always fits the
// minimum terminal size.
func (h *HelpOverlay) Render(width, height int) string {
	title := theme.AnimatedGradientText(i18n.T("keyboard_shortcuts"), h.AnimTick, theme.ColorCardBg)

	bindings := []struct {
		key  string
		desc string
	}{
		{"1 / 2 / 3", i18n.T("help_switch_views")},
		{"Tab / Shift+Tab", i18n.T("help_cycle_views")},
		{"j / k / Down / Up", i18n.T("help_navigate")},
		{"", ""},
		{"n", i18n.T("help_new")},
		{"e", i18n.T("help_export")},
		{"x", i18n.T("help_rate")},
		{"", ""},
		{"Enter", i18n.T("help_select")},
		{"Space", i18n.T("help_mark")},
		{"c c", i18n.T("help_clear_history")},
		{"", ""},
		{"?", i18n.T("help_toggle_help")},
		{"s", i18n.T("help_open_settings")},
		{"q / Ctrl+C", i18n.T("help_quit")},
	}

	maxKeyLen := 0
	for _, b := range bindings {
		maxKeyLen = max(maxKeyLen, len(b.key))
	}

	bg := theme.ColorCardBg
	keyStyle := lipgloss.NewStyle().Foreground(theme.ColorGold).Bold(true).Background(bg)
	descStyle := lipgloss.NewStyle().Foreground(theme.ColorBodyText).Background(bg)

	var rows []string
	for _, b := range bindings {
		if b.key == "" {
			rows = append(rows, "")
			continue
		}
		padded := fmt.Sprintf("%-*s", maxKeyLen, b.key)
		rows = append(rows, fmt.Sprintf("  %s%s",
			keyStyle.Render(padded),
			descStyle.Render("  "+b.desc),
		))
	}

	content := title + "\n\n" + strings.Join(rows, "\n") + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.ColorMutedText).Background(bg).Render(i18n.T("help_close"))

	return theme.CardStyle.
		Width(min(65, width-4)).
		Render(content)
}
