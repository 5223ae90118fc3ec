package overlays

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/anomredux/tokencalc/internal/config"
	"github.com/anomredux/tokencalc/internal/i18n"
	"github.com/anomredux/tokencalc/internal/theme"
)

// ConfigChangedMsg signals that config has been updated. Err is set when
// the new config could not be written to disk; it still applies to the
// running session.
type ConfigChangedMsg struct {
	Config config.Config
	Err    error
}

type settingsField struct {
	label   string
	key     string
	options []string
	value   string
	display func(string) string
}

type SettingsOverlay struct {
	cfg      config.Config
	cfgPath  string
	fields   []settingsField
	cursor   int
	dirty    bool
	animTick uint
}

func NewSettingsOverlay(cfg config.Config, cfgPath string) *SettingsOverlay {
	s := &SettingsOverlay{
		cfg:     cfg,
		cfgPath: cfgPath,
	}
	s.buildFields()
	return s
}

func (s *SettingsOverlay) SetAnimTick(tick uint) {
	s.animTick = tick
}

func formatOption(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// withCurrent makes sure a configured value outside the presets can still
// be displayed and cycled away from.
func withCurrent(options []string, current string) []string {
	if slices.Contains(options, current) {
		return options
	}
	return append([]string{current}, options...)
}

func (s *SettingsOverlay) buildFields() {
	markup := formatOption(s.cfg.Defaults.Markup)
	credit := formatOption(s.cfg.Defaults.CreditValue)
	auto := strconv.FormatBool(s.cfg.Exchange.AutoRefresh)

	s.fields = []settingsField{
		{label: i18n.T("setting_language"), key: "language", options: i18n.Supported(), value: s.cfg.General.Language},
		{label: i18n.T("setting_timezone"), key: "timezone", options: withCurrent(commonTimezones(), s.cfg.General.Timezone), value: s.cfg.General.Timezone},
		{
			label: i18n.T("setting_markup"), key: "markup",
			options: withCurrent([]string{"0", "10", "20", "25", "30", "50", "100"}, markup), value: markup,
			display: func(v string) string { return v + "%" },
		},
		{label: i18n.T("setting_credit"), key: "credit", options: withCurrent([]string{"0.5", "1", "2", "5", "10"}, credit), value: credit},
		{
			label: i18n.T("setting_auto_refresh"), key: "auto_refresh",
			options: []string{"true", "false"}, value: auto,
			display: func(v string) string {
				if v == "true" {
					return i18n.T("on")
				}
				return i18n.T("off")
			},
		},
	}
}

// Update handles a key. It reports true when the overlay should close.
func (s *SettingsOverlay) Update(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if s.cursor < len(s.fields)-1 {
			s.cursor++
		}
	case "k", "up":
		if s.cursor > 0 {
			s.cursor--
		}
	case "enter", " ", "l", "right":
		s.cycleOption(1)
	case "h", "left":
		s.cycleOption(-1)
	case "esc", "s":
		if !s.dirty {
			return true, nil
		}
		cfg, path := s.cfg, s.cfgPath
		return true, func() tea.Msg {
			return ConfigChangedMsg{Config: cfg, Err: config.Save(cfg, path)}
		}
	}
	return false, nil
}

func (s *SettingsOverlay) cycleOption(dir int) {
	f := &s.fields[s.cursor]
	idx := max(slices.Index(f.options, f.value), 0)
	idx = (idx + dir + len(f.options)) % len(f.options)
	f.value = f.options[idx]
	s.dirty = true
	s.applyToConfig(f.key, f.value)
}

func (s *SettingsOverlay) applyToConfig(key, value string) {
	switch key {
	case "language":
		s.cfg.General.Language = value
	case "timezone":
		s.cfg.General.Timezone = value
	case "markup":
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			s.cfg.Defaults.Markup = v
		}
	case "credit":
		if v, err := strconv.ParseFloat(value, 64); err == nil && v > 0 {
			s.cfg.Defaults.CreditValue = v
		}
	case "auto_refresh":
		s.cfg.Exchange.AutoRefresh = value == "true"
	}
}

func (s *SettingsOverlay) Render(width, height int) string {
	bg := theme.ColorCardBg
	title := theme.AnimatedGradientText(i18n.T("settings"), s.animTick, bg)

	var rows []string
	for i, f := range s.fields {
		labelStyle := lipgloss.NewStyle().Foreground(theme.ColorBodyText).Background(bg)
		valueStyle := lipgloss.NewStyle().Foreground(theme.ColorSkyBlue).Background(bg)
		arrow := "  "
		if i == s.cursor {
			labelStyle = lipgloss.NewStyle().Foreground(theme.ColorGold).Bold(true).Background(bg)
			valueStyle = lipgloss.NewStyle().Foreground(theme.ColorBrightText).Bold(true).Background(bg)
			arrow = lipgloss.NewStyle().Foreground(theme.ColorGold).Background(bg).Render("> ")
		}

		value := f.value
		if f.display != nil {
			value = f.display(value)
		}
		rows = append(rows, fmt.Sprintf("  %s%s%s",
			arrow,
			labelStyle.Render(fmt.Sprintf("%-20s", f.label)),
			valueStyle.Render(" "+value),
		))
	}

	content := title + "\n\n" + strings.Join(rows, "\n") + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.ColorMutedText).Background(bg).Render(i18n.T("settings_help"))

	return theme.CardStyle.
		Width(min(54, width-4)).
		Render(content)
}

func commonTimezones() []string {
	return []string{
		"UTC",
		"America/Sao_Paulo", "America/New_York", "America/Chicago", "America/Los_Angeles",
		"Europe/Lisbon", "Europe/London", "Europe/Berlin",
		"Asia/Tokyo", "Asia/Singapore",
		"Australia/Sydney",
	}
}
