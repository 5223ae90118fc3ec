package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/anomredux/tokencalc/internal/i18n"
	"github.com/anomredux/tokencalc/internal/theme"
	"github.com/anomredux/tokencalc/internal/ui/components"
)

func (a App) View() string {
	if !a.ready {
		return i18n.T("initializing")
	}

	if a.width < 80 || a.height < 24 {
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.ColorPeach).Render(
				i18n.T("terminal_too_small")+"\n"+
					i18n.Tf("current_size", a.width, a.height),
			),
		)
	}

	if a.overlay != OverlayNone {
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center,
			a.renderOverlay(),
			lipgloss.WithWhitespaceBackground(theme.ColorOverlayBg),
		)
	}

	compact := a.height < 30
	contentHeight := max(a.height-4, 5) // 2 tab + 2 status

	content := lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(a.renderActiveView(contentHeight, compact))

	footer := a.notifications.RenderBanner(a.width)
	if footer == "" {
		footer = a.renderStatusBar()
	}
	return a.renderTabs() + "\n" + content + "\n" + footer
}

func (a App) renderTabs() string {
	badge := ""
	if r := a.rate(); r.Currency != "" && r.Value > 0 {
		badge = i18n.Tf("exchange_rate", r.Currency, r.Value)
	}
	return components.TabBar{
		ViewNames:   []string{i18n.T("tab_calculator"), i18n.T("tab_scenarios"), i18n.T("tab_history")},
		ActiveIndex: int(a.activeView),
		Width:       a.width,
		Badge:       badge,
	}.Render()
}

func (a App) renderActiveView(contentHeight int, compact bool) string {
	switch a.activeView {
	case ViewCalculator:
		return a.calculatorView.Render(a.width, contentHeight, compact)
	case ViewScenarios:
		return a.scenariosView.Render(a.width, contentHeight, compact)
	case ViewHistory:
		return a.historyView.Render(a.width, contentHeight, compact)
	}
	return ""
}

func (a App) renderStatusBar() string {
	activity := ""
	if a.calculating {
		activity = a.spinner.View() + " " + theme.MutedStyle.Render(i18n.T("calculating"))
	}
	return components.StatusBar{Width: a.width, Activity: activity}.Render()
}

func (a App) renderOverlay() string {
	switch a.overlay {
	case OverlayHelp:
		return a.helpOverlay.Render(a.width, a.height)
	case OverlaySettings:
		if a.settingsOverlay != nil {
			return a.settingsOverlay.Render(a.width, a.height)
		}
	case OverlayForm:
		if a.formOverlay != nil {
			return a.formOverlay.Render(a.width, a.height)
		}
	}
	return ""
}
