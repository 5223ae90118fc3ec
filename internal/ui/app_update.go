package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/anomredux/tokencalc/internal/config"
	"github.com/anomredux/tokencalc/internal/i18n"
	"github.com/anomredux/tokencalc/internal/pricing"
	"github.com/anomredux/tokencalc/internal/session"
	"github.com/anomredux/tokencalc/internal/ui/overlays"
	"github.com/anomredux/tokencalc/internal/ui/views"
)

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		return a, nil

	case tea.KeyMsg:
		if a.overlay != OverlayNone {
			return a.updateOverlay(msg)
		}
		return a.handleGlobalKey(msg)

	case BlinkMsg:
		a.animTick++
		a.propagateAnimTick()
		a.notifications.Expire()
		return a, doBlink()

	case spinner.TickMsg:
		if !a.calculating {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case overlays.CalculationSubmittedMsg:
		if a.calculating || a.session.Busy() {
			a.notifications.SetError(i18n.T("calc_busy"))
			return a, nil
		}
		a.calculating = true
		return a, tea.Batch(a.spinner.Tick, a.submit(msg.Params))

	case calcDoneMsg:
		a.calculating = false
		if msg.err != nil {
			a.notifyCalcError(msg.err)
			return a, nil
		}
		a.syncViews()
		a.activeView = ViewCalculator
		a.notifications.SetMessage(i18n.T("calc_success"))
		return a, nil

	case pricingMsg:
		if msg.err != nil {
			a.logger.Warn("remote pricing unavailable", "error", msg.err)
			return a, nil
		}
		table, err := pricing.LoadDefault()
		if err != nil {
			table = make(pricing.PricingTable)
		}
		table.Merge(msg.table)
		a.session.Calculator().UpdateTable(table)
		a.logger.Debug("pricing table updated", "models", len(table))
		return a, nil

	case rateMsg:
		a.syncViews()
		switch {
		case msg.err != nil:
			a.notifications.SetError(i18n.Tf("rate_failed", msg.err.Error()))
		case msg.manual:
			a.notifications.SetMessage(i18n.Tf("rate_updated", msg.rate))
		}
		return a, nil

	case exportedMsg:
		if msg.err != nil {
			a.notifications.SetError(i18n.Tf("export_failed", msg.err.Error()))
			return a, nil
		}
		a.notifications.SetMessage(i18n.Tf("exported_to", strings.Join(msg.paths, ", ")))
		return a, nil

	case views.SelectResultMsg:
		if err := a.session.Select(msg.ID); err != nil {
			a.notifications.SetError(err.Error())
			return a, nil
		}
		a.syncViews()
		a.activeView = ViewCalculator
		if r, ok := a.session.Current(); ok {
			a.notifications.SetMessage(i18n.Tf("result_selected",
				r.Timestamp.In(a.Config.Location()).Format("Jan 02 15:04")))
		}
		return a, nil

	case views.CompareMsg:
		c, err := a.session.Compare(msg.A, msg.B)
		if err != nil {
			a.notifications.SetError(err.Error())
			return a, nil
		}
		a.historyView.SetComparison(c)
		return a, nil

	case views.ClearHistoryMsg:
		return a, a.clearHistory()

	case historyClearedMsg:
		a.syncViews()
		a.notifications.SetMessage(i18n.T("history_cleared"))
		return a, nil

	case overlays.ConfigChangedMsg:
		if msg.Err != nil {
			a.notifications.SetError(msg.Err.Error())
		}
		a.applyConfig(msg.Config)
		return a, nil

	case ConfigFileChangedMsg:
		return a, a.reloadConfig()

	case configReloadedMsg:
		if msg.err != nil {
			a.logger.Warn("config reload failed", "error", msg.err)
			a.notifications.SetError(msg.err.Error())
			return a, nil
		}
		a.applyConfig(msg.cfg)
		a.notifications.SetMessage(i18n.T("config_reloaded"))
		return a, nil
	}

	// huh sends its own internal messages while the form is open.
	if a.overlay == OverlayForm && a.formOverlay != nil {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a *App) notifyCalcError(err error) {
	var verr *pricing.ValidationError
	switch {
	case errors.Is(err, session.ErrBusy):
		a.notifications.SetError(i18n.T("calc_busy"))
	case errors.As(err, &verr):
		a.notifications.SetError(i18n.Tf("calc_failed", strings.Join(verr.Messages, "; ")))
	default:
		a.notifications.SetError(i18n.Tf("calc_failed", err.Error()))
	}
}

func (a *App) applyConfig(cfg config.Config) {
	a.Config = cfg
	i18n.SetLanguage(cfg.General.Language)
	a.historyView.SetTimezone(cfg.Location())
	a.syncViews()
}

func (a App) handleGlobalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case ViewCalculator:
		cmd = a.calculatorView.Update(msg)
	case ViewScenarios:
		cmd = a.scenariosView.Update(msg)
	case ViewHistory:
		cmd = a.historyView.Update(msg)
	}
	if cmd != nil {
		return a, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "1":
		a.activeView = ViewCalculator
	case "2":
		a.activeView = ViewScenarios
	case "3":
		a.activeView = ViewHistory
	case "tab":
		a.activeView = (a.activeView + 1) % ViewCount
	case "shift+tab":
		a.activeView = (a.activeView + ViewCount - 1) % ViewCount
	case "?":
		a.overlay = OverlayHelp
	case "s":
		a.settingsOverlay = overlays.NewSettingsOverlay(a.Config, a.configPath)
		a.overlay = OverlaySettings
	case "n":
		if a.calculating {
			a.notifications.SetError(i18n.T("calc_busy"))
			return a, nil
		}
		a.formOverlay = overlays.NewFormOverlay(a.session.Calculator().Table().Names(), a.initialParams())
		a.overlay = OverlayForm
		return a, a.formOverlay.Init()
	case "e":
		return a, a.exportCurrent()
	case "x":
		return a, a.refreshRate(true)
	}
	return a, nil
}

func (a App) updateOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.overlay {
	case OverlayHelp:
		switch msg.String() {
		case "esc", "?":
			a.overlay = OverlayNone
		}
	case OverlaySettings:
		if a.settingsOverlay != nil {
			closed, cmd := a.settingsOverlay.Update(msg)
			if closed {
				a.overlay = OverlayNone
			}
			return a, cmd
		}
	case OverlayForm:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	closed, cmd := a.formOverlay.Update(msg)
	if closed {
		a.overlay = OverlayNone
		a.formOverlay = nil
	}
	return a, cmd
}

func (a *App) propagateAnimTick() {
	a.calculatorView.AnimTick = a.animTick
	a.scenariosView.AnimTick = a.animTick
	a.historyView.AnimTick = a.animTick
	a.helpOverlay.AnimTick = a.animTick
	if a.settingsOverlay != nil {
		a.settingsOverlay.SetAnimTick(a.animTick)
	}
	if a.formOverlay != nil {
		a.formOverlay.SetAnimTick(a.animTick)
	}
}
