package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/anomredux/tokencalc/internal/config"
	"github.com/anomredux/tokencalc/internal/domain"
	"github.com/anomredux/tokencalc/internal/export"
	"github.com/anomredux/tokencalc/internal/session"
)

const (
	pricingTimeout = 15 * time.Second
	rateTimeout    = 10 * time.Second
	storeTimeout   = 5 * time.Second
)

func (a App) fetchPricing() tea.Cmd {
	if a.fetchPrice == nil {
		return nil
	}
	fetch := a.fetchPrice
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), pricingTimeout)
		defer cancel()
		table, err := fetch(ctx)
		return pricingMsg{table: table, err: err}
	}
}

// refreshRate never blocks a calculation: it runs as its own command.
func (a App) refreshRate(manual bool) tea.Cmd {
	if a.rates == nil {
		return nil
	}
	rates := a.rates
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), rateTimeout)
		defer cancel()
		v, err := rates.Refresh(ctx, manual)
		return rateMsg{rate: v, manual: manual, err: err}
	}
}

func (a App) submit(p domain.Parameters) tea.Cmd {
	s := a.session
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		_ = s.SaveForm(ctx, p) // logged by the session
		r, err := s.Submit(ctx, p)
		return calcDoneMsg{result: r, err: err}
	}
}

// exportCurrent writes the breakdown and, when present, the scenarios of
// the current result.
func (a App) exportCurrent() tea.Cmd {
	s, dir := a.session, a.exportDir()
	return func() tea.Msg {
		r, ok := s.Current()
		if !ok {
			return exportedMsg{err: session.ErrNoDataAvailable}
		}
		now := time.Now()
		var paths []string
		p, err := export.WriteFile(dir, export.FileName("breakdown", now), s.ExportBreakdownCSV)
		if err != nil {
			return exportedMsg{err: err}
		}
		paths = append(paths, p)
		if len(r.Scenarios) > 0 {
			p, err = export.WriteFile(dir, export.FileName("scenarios", now), s.ExportScenariosCSV)
			if err != nil {
				return exportedMsg{paths: paths, err: err}
			}
			paths = append(paths, p)
		}
		return exportedMsg{paths: paths}
	}
}

func (a App) clearHistory() tea.Cmd {
	s := a.session
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		s.ClearHistory(ctx)
		return historyClearedMsg{}
	}
}

func (a App) reloadConfig() tea.Cmd {
	path := a.configPath
	return func() tea.Msg {
		cfg, err := config.Load(path)
		if err == nil {
			err = cfg.Validate()
		}
		return configReloadedMsg{cfg: cfg, err: err}
	}
}
