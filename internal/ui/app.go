package ui

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/anomredux/tokencalc/internal/config"
	"github.com/anomredux/tokencalc/internal/domain"
	"github.com/anomredux/tokencalc/internal/exchange"
	"github.com/anomredux/tokencalc/internal/i18n"
	"github.com/anomredux/tokencalc/internal/pricing"
	"github.com/anomredux/tokencalc/internal/session"
	"github.com/anomredux/tokencalc/internal/theme"
	"github.com/anomredux/tokencalc/internal/ui/overlays"
	"github.com/anomredux/tokencalc/internal/ui/views"
)

type ViewType int

const (
	ViewCalculator ViewType = iota
	ViewScenarios
	ViewHistory
	ViewCount // sentinel: number of views
)

type OverlayType int

const (
	OverlayNone OverlayType = iota
	OverlayHelp
	OverlaySettings
	OverlayForm
)

// BlinkMsg triggers UI-only refresh for smooth animation (250ms).
type BlinkMsg time.Time

// ConfigFileChangedMsg is sent by the config file watcher.
type ConfigFileChangedMsg struct{}

// pricingMsg carries model prices fetched from LiteLLM.
type pricingMsg struct {
	table pricing.PricingTable
	err   error
}

type rateMsg struct {
	rate   float64
	manual bool
	err    error
}

type calcDoneMsg struct {
	result domain.Result
	err    error
}

type exportedMsg struct {
	paths []string
	err   error
}

type historyClearedMsg struct{}

type configReloadedMsg struct {
	cfg config.Config
	err error
}

// PricingFetcher returns remote model prices to merge over the embedded table.
type PricingFetcher func(ctx context.Context) (pricing.PricingTable, error)

// Deps wires the app to the rest of the program.
type Deps struct {
	Config     config.Config
	ConfigPath string
	Session    *session.Session
	Rates      *exchange.Refresher
	Currency   string
	Pricing    PricingFetcher // nil: embedded prices only
	Logger     *slog.Logger
}

type App struct {
	activeView ViewType
	overlay    OverlayType

	calculatorView *views.CalculatorView
	scenariosView  *views.ScenariosView
	historyView    *views.HistoryView

	helpOverlay     *overlays.HelpOverlay
	settingsOverlay *overlays.SettingsOverlay
	formOverlay     *overlays.FormOverlay

	Config     config.Config
	configPath string
	session    *session.Session
	rates      *exchange.Refresher
	currency   string
	fetchPrice PricingFetcher
	logger     *slog.Logger

	animTick      uint
	notifications *NotificationManager
	spinner       spinner.Model
	calculating   bool

	width  int
	height int
	ready  bool
}

func NewApp(d Deps) App {
	i18n.SetLanguage(d.Config.General.Language)
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}

	a := App{
		activeView:     ViewCalculator,
		overlay:        OverlayNone,
		Config:         d.Config,
		configPath:     d.ConfigPath,
		session:        d.Session,
		rates:          d.Rates,
		currency:       d.Currency,
		fetchPrice:     d.Pricing,
		logger:         logger,
		calculatorView: views.NewCalculatorView(),
		scenariosView:  views.NewScenariosView(),
		historyView:    views.NewHistoryView(d.Config.Location()),
		helpOverlay:    overlays.NewHelpOverlay(),
		notifications:  NewNotificationManager(),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.ColorGold)),
		),
	}
	a.syncViews()
	return a
}

func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.SetWindowTitle("tokencalc"),
		a.fetchPricing(),
		doBlink(),
	}
	if a.Config.Exchange.AutoRefresh {
		cmds = append(cmds, a.refreshRate(false))
	}
	return tea.Batch(cmds...)
}

func doBlink() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return BlinkMsg(t)
	})
}

func (a App) rate() views.Rate {
	if a.rates == nil {
		return views.Rate{}
	}
	return views.Rate{Currency: a.currency, Value: a.rates.Rate()}
}

// syncViews pushes the session's current result, history and rate into the
// views.
func (a *App) syncViews() {
	rate := a.rate()
	a.calculatorView.SetRate(rate)
	a.scenariosView.SetRate(rate)
	if r, ok := a.session.Current(); ok {
		a.calculatorView.SetResult(r)
		a.scenariosView.SetResult(r)
	}
	a.historyView.SetData(a.session.History().All())
}

func (a App) exportDir() string {
	return filepath.Join(a.Config.General.DataDir, "exports")
}

// initialParams pre-fills the form: the last submitted parameters when
// saved, otherwise the configured defaults.
func (a App) initialParams() domain.Parameters {
	if p, ok := a.session.LoadForm(context.Background()); ok {
		return p
	}
	d := a.Config.Defaults
	return domain.Parameters{
		Model:            d.Model,
		InputTokenPrice:  d.InputPrice,
		OutputTokenPrice: d.OutputPrice,
		CachedTokenPrice: d.CachedPrice,
		Quantity:         float64(d.Quantity),
		Resale:           domain.ResaleSettings{Markup: d.Markup, CreditValue: d.CreditValue},
	}
}
