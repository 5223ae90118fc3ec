package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/anomredux/tokencalc/internal/config"
	"github.com/anomredux/tokencalc/internal/exchange"
	"github.com/anomredux/tokencalc/internal/export"
	"github.com/anomredux/tokencalc/internal/history"
	"github.com/anomredux/tokencalc/internal/i18n"
	"github.com/anomredux/tokencalc/internal/logging"
	"github.com/anomredux/tokencalc/internal/metrics"
	"github.com/anomredux/tokencalc/internal/pricing"
	"github.com/anomredux/tokencalc/internal/session"
	"github.com/anomredux/tokencalc/internal/store"
)

// env is everything a command needs, built from the config file.
type env struct {
	cfg      config.Config
	cfgPath  string
	logger   *slog.Logger
	store    store.Store
	metrics  *metrics.Collector
	session  *session.Session
	rates    *exchange.Refresher
	currency string
}

func loadConfig(path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// newEnv opens the store and wires the session. Logs go to logOut.
func newEnv(cfg config.Config, cfgPath string, logOut io.Writer) (*env, error) {
	logger, err := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Writer: logOut,
	})
	if err != nil {
		return nil, err
	}
	i18n.SetLanguage(cfg.General.Language)

	st, err := store.Open(cfg.Storage.Backend, cfg.StoragePath())
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	table, err := pricing.LoadDefault()
	if err != nil {
		st.Close()
		return nil, err
	}

	m := metrics.NewCollector()
	sess := session.New(
		pricing.NewCalculator(table),
		history.NewManager(st),
		st,
		session.WithLogger(logger),
		session.WithMetrics(m),
	)

	src := exchange.NewHTTPSource(cfg.Exchange.URL, cfg.Exchange.Pair)
	rates := exchange.NewRefresher(src, cfg.Exchange.FallbackRate, cfg.Exchange.MinInterval.Duration,
		exchange.WithLogger(logger),
		exchange.WithFailureHook(m.RecordExchangeFailure),
	)

	return &env{
		cfg:      cfg,
		cfgPath:  cfgPath,
		logger:   logger,
		store:    st,
		metrics:  m,
		session:  sess,
		rates:    rates,
		currency: src.Currency(),
	}, nil
}

// openEnv builds the env for a one-shot command and restores the history.
// CLI logs go to stderr.
func openEnv(cmd *cobra.Command) (*env, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return nil, err
	}
	e, err := newEnv(cfg, cfgPath, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	e.session.Start(commandContext(cmd))
	return e, nil
}

// close persists the session, flushes metrics when a textfile is
// configured and closes the store.
func (e *env) close(ctx context.Context) error {
	var errs []error
	if err := e.session.Close(ctx); err != nil {
		errs = append(errs, err)
	}
	if path := e.cfg.Metrics.Textfile; path != "" {
		if err := e.metrics.WriteTextfile(path); err != nil {
			errs = append(errs, err)
		}
	}
	if err := e.store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close store: %w", err))
	}
	return errors.Join(errs...)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func outputFormat(cmd *cobra.Command) (export.Format, error) {
	s, _ := cmd.Flags().GetString("format")
	return export.ParseFormat(s)
}

// withEnv runs fn with an open env and closes it afterwards, reporting a
// close failure only when fn succeeded.
func withEnv(cmd *cobra.Command, fn func(e *env) error) (err error) {
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := e.close(commandContext(cmd)); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(e)
}
