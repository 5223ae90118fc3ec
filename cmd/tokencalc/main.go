package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/anomredux/tokencalc/internal/config"
	"github.com/anomredux/tokencalc/internal/logging"
	"github.com/anomredux/tokencalc/internal/pricing"
	"github.com/anomredux/tokencalc/internal/ui"
	"github.com/anomredux/tokencalc/internal/watcher"
)

// version is set by goreleaser via ldflags.
var version = "dev"

// configPollInterval backs up fsnotify when the config lives on a
// filesystem that does not deliver events.
const configPollInterval = 2 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tokencalc",
		Short: "Estimate what LLM calls cost before you make them",
		Long: `tokencalc estimates token counts from text, prices them per model and
projects the cost at other volumes. Without a subcommand it opens the
interactive calculator.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd)
		},
	}

	rootCmd.PersistentFlags().String("config", config.DefaultPath(), "config file path")
	rootCmd.PersistentFlags().String("format", "text", "output format: text, json, yaml, csv")

	rootCmd.AddCommand(calcCmd())
	rootCmd.AddCommand(batchCmd())
	rootCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(compareCmd())
	rootCmd.AddCommand(rateCmd())
	rootCmd.AddCommand(presetsCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "tokencalc", version)
			return nil
		},
	}
}

// runTUI opens the interactive calculator. While it owns the terminal,
// logs go to a file.
func runTUI(cmd *cobra.Command) error {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	logFile, err := logging.OpenFile(cfg.LogPath())
	if err != nil {
		return err
	}
	defer logFile.Close()

	e, err := newEnv(cfg, cfgPath, logFile)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	e.session.Start(ctx)

	app := ui.NewApp(ui.Deps{
		Config:     cfg,
		ConfigPath: cfgPath,
		Session:    e.session,
		Rates:      e.rates,
		Currency:   e.currency,
		Pricing: func(ctx context.Context) (pricing.PricingTable, error) {
			return pricing.FetchLiteLLM(ctx)
		},
		Logger: e.logger,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	w := watcher.New([]string{cfgPath}, configPollInterval, func(string) {
		p.Send(ui.ConfigFileChangedMsg{})
	})
	if err := w.Start(); err != nil {
		e.logger.Warn("config watcher not started", "error", err)
	} else {
		defer w.Stop()
	}

	_, runErr := p.Run()
	if err := e.close(ctx); err != nil {
		e.logger.Warn("shutdown incomplete", "error", err)
	}
	if runErr != nil {
		return fmt.Errorf("run TUI: %w", runErr)
	}
	return nil
}
