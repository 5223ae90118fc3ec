package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/anomredux/tokencalc/internal/export"
	"github.com/anomredux/tokencalc/internal/ui/components"
)

type rateOutput struct {
	Pair      string     `json:"pair" yaml:"pair"`
	Currency  string     `json:"currency" yaml:"currency"`
	Rate      float64    `json:"rate" yaml:"rate"`
	Fallback  bool       `json:"fallback" yaml:"fallback"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty" yaml:"updated_at,omitempty"`
}

func rateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Fetch the current USD exchange rate",
		Long: `Fetch the USD rate for the configured currency pair. When the source cannot
be reached the command fails, unless --fallback is given, in which case the
configured fallback rate is printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			if format == export.FormatCSV {
				return fmt.Errorf("rate: %s output is not supported", format)
			}
			allowFallback, _ := cmd.Flags().GetBool("fallback")
			return withEnv(cmd, func(e *env) error {
				v, err := e.rates.Refresh(commandContext(cmd), true)
				if err != nil && !allowFallback {
					return fmt.Errorf("refresh exchange rate: %w", err)
				}
				out := rateOutput{
					Pair:     e.cfg.Exchange.Pair,
					Currency: e.currency,
					Rate:     v,
					Fallback: err != nil,
				}
				if at := e.rates.UpdatedAt(); !at.IsZero() {
					out.UpdatedAt = &at
				}

				w := cmd.OutOrStdout()
				if format != export.FormatText {
					return export.Encode(w, format, out)
				}
				fmt.Fprintf(w, "1 USD = %s\n", components.FormatMoney(out.Currency, out.Rate))
				if out.Fallback {
					fmt.Fprintf(w, "(fallback rate: %v)\n", err)
				}
				return nil
			})
		},
	}
	cmd.Flags().Bool("fallback", false, "print the fallback rate instead of failing")
	return cmd
}
