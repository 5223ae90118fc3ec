package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/anomredux/tokencalc/internal/domain"
	"github.com/anomredux/tokencalc/internal/export"
	"github.com/anomredux/tokencalc/internal/ui/components"
)

func compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare A B",
		Short: "Compare two saved calculations",
		Long: `Report how calculation B differs from calculation A in total cost, total
tokens and average cost per token. A and B are history ids or unique id
prefixes, as printed by "history list".`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			if format == export.FormatCSV {
				return fmt.Errorf("compare: %s output is not supported", format)
			}
			return withEnv(cmd, func(e *env) error {
				a, err := findResult(e.session.History(), args[0])
				if err != nil {
					return err
				}
				b, err := findResult(e.session.History(), args[1])
				if err != nil {
					return err
				}
				c := domain.Compare(a, b)
				if format != export.FormatText {
					return export.Encode(cmd.OutOrStdout(), format, c)
				}
				return writeComparison(cmd.OutOrStdout(), c)
			})
		},
	}
}

func writeComparison(w io.Writer, c domain.Comparison) error {
	usd := components.FormatUSD
	count := func(v float64) string { return components.FormatNumber(int(v)) }

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "METRIC\tA\tB\tDIFFERENCE\tCHANGE\t")
	for _, row := range []struct {
		label  string
		d      domain.Delta
		format func(float64) string
	}{
		{"Total cost", c.TotalCost, usd},
		{"Total tokens", c.TotalTokens, count},
		{"Avg cost/token", c.AverageCostPerToken, usd},
	} {
		diff := row.format(row.d.Difference)
		if row.d.Difference > 0 {
			diff = "+" + diff
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t\n",
			row.label,
			row.format(row.d.A),
			row.format(row.d.B),
			diff,
			components.FormatPercent(row.d.PercentageChange, true),
		)
	}
	return tw.Flush()
}
