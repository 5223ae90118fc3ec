package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/anomredux/tokencalc/internal/export"
	"github.com/anomredux/tokencalc/internal/pricing"
)

type presetRow struct {
	Model       string  `json:"model" yaml:"model"`
	Input       float64 `json:"input" yaml:"input"`
	Output      float64 `json:"output" yaml:"output"`
	CacheRead   float64 `json:"cacheRead" yaml:"cache_read"`
	CacheCreate float64 `json:"cacheCreation" yaml:"cache_creation"`
}

func presetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets [PREFIX]",
		Short: "List model price presets",
		Long: `List the model presets used by --model, in USD per 1M tokens. With
--remote, LiteLLM's public price list is fetched and merged over the
built-in presets. PREFIX limits the list to matching model names.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			if format == export.FormatCSV {
				return fmt.Errorf("presets: %s output is not supported", format)
			}
			table, err := pricing.LoadDefault()
			if err != nil {
				return err
			}
			if remote, _ := cmd.Flags().GetBool("remote"); remote {
				fetched, err := pricing.FetchLiteLLM(commandContext(cmd))
				if err != nil {
					return err
				}
				table.Merge(fetched)
			}

			var rows []presetRow
			for _, name := range table.Names() {
				if len(args) == 1 && !strings.HasPrefix(name, args[0]) {
					continue
				}
				mp := table[name]
				rows = append(rows, presetRow{
					Model:       name,
					Input:       mp.Input,
					Output:      mp.Output,
					CacheRead:   mp.CacheRead,
					CacheCreate: mp.CacheCreation,
				})
			}

			w := cmd.OutOrStdout()
			if format != export.FormatText {
				if rows == nil {
					rows = []presetRow{}
				}
				return export.Encode(w, format, rows)
			}
			if len(rows) == 0 {
				fmt.Fprintln(w, "No matching presets.")
				return nil
			}
			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "MODEL\tINPUT\tOUTPUT\tCACHE READ\tCACHE WRITE")
			for _, r := range rows {
				fmt.Fprintf(tw, "%s\t%g\t%g\t%g\t%g\n", r.Model, r.Input, r.Output, r.CacheRead, r.CacheCreate)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().Bool("remote", false, "merge LiteLLM's current price list")
	return cmd
}
