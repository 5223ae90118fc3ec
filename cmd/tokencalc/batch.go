package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/anomredux/tokencalc/internal/batch"
	"github.com/anomredux/tokencalc/internal/domain"
	"github.com/anomredux/tokencalc/internal/export"
	"github.com/anomredux/tokencalc/internal/parser"
	"github.com/anomredux/tokencalc/internal/ui/components"
)

func batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch PATH",
		Short: "Estimate many parameter sets from JSONL files",
		Long: `Read parameter sets from a .jsonl file, or from every .jsonl file under a
directory, one JSON object per line. Duplicate parameter sets are dropped,
the rest are calculated concurrently and added to the history in input order.

Lines that fail to decode or validate are reported and skipped.`,
		Example: `  tokencalc batch requests.jsonl
  tokencalc batch ./estimates --concurrency 8 --format csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			concurrency, _ := cmd.Flags().GetInt("concurrency")
			noRecord, _ := cmd.Flags().GetBool("no-record")

			parsed, err := parser.ScanAndParse(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			for _, le := range parsed.Errors {
				fmt.Fprintln(cmd.ErrOrStderr(), "skipped", le.Error())
			}
			records := parser.Dedup(parsed.Records)

			return withEnv(cmd, func(e *env) error {
				rep := batch.NewRunner(e.session.Calculator(), concurrency).Run(records)
				if !noRecord {
					e.session.Record(commandContext(cmd), rep.Results())
				}
				e.logger.Info("batch complete",
					"records", len(records),
					"duplicates", len(parsed.Records)-len(records),
					"succeeded", rep.Succeeded,
					"failed", rep.Failed,
				)
				return writeBatchReport(cmd.OutOrStdout(), format, rep, parsed)
			})
		},
	}
	cmd.Flags().Int("concurrency", 0, "parallel calculations (0: one per CPU)")
	cmd.Flags().Bool("no-record", false, "do not add the results to the history")
	return cmd
}

type batchItem struct {
	Source string         `json:"source" yaml:"source"`
	Result *domain.Result `json:"result,omitempty" yaml:"result,omitempty"`
	Error  string         `json:"error,omitempty" yaml:"error,omitempty"`
}

type batchOutput struct {
	Items       []batchItem `json:"items" yaml:"items"`
	Succeeded   int         `json:"succeeded" yaml:"succeeded"`
	Failed      int         `json:"failed" yaml:"failed"`
	Skipped     int         `json:"skipped" yaml:"skipped"`
	ParseErrors int         `json:"parseErrors" yaml:"parse_errors"`
	TotalCost   float64     `json:"totalCost" yaml:"total_cost"`
}

func writeBatchReport(w io.Writer, format export.Format, rep batch.Report, parsed parser.ParseResult) error {
	switch format {
	case export.FormatCSV:
		return export.HistoryCSV(w, rep.Results())
	case export.FormatJSON, export.FormatYAML:
		out := batchOutput{
			Items:       make([]batchItem, 0, len(rep.Items)),
			Succeeded:   rep.Succeeded,
			Failed:      rep.Failed,
			Skipped:     parsed.SkipCount,
			ParseErrors: parsed.ErrorCount,
			TotalCost:   rep.TotalCost,
		}
		for _, it := range rep.Items {
			bi := batchItem{Source: it.Source}
			if it.Err != nil {
				bi.Error = it.Err.Error()
			} else {
				r := it.Result
				bi.Result = &r
			}
			out.Items = append(out.Items, bi)
		}
		return export.Encode(w, format, out)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SOURCE\tMODEL\tQUANTITY\tTOKENS\tCOST\tSTATUS")
	for _, it := range rep.Items {
		if it.Err != nil {
			fmt.Fprintf(tw, "%s\t-\t-\t-\t-\t%s\n", it.Source, it.Err)
			continue
		}
		r := it.Result
		model := r.Parameters.Model
		if model == "" {
			model = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\tok\n",
			it.Source,
			model,
			components.FormatNumber(r.Summary.Quantity),
			components.FormatNumber(r.Summary.TotalTokens),
			components.FormatUSD(r.Summary.TotalCost),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "\n%d ok, %d failed, %d skipped, %d unreadable; total %s\n",
		rep.Succeeded, rep.Failed, parsed.SkipCount, parsed.ErrorCount, components.FormatUSD(rep.TotalCost))
	return nil
}
