package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/anomredux/tokencalc/internal/domain"
	"github.com/anomredux/tokencalc/internal/export"
	"github.com/anomredux/tokencalc/internal/history"
	"github.com/anomredux/tokencalc/internal/session"
	"github.com/anomredux/tokencalc/internal/ui/components"
	"github.com/anomredux/tokencalc/internal/ui/views"
)

// historyCmd returns the "history" command with list, show, stats, clear
// and export subcommands.
func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect past calculations",
		Long:  "List, show, summarize, export and clear the saved calculation history.",
	}

	cmd.AddCommand(historyListCmd())
	cmd.AddCommand(historyShowCmd())
	cmd.AddCommand(historyStatsCmd())
	cmd.AddCommand(historyClearCmd())
	cmd.AddCommand(historyExportCmd())

	return cmd
}

func addRangeFlags(cmd *cobra.Command) {
	cmd.Flags().String("since", "", "only entries from this date (YYYY-MM-DD)")
	cmd.Flags().String("until", "", "only entries up to this date (YYYY-MM-DD)")
}

// entriesInRange returns the history filtered by --since and --until in the
// configured timezone, newest first.
func entriesInRange(cmd *cobra.Command, e *env) ([]domain.Result, error) {
	since, _ := cmd.Flags().GetString("since")
	until, _ := cmd.Flags().GetString("until")
	return e.session.History().Between(since, until, e.cfg.Location())
}

var errAmbiguousID = errors.New("ambiguous history id")

// findResult resolves a full ID or a unique ID prefix.
func findResult(h *history.Manager, id string) (domain.Result, error) {
	if r, ok := h.ByID(id); ok {
		return r, nil
	}
	var found []domain.Result
	for _, r := range h.All() {
		if strings.HasPrefix(r.ID, id) {
			found = append(found, r)
		}
	}
	switch len(found) {
	case 0:
		return domain.Result{}, fmt.Errorf("%w: %s", session.ErrNoDataAvailable, id)
	case 1:
		return found[0], nil
	}
	return domain.Result{}, fmt.Errorf("%w: %s matches %d entries", errAmbiguousID, id, len(found))
}

func historyListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved calculations, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			limit, _ := cmd.Flags().GetInt("limit")
			return withEnv(cmd, func(e *env) error {
				entries, err := entriesInRange(cmd, e)
				if err != nil {
					return err
				}
				if limit > 0 && len(entries) > limit {
					entries = entries[:limit]
				}
				return writeHistory(cmd.OutOrStdout(), format, entries, e.cfg.Location())
			})
		},
	}
	addRangeFlags(cmd)
	cmd.Flags().IntP("limit", "n", 0, "show at most this many entries")
	return cmd
}

func writeHistory(w io.Writer, format export.Format, entries []domain.Result, tz *time.Location) error {
	switch format {
	case export.FormatCSV:
		return export.HistoryCSV(w, entries)
	case export.FormatJSON, export.FormatYAML:
		return export.Encode(w, format, entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, "No calculations in the history.")
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tWHEN\tMODEL\tQUANTITY\tTOKENS\tCOST")
	for _, r := range entries {
		model := r.Parameters.Model
		if model == "" {
			model = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			shortID(r.ID),
			r.Timestamp.In(tz).Format("2006-01-02 15:04"),
			model,
			components.FormatNumber(r.Summary.Quantity),
			components.FormatNumber(r.Summary.TotalTokens),
			components.FormatUSD(r.Summary.TotalCost),
		)
	}
	return tw.Flush()
}

// shortID is long enough to be unique in any realistic history and is
// accepted back by findResult.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func historyShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one saved calculation",
		Long:  "Show a saved calculation in full. ID may be any unique prefix of the entry's id.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			return withEnv(cmd, func(e *env) error {
				r, err := findResult(e.session.History(), args[0])
				if err != nil {
					return err
				}
				return writeResult(cmd.OutOrStdout(), format, r, views.Rate{})
			})
		},
	}
}

func historyStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize saved calculations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			if format == export.FormatCSV {
				return fmt.Errorf("history stats: %s output is not supported", format)
			}
			return withEnv(cmd, func(e *env) error {
				entries, err := entriesInRange(cmd, e)
				if err != nil {
					return err
				}
				stats, ok := domain.Aggregate(entries)
				w := cmd.OutOrStdout()
				if format != export.FormatText {
					return export.Encode(w, format, stats)
				}
				if !ok {
					fmt.Fprintln(w, "No calculations in the history.")
					return nil
				}
				tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
				fmt.Fprintf(tw, "Calculations\t%s\n", components.FormatNumber(stats.Count))
				fmt.Fprintf(tw, "Average cost\t%s\n", components.FormatUSD(stats.AverageCost))
				fmt.Fprintf(tw, "Cost range\t%s - %s\n", components.FormatUSD(stats.MinCost), components.FormatUSD(stats.MaxCost))
				fmt.Fprintf(tw, "Average tokens\t%s\n", components.FormatNumber(int(stats.AverageTokens+0.5)))
				fmt.Fprintf(tw, "Token range\t%s - %s\n", components.FormatNumber(stats.MinTokens), components.FormatNumber(stats.MaxTokens))
				fmt.Fprintf(tw, "Last calculation\t%s\n", stats.MostRecentTimestamp.In(e.cfg.Location()).Format("2006-01-02 15:04"))
				return tw.Flush()
			})
		},
	}
	addRangeFlags(cmd)
	return cmd
}

func historyClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every saved calculation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			yes, _ := cmd.Flags().GetBool("yes")
			return withEnv(cmd, func(e *env) error {
				n := e.session.History().Len()
				if n == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "History is already empty.")
					return nil
				}
				if !yes {
					return fmt.Errorf("refusing to delete %d entries without --yes", n)
				}
				e.session.ClearHistory(commandContext(cmd))
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d entries.\n", n)
				return nil
			})
		},
	}
	cmd.Flags().BoolP("yes", "y", false, "confirm deletion")
	return cmd
}

func historyExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the history as CSV",
		Long:  "Write one CSV row per saved calculation to --out, or to stdout.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")
			return withEnv(cmd, func(e *env) error {
				entries, err := entriesInRange(cmd, e)
				if err != nil {
					return err
				}
				if out == "" {
					return export.HistoryCSV(cmd.OutOrStdout(), entries)
				}
				f, err := os.OpenFile(out, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
				if err != nil {
					return fmt.Errorf("create %s: %w", out, err)
				}
				if err := export.HistoryCSV(f, entries); err != nil {
					f.Close()
					return fmt.Errorf("write %s: %w", out, err)
				}
				if err := f.Close(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d entries to %s\n", len(entries), out)
				return nil
			})
		},
	}
	addRangeFlags(cmd)
	cmd.Flags().StringP("out", "O", "", "output file (default: stdout)")
	return cmd
}
