package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/anomredux/tokencalc/internal/config"
	"github.com/anomredux/tokencalc/internal/domain"
	"github.com/anomredux/tokencalc/internal/export"
	"github.com/anomredux/tokencalc/internal/ui/views"
)

// renderWidth is the width of text output outside the TUI.
const renderWidth = 100

func calcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Estimate the cost of one prompt and completion",
		Long: `Estimate token counts for the given input and output text, price them and
project the cost at other volumes. The result is added to the history.

Prices are USD per 1M tokens. With --model and no price flags, the model's
preset prices are used; with neither, the prices from the config file.`,
		Example: `  tokencalc calc --model claude-sonnet-4 --input "Summarize this" --output-file reply.txt
  tokencalc calc --input-price 3 --output-price 15 --cached-price 0.3 --input-file prompt.txt --output "ok" -q 5000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			return withEnv(cmd, func(e *env) error {
				p, err := parametersFromFlags(cmd, e.cfg.Defaults)
				if err != nil {
					return err
				}
				r, err := e.session.Submit(commandContext(cmd), p)
				if err != nil {
					return err
				}

				var rate views.Rate
				if convert, _ := cmd.Flags().GetBool("convert"); convert {
					v, _ := e.rates.Refresh(commandContext(cmd), false)
					rate = views.Rate{Currency: e.currency, Value: v}
				}
				return writeResult(cmd.OutOrStdout(), format, r, rate)
			})
		},
	}

	cmd.Flags().StringP("model", "m", "", "model preset used to fill prices")
	cmd.Flags().Float64("input-price", 0, "input token price (USD per 1M)")
	cmd.Flags().Float64("output-price", 0, "output token price (USD per 1M)")
	cmd.Flags().Float64("cached-price", 0, "cached token price (USD per 1M)")
	cmd.Flags().StringP("input", "i", "", "input (prompt) text")
	cmd.Flags().StringP("output", "o", "", "expected output text")
	cmd.Flags().String("input-file", "", "read the input text from a file")
	cmd.Flags().String("output-file", "", "read the output text from a file")
	cmd.Flags().IntP("quantity", "q", 0, "number of operations (default from config)")
	cmd.Flags().Float64("markup", 0, "markup percentage over cost (default from config)")
	cmd.Flags().Float64("credit-value", 0, "value of one credit (default from config)")
	cmd.Flags().Bool("convert", false, "also show amounts in the local currency")
	cmd.MarkFlagsMutuallyExclusive("input", "input-file")
	cmd.MarkFlagsMutuallyExclusive("output", "output-file")
	return cmd
}

// parametersFromFlags builds the parameter set. Flags left unset fall back
// to the config defaults.
func parametersFromFlags(cmd *cobra.Command, d config.DefaultsConfig) (domain.Parameters, error) {
	f := cmd.Flags()
	p := domain.Parameters{
		Model:    d.Model,
		Quantity: float64(d.Quantity),
		Resale:   domain.ResaleSettings{Markup: d.Markup, CreditValue: d.CreditValue},
	}
	if f.Changed("model") {
		p.Model, _ = f.GetString("model")
	}

	priceSet := f.Changed("input-price") || f.Changed("output-price") || f.Changed("cached-price")
	switch {
	case priceSet:
		p.InputTokenPrice, _ = f.GetFloat64("input-price")
		p.OutputTokenPrice, _ = f.GetFloat64("output-price")
		p.CachedTokenPrice, _ = f.GetFloat64("cached-price")
	case p.Model == "":
		p.InputTokenPrice = d.InputPrice
		p.OutputTokenPrice = d.OutputPrice
		p.CachedTokenPrice = d.CachedPrice
	}
	// With a model and no explicit prices, zero prices let the preset apply.

	if f.Changed("quantity") {
		q, _ := f.GetInt("quantity")
		p.Quantity = float64(q)
	}
	if f.Changed("markup") {
		p.Resale.Markup, _ = f.GetFloat64("markup")
	}
	if f.Changed("credit-value") {
		p.Resale.CreditValue, _ = f.GetFloat64("credit-value")
	}

	var err error
	if p.InputText, err = textFlag(cmd, "input", "input-file"); err != nil {
		return p, err
	}
	if p.OutputText, err = textFlag(cmd, "output", "output-file"); err != nil {
		return p, err
	}
	return p, nil
}

func textFlag(cmd *cobra.Command, textName, fileName string) (string, error) {
	path, _ := cmd.Flags().GetString(fileName)
	if path == "" {
		s, _ := cmd.Flags().GetString(textName)
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read --%s: %w", fileName, err)
	}
	return string(data), nil
}

// writeResult prints r in format. CSV output is the breakdown followed by
// the scenarios, separated by a blank line.
func writeResult(w io.Writer, format export.Format, r domain.Result, rate views.Rate) error {
	switch format {
	case export.FormatJSON, export.FormatYAML:
		return export.Encode(w, format, r)
	case export.FormatCSV:
		if err := export.BreakdownCSV(w, r); err != nil {
			return err
		}
		if len(r.Scenarios) == 0 {
			return nil
		}
		fmt.Fprintln(w)
		return export.ScenariosCSV(w, r)
	}

	cv := views.NewCalculatorView()
	cv.SetResult(r)
	cv.SetRate(rate)
	sv := views.NewScenariosView()
	sv.SetResult(r)
	sv.SetRate(rate)
	fmt.Fprintln(w, cv.Render(renderWidth, 0, false))
	fmt.Fprintln(w, sv.Render(renderWidth, 0, false))
	return nil
}
