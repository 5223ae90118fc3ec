package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/anomredux/tokencalc/internal/domain"
	"github.com/anomredux/tokencalc/internal/exchange"
	"github.com/anomredux/tokencalc/internal/pricing"
	"github.com/anomredux/tokencalc/internal/ui/views"
)

func main() {
	width := flag.Int("width", 100, "render width")
	height := flag.Int("height", 40, "render height for the history view")
	live := flag.Bool("live-rate", false, "fetch the current USD-BRL rate")
	flag.Parse()

	table, _ := pricing.LoadDefault()
	now := time.Now()

	samples := []domain.Parameters{
		{
			Model:      "claude-sonnet-4-6",
			InputText:  "Summarize the attached quarterly report in three bullet points for the board.",
			OutputText: "Revenue grew 12% quarter over quarter. Churn fell to 2.1%. Hiring is on plan.",
			Quantity:   5000,
			Resale:     domain.ResaleSettings{Markup: 40, CreditValue: 0.01},
		},
		{
			Model:      "gpt-4o-mini",
			InputText:  "Classify this ticket: my invoice shows the wrong amount.",
			OutputText: "billing",
			Quantity:   20000,
		},
	}

	var results []domain.Result
	for i, p := range samples {
		calc := pricing.NewCalculator(table, pricing.WithClock(func() time.Time {
			return now.Add(-time.Duration(len(samples)-1-i) * time.Hour)
		}))
		r, err := calc.Calculate(p)
		if err != nil {
			fmt.Fprintln(os.Stderr, "sample rejected:", err)
			os.Exit(1)
		}
		// history is newest first
		results = append([]domain.Result{r}, results...)
	}

	rate := views.Rate{Currency: "BRL", Value: 5.5}
	if *live {
		src := exchange.NewHTTPSource("", "")
		if v, err := src.FetchRate(context.Background()); err != nil {
			fmt.Printf("Rate fetch failed (using fallback): %v\n\n", err)
		} else {
			rate.Value = v
		}
	}

	cv := views.NewCalculatorView()
	cv.SetResult(results[0])
	cv.SetRate(rate)
	fmt.Println(cv.Render(*width, *height, false))

	sv := views.NewScenariosView()
	sv.SetResult(results[0])
	sv.SetRate(rate)
	fmt.Println(sv.Render(*width, *height, false))

	hv := views.NewHistoryView(time.Local)
	hv.SetData(results)
	hv.SetComparison(domain.Compare(results[1], results[0]))
	fmt.Println(hv.Render(*width, *height, false))
}
