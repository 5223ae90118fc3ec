package components

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

// FormatNumber formats an integer with comma separators (e.g. 1,234,567).
func FormatNumber(n int) string {
	return humanize.Comma(int64(n))
}

// FormatCompact formats a number with K/M suffix (e.g. 12345 → "12.3K").
func FormatCompact(n int) string {
	if n < 1000 {
		return strconv.Itoa(n)
	}
	if n < 1_000_000 {
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	}
	return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
}

// FormatUSD renders a dollar amount. Sub-cent values keep enough
// significant digits to stay readable ($0.000174); larger ones get two
// decimals and thousands separators.
func FormatUSD(v float64) string {
	return formatMoney("$", v)
}

// FormatMoney is FormatUSD for another currency symbol.
func FormatMoney(symbol string, v float64) string {
	return formatMoney(symbol+" ", v)
}

func formatMoney(prefix string, v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	switch {
	case v == 0:
		return prefix + "0.00"
	case v < 0.01:
		// three significant digits
		digits := int(-math.Floor(math.Log10(v))) + 2
		return sign + prefix + strconv.FormatFloat(v, 'f', digits, 64)
	case v < 1:
		return sign + prefix + strconv.FormatFloat(v, 'f', 4, 64)
	default:
		return sign + prefix + humanize.FormatFloat("#,###.##", v)
	}
}

// FormatPercent renders a percentage with one decimal and an explicit sign
// when signed is true.
func FormatPercent(v float64, signed bool) string {
	if signed {
		return fmt.Sprintf("%+.1f%%", v)
	}
	return fmt.Sprintf("%.1f%%", v)
}

// FormatRatio renders a per-credit or per-operation ratio.
func FormatRatio(v float64) string {
	if v >= 1000 {
		return humanize.FormatFloat("#,###.#", v)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
