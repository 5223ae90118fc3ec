package components

import "testing"

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		input int
		want  string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1, "-1"},
		{-1234567, "-1,234,567"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.input); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatCompact(t *testing.T) {
	tests := []struct {
		input int
		want  string
	}{
		{999, "999"},
		{12345, "12.3K"},
		{2_500_000, "2.5M"},
	}
	for _, tt := range tests {
		if got := FormatCompact(tt.input); got != tt.want {
			t.Errorf("FormatCompact(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0, "$0.00"},
		{0.000174, "$0.000174"},
		{0.0002262, "$0.000226"},
		{0.2262, "$0.2262"},
		{1234.5, "$1,234.50"},
		{-0.5, "-$0.5000"},
	}
	for _, tt := range tests {
		if got := FormatUSD(tt.input); got != tt.want {
			t.Errorf("FormatUSD(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	if got := FormatMoney("BRL", 12); got != "BRL 12.00" {
		t.Errorf("FormatMoney = %q", got)
	}
}

func TestFormatRatio(t *testing.T) {
	if got := FormatRatio(4.42); got != "4.42" {
		t.Errorf("small ratio = %q", got)
	}
	if got := FormatRatio(12345.67); got != "12,345.7" {
		t.Errorf("large ratio = %q", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(23.0769, false); got != "23.1%" {
		t.Errorf("unsigned = %q", got)
	}
	if got := FormatPercent(-4, true); got != "-4.0%" {
		t.Errorf("signed negative = %q", got)
	}
	if got := FormatPercent(50, true); got != "+50.0%" {
		t.Errorf("signed positive = %q", got)
	}
}
