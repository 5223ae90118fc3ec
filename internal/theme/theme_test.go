package theme_test

import (
	"testing"

	"github.com/anomredux/tokencalc/internal/theme"
)

func TestLerpColor(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		t    float64
		want string
	}{
		{"start", "#000000", "#ffffff", 0.0, "#000000"},
		{"end", "#000000", "#ffffff", 1.0, "#ffffff"},
		{"midpoint", "#000000", "#ffffff", 0.5, "#7f7f7f"},
		{"same color", "#ff0000", "#ff0000", 0.5, "#ff0000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := theme.LerpColor(tt.from, tt.to, tt.t)
			if got != tt.want {
				t.Errorf("LerpColor(%s, %s, %f) = %s, want %s", tt.from, tt.to, tt.t, got, tt.want)
			}
		})
	}
}

func TestHexToRGB(t *testing.T) {
	r, g, b := theme.HexToRGB("#ff8040")
	if r != 0xff || g != 0x80 || b != 0x40 {
		t.Errorf("got (%d, %d, %d), want (255, 128, 64)", r, g, b)
	}

	r, g, b = theme.HexToRGB("ff8040")
	if r != 0xff || g != 0x80 || b != 0x40 {
		t.Errorf("without hash: got (%d, %d, %d), want (255, 128, 64)", r, g, b)
	}
}

func TestGradientText(t *testing.T) {
	result := theme.GradientText("Hello", "#000000", "#ffffff")
	if result == "" {
		t.Error("GradientText returned empty string")
	}

	result = theme.GradientText("", "#000000", "#ffffff")
	if result != "" {
		t.Error("GradientText should return empty for empty input")
	}
}

func TestSignedColor(t *testing.T) {
	if got := theme.SignedColor(12.5); got != theme.ColorProfit {
		t.Errorf("positive = %v, want profit color", got)
	}
	if got := theme.SignedColor(-0.01); got != theme.ColorLoss {
		t.Errorf("negative = %v, want loss color", got)
	}
	if got := theme.SignedColor(0); got != theme.ColorMutedText {
		t.Errorf("zero = %v, want muted", got)
	}
}

func TestCategoryColors_CoverBreakdown(t *testing.T) {
	for _, key := range []string{"input", "output", "cached"} {
		if _, ok := theme.CategoryColors[key]; !ok {
			t.Errorf("missing color for category %q", key)
		}
	}
}

func TestHexToRGB_Malformed(t *testing.T) {
	r, g, b := theme.HexToRGB("#zzzzzz")
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("got (%d, %d, %d), want black", r, g, b)
	}
}

func TestLerpColor_Clamps(t *testing.T) {
	if got := theme.LerpColor("#000000", "#ffffff", 2); got != "#ffffff" {
		t.Errorf("t=2 got %s, want #ffffff", got)
	}
	if got := theme.LerpColor("#000000", "#ffffff", -1); got != "#000000" {
		t.Errorf("t=-1 got %s, want #000000", got)
	}
}

func TestAnimatedGradientText(t *testing.T) {
	if got := theme.AnimatedGradientText("", 3); got != "" {
		t.Errorf("empty input rendered %q", got)
	}
	for _, tick := range []uint{0, 42, 99, 100, 12345} {
		if got := theme.AnimatedGradientText("Summary", tick, theme.ColorCardBg); got == "" {
			t.Errorf("tick %d rendered nothing", tick)
		}
	}
}
