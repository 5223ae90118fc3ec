// Package theme holds the palette and shared styles of the terminal UI.
package theme

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Accent palette
var (
	ColorLavender = lipgloss.Color("#9f99d1")
	ColorSkyBlue  = lipgloss.Color("#86bada")
	ColorMauve    = lipgloss.Color("#dbaad7")
	ColorPeach    = lipgloss.Color("#f6bcb0")
	ColorGold     = lipgloss.Color("#ffe3b3")
)

// Surfaces and text (dark theme)
var (
	ColorCardBg     = lipgloss.Color("#232438")
	ColorElevatedBg = lipgloss.Color("#2a2b42")
	ColorOverlayBg  = lipgloss.Color("#111122")
	ColorBorder     = lipgloss.Color("#3a3b52")
	ColorMutedText  = lipgloss.Color("#6b6d8a")
	ColorBodyText   = lipgloss.Color("#c8cad8")
	ColorBrightText = lipgloss.Color("#ecedf5")
)

// Money and volume
var (
	ColorProfit = lipgloss.Color("#9ad9a8") // positive margin, price drop
	ColorLoss   = lipgloss.Color("#f07070") // price increase, errors
	ColorCost   = ColorPeach
	ColorTokens = ColorSkyBlue
)

// CategoryColors maps a cost category key (input, output, cached) to its accent.
var CategoryColors = map[string]lipgloss.Color{
	"input":  ColorSkyBlue,
	"output": ColorMauve,
	"cached": ColorGold,
}

// titleCycle is the loop animated titles slide through.
var titleCycle = []lipgloss.Color{ColorSkyBlue, ColorLavender, ColorMauve, ColorPeach, ColorGold}

// SignedColor picks the profit or loss color for v. Zero stays muted.
func SignedColor(v float64) lipgloss.Color {
	switch {
	case v > 0:
		return ColorProfit
	case v < 0:
		return ColorLoss
	default:
		return ColorMutedText
	}
}

// HexToRGB parses "#rrggbb" (the hash is optional). Malformed input yields
// black.
func HexToRGB(hex string) (uint8, uint8, uint8) {
	v, err := strconv.ParseUint(strings.TrimPrefix(hex, "#"), 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}

// LerpColor interpolates between two hex colors; t is clamped to [0, 1].
func LerpColor(from, to string, t float64) string {
	t = math.Max(0, math.Min(1, t))
	r1, g1, b1 := HexToRGB(from)
	r2, g2, b2 := HexToRGB(to)
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + t*(float64(b)-float64(a)))
	}
	return fmt.Sprintf("#%02x%02x%02x", mix(r1, r2), mix(g1, g2), mix(b1, b2))
}

// paint colors each rune of text with colorAt(position in [0, 1]).
func paint(text string, base lipgloss.Style, colorAt func(t float64) string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	last := float64(max(len(runes)-1, 1))
	var sb strings.Builder
	sb.Grow(len(text) * 20)
	for i, r := range runes {
		sb.WriteString(base.Foreground(lipgloss.Color(colorAt(float64(i) / last))).Render(string(r)))
	}
	return sb.String()
}

// GradientText fades text from one color to another.
func GradientText(text string, from, to lipgloss.Color) string {
	return paint(text, lipgloss.NewStyle(), func(t float64) string {
		return LerpColor(string(from), string(to), t)
	})
}

// AnimatedGradientText slides a short window of titleCycle across text. tick
// advances with the UI blink timer; one full loop takes 100 ticks. An
// optional bg is applied to every rune.
func AnimatedGradientText(text string, tick uint, bg ...lipgloss.Color) string {
	base := lipgloss.NewStyle()
	if len(bg) > 0 {
		base = base.Background(bg[0])
	}
	n := float64(len(titleCycle))
	window := 1.5 / n
	phase := float64(tick%100) / 100
	return paint(text, base, func(t float64) string {
		pos := math.Mod(phase+t*window, 1) * n
		i := int(pos) % len(titleCycle)
		next := titleCycle[(i+1)%len(titleCycle)]
		return LerpColor(string(titleCycle[i]), string(next), pos-math.Floor(pos))
	})
}

// Common styles
var (
	CardStyle = lipgloss.NewStyle().
			Background(ColorCardBg).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	MutedStyle   = lipgloss.NewStyle().Foreground(ColorMutedText)
	BodyStyle    = lipgloss.NewStyle().Foreground(ColorBodyText)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorPeach).Bold(true)
)
