package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// VisualWidth returns the visible cell width of s, ignoring ANSI escapes.
func VisualWidth(s string) int {
	return lipgloss.Width(s)
}

// PadRight pads a string to the given visual width.
func PadRight(s string, width int) string {
	gap := width - VisualWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// PadLeft pads a string on the left to the given visual width.
func PadLeft(s string, width int) string {
	gap := width - VisualWidth(s)
	if gap <= 0 {
		return s
	}
	return strings.Repeat(" ", gap) + s
}

// CenterText centers a string within the given visual width.
func CenterText(s string, width int) string {
	gap := width - VisualWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

// CenterBlock shifts a multi-line block uniformly so its widest line is
// centered; column alignment inside the block is preserved.
func CenterBlock(content string, width int) string {
	lines := strings.Split(content, "\n")
	maxW := 0
	for _, line := range lines {
		if vw := VisualWidth(line); vw > maxW {
			maxW = vw
		}
	}
	pad := (width - maxW) / 2
	if pad <= 0 {
		return content
	}
	prefix := strings.Repeat(" ", pad)
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

// JoinHorizontal joins blocks of lines side by side with a gap.
func JoinHorizontal(blocks [][]string, gap int) []string {
	maxH := 0
	widths := make([]int, len(blocks))
	for i, b := range blocks {
		maxH = max(maxH, len(b))
		for _, line := range b {
			widths[i] = max(widths[i], VisualWidth(line))
		}
	}
	spacer := strings.Repeat(" ", gap)
	result := make([]string, 0, maxH)
	for row := 0; row < maxH; row++ {
		var sb strings.Builder
		for i, b := range blocks {
			if i > 0 {
				sb.WriteString(spacer)
			}
			if row < len(b) {
				sb.WriteString(PadRight(b[row], widths[i]))
			} else {
				sb.WriteString(strings.Repeat(" ", widths[i]))
			}
		}
		result = append(result, sb.String())
	}
	return result
}

// Swatch returns a colored "■" for legend entries.
func Swatch(c lipgloss.Color) string {
	return lipgloss.NewStyle().Foreground(c).Render("■")
}
