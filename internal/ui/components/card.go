package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/anomredux/tokencalc/internal/theme"
)

// Card wraps content in a rounded-border box with a title in the top border.
// When Compact is true, renders title + separator instead of full border.
type Card struct {
	Title   string // pre-styled
	Badge   string // optional, right-aligned in the top border (e.g. exchange rate)
	Width   int    // total outer width
	Content string // pre-rendered content lines
	Compact bool
}

// InnerWidth returns the usable content width inside the card.
func (c Card) InnerWidth() int {
	if c.Compact {
		return c.Width - 2
	}
	return c.Width - 4 // 2 border chars + 2 padding spaces
}

func (c Card) Render() string {
	if c.Compact {
		return c.renderCompact()
	}
	return c.renderFull()
}

func (c Card) renderCompact() string {
	sep := theme.MutedStyle.Render("  " + strings.Repeat("─", max(c.Width-4, 1)))
	title := c.Title
	if c.Badge != "" {
		title = PadRight(title, c.Width-2-VisualWidth(c.Badge)) + c.Badge
	}
	if c.Content == "" {
		return title + "\n" + sep
	}
	return title + "\n" + sep + "\n" + c.Content
}

func (c Card) renderFull() string {
	bs := lipgloss.NewStyle().Foreground(theme.ColorBorder)
	innerWidth := c.Width - 2

	// ╭─ Title ──────── Badge ─╮
	titlePart := ""
	if c.Title != "" {
		titlePart = " " + c.Title + " "
	}
	badgePart := ""
	if c.Badge != "" {
		badgePart = " " + c.Badge + " "
	}
	used := 1 + VisualWidth(titlePart) + VisualWidth(badgePart)
	if badgePart != "" {
		used++ // trailing dash after the badge
	}
	if used > innerWidth {
		// not enough room for both: the badge goes first
		badgePart = ""
		used = 1 + VisualWidth(titlePart)
	}
	fill := max(innerWidth-used, 0)
	top := bs.Render("╭─") + titlePart + bs.Render(strings.Repeat("─", fill))
	if badgePart != "" {
		top += badgePart + bs.Render("─")
	}
	top += bs.Render("╮")

	contentWidth := innerWidth - 2
	var body []string
	for _, line := range strings.Split(c.Content, "\n") {
		pad := max(contentWidth-VisualWidth(line), 0)
		body = append(body, bs.Render("│")+" "+line+strings.Repeat(" ", pad)+" "+bs.Render("│"))
	}

	bottom := bs.Render("╰" + strings.Repeat("─", innerWidth) + "╯")
	return top + "\n" + strings.Join(body, "\n") + "\n" + bottom
}
