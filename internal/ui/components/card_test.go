package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestCard_InnerWidth(t *testing.T) {
	assert.Equal(t, 76, Card{Width: 80}.InnerWidth())
	assert.Equal(t, 78, Card{Width: 80, Compact: true}.InnerWidth())
}

// Every line of a bordered card is exactly Width columns, whatever the
// title, badge and content.
func TestCard_FullWidthIsExact(t *testing.T) {
	tests := []struct {
		name string
		card Card
	}{
		{"title only", Card{Title: "Summary", Width: 50, Content: "Total cost  $12.50"}},
		{"multi-line", Card{Title: "Breakdown", Width: 60, Content: "Input   $0.01\nOutput  $0.12\nCached  $0.00"}},
		{"badge", Card{Title: "Summary", Badge: "USD → BRL 5.43", Width: 50, Content: "x"}},
		{"badge dropped", Card{Title: "A rather long card title", Badge: "USD → BRL 5.43", Width: 30, Content: "x"}},
		{"no title", Card{Width: 24, Content: "n/a"}},
		{"empty content", Card{Title: "History", Width: 30}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, line := range strings.Split(tt.card.Render(), "\n") {
				assert.Equal(t, tt.card.Width, lipgloss.Width(line), "line %d: %q", i, line)
			}
		})
	}
}

func TestCard_Full(t *testing.T) {
	out := Card{Title: "Financials", Width: 40, Content: "Margin  33.3%"}.Render()
	lines := strings.Split(out, "\n")

	assert.True(t, strings.HasPrefix(lines[0], "╭"))
	assert.Contains(t, lines[0], "Financials")
	assert.Contains(t, out, "Margin  33.3%")
	assert.True(t, strings.HasSuffix(lines[len(lines)-1], "╯"))
}

func TestCard_Badge(t *testing.T) {
	top := strings.Split(Card{Title: "Summary", Badge: "USD → BRL 5.43", Width: 50, Content: "x"}.Render(), "\n")[0]
	assert.Contains(t, top, "BRL 5.43")
	assert.Less(t, strings.Index(top, "Summary"), strings.Index(top, "BRL"))

	top = strings.Split(Card{Title: "A rather long card title", Badge: "USD → BRL 5.43", Width: 30, Content: "x"}.Render(), "\n")[0]
	assert.NotContains(t, top, "BRL", "a badge that does not fit is dropped")
	assert.Contains(t, top, "A rather long card title")
}

func TestCard_Compact(t *testing.T) {
	out := Card{Title: "Scenarios", Badge: "BRL", Width: 40, Content: "1,000  $1.20", Compact: true}.Render()
	lines := strings.Split(out, "\n")

	assert.NotContains(t, out, "╭")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Scenarios")
	assert.True(t, strings.HasSuffix(lines[0], "BRL"))
	assert.Contains(t, lines[1], "─")
	assert.Equal(t, "1,000  $1.20", lines[2])

	assert.Len(t, strings.Split(Card{Title: "Empty", Width: 20, Compact: true}.Render(), "\n"), 2)
}
