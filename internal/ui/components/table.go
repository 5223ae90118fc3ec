package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/anomredux/tokencalc/internal/theme"
)

var (
	rowEvenStyle   = lipgloss.NewStyle()
	rowOddStyle    = lipgloss.NewStyle().Background(theme.ColorElevatedBg)
	cursorStyle    = lipgloss.NewStyle().Foreground(theme.ColorGold)
	cursorActive   = cursorStyle.Render("▶ ")
	cursorBlank    = "  "
	markedActive   = lipgloss.NewStyle().Foreground(theme.ColorMauve).Render("● ")
	tableHeadStyle = lipgloss.NewStyle().Foreground(theme.ColorMutedText).Bold(true)
)

// RowBackground returns a subtle background style for alternating rows.
// Even rows (0, 2, 4...) get no background, odd rows get ElevatedBg.
func RowBackground(index int) lipgloss.Style {
	if index%2 == 1 {
		return rowOddStyle
	}
	return rowEvenStyle
}

// CursorIndicator returns "▶ " in Gold if selected, "  " otherwise.
func CursorIndicator(selected bool) string {
	if selected {
		return cursorActive
	}
	return cursorBlank
}

// MarkIndicator flags a row picked for comparison.
func MarkIndicator(marked bool) string {
	if marked {
		return markedActive
	}
	return cursorBlank
}

// Column describes one table column. Numeric columns are right-aligned.
type Column struct {
	Title   string
	Width   int
	Numeric bool
}

// Table renders fixed-width rows under a muted header. Cells are pre-styled
// strings; rows get alternating backgrounds. Prefix, when set, returns the
// gutter (cursor, mark) for row i and must be the same width for every row.
type Table struct {
	Columns []Column
	Rows    [][]string
	Prefix  func(i int) string
}

func (t Table) Render() string {
	gutter := ""
	if t.Prefix != nil && len(t.Rows) > 0 {
		gutter = strings.Repeat(" ", VisualWidth(t.Prefix(0)))
	}

	head := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		head[i] = t.cell(tableHeadStyle.Render(col.Title), col)
	}
	lines := []string{gutter + strings.Join(head, " ")}

	for r, row := range t.Rows {
		cells := make([]string, len(t.Columns))
		for i, col := range t.Columns {
			v := ""
			if i < len(row) {
				v = row[i]
			}
			cells[i] = t.cell(v, col)
		}
		prefix := ""
		if t.Prefix != nil {
			prefix = t.Prefix(r)
		}
		lines = append(lines, prefix+RowBackground(r).Render(strings.Join(cells, " ")))
	}
	return strings.Join(lines, "\n")
}

func (t Table) cell(v string, col Column) string {
	if VisualWidth(v) > col.Width {
		v = lipgloss.NewStyle().MaxWidth(col.Width).Render(v)
	}
	if col.Numeric {
		return PadLeft(v, col.Width)
	}
	return PadRight(v, col.Width)
}
