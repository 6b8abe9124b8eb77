package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/weekhead/internal/header"
)

// columnWidth splits width evenly across n columns, never below 4 cells.
// A non-positive width uses defaultColWidth.
func columnWidth(width, n int) int {
	if n <= 0 {
		return defaultColWidth
	}
	if width <= 0 {
		return defaultColWidth
	}
	return max(4, width/n)
}

// RenderHeader renders the title line and the row of day columns.
// width is the space available inside the container.
func RenderHeader(h header.Header, s *Styles, width int) string {
	colWidth := columnWidth(width, len(h.Columns))
	rowWidth := colWidth * len(h.Columns)

	title := s.TitleStyle(h.TitleSize).Render(ansi.Truncate(h.Title, max(rowWidth, colWidth), "…"))
	if len(h.Columns) == 0 {
		return s.ContainerStyle.Render(title)
	}

	text := s.DayTextStyle(h.DayTextSize)
	weekday := s.WeekdayStyle.Inherit(text)
	// Cell content loses the column's horizontal padding and border.
	inner := max(1, colWidth-s.ColumnStyle.GetHorizontalFrameSize())

	cells := make([]string, 0, len(h.Columns))
	for _, c := range h.Columns {
		content := lipgloss.JoinVertical(lipgloss.Center,
			weekday.Render(ansi.Truncate(c.Weekday, inner, "…")),
			text.Render(ansi.Truncate(c.Label, inner, "…")),
		)
		cells = append(cells, s.ColumnStyleWidth(colWidth, c.Today).Render(content))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	return s.ContainerStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, row))
}
