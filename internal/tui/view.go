package tui

import (
	"strings"
)

// View renders the header, status line and help.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	if m.err != nil {
		b.WriteString(m.styles.ErrorStyle.Render("Error: " + m.err.Error()))
	} else {
		inner := max(1, m.width-m.styles.ContainerStyle.GetHorizontalFrameSize())
		b.WriteString(RenderHeader(m.header, m.styles, inner))
	}
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(m.styles.StatusStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
