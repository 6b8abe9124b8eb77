// Package tui provides the terminal user interface for weekhead.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/weekhead/internal/header"
	"github.com/javiermolinar/weekhead/internal/tui/theme"
)

// Default column width used when the terminal width is unknown.
const defaultColWidth = 14

// Styles holds all lipgloss styles for the header, derived from a theme.
type Styles struct {
	colorBg      lipgloss.Color
	colorFg      lipgloss.Color
	colorFgMuted lipgloss.Color
	colorAccent  lipgloss.Color

	// App container
	ContainerStyle lipgloss.Style

	// Title styles by size
	TitleLargeStyle lipgloss.Style
	TitleSmallStyle lipgloss.Style

	// Day column styles
	ColumnStyle      lipgloss.Style
	TodayColumnStyle lipgloss.Style
	WeekdayStyle     lipgloss.Style
	DayMediumStyle   lipgloss.Style
	DaySmallStyle    lipgloss.Style

	// Status message
	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style
}

// StyleOverrides replaces parts of the derived styles. Nil fields keep
// the theme's style.
type StyleOverrides struct {
	Container *lipgloss.Style
	Today     *lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)

	s.colorBg = palette.Bg
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent

	s.ContainerStyle = lipgloss.NewStyle().
		Background(s.colorBg).
		Padding(0, 1)

	s.TitleLargeStyle = lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		Foreground(s.colorAccent).
		Background(s.colorBg).
		MarginBottom(1)

	s.TitleSmallStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.ColumnStyle = lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(s.colorFg).
		Background(s.colorBg).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(palette.Border).
		Width(defaultColWidth)

	// Today keeps the border so all columns stay the same height.
	s.TodayColumnStyle = s.ColumnStyle.
		Foreground(palette.TextOnToday).
		Background(palette.TodayBg).
		BorderForeground(palette.Today).
		Bold(true)

	s.WeekdayStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.DayMediumStyle = lipgloss.NewStyle().Bold(true)
	s.DaySmallStyle = lipgloss.NewStyle()

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Italic(true)

	s.ErrorStyle = lipgloss.NewStyle().
		Foreground(palette.Today).
		Bold(true)

	return s
}

// WithOverrides returns a copy of s with the overrides applied.
func (s *Styles) WithOverrides(o StyleOverrides) *Styles {
	out := *s
	if o.Container != nil {
		out.ContainerStyle = *o.Container
	}
	if o.Today != nil {
		out.TodayColumnStyle = *o.Today
	}
	return &out
}

// TitleStyle returns the title style for the given size.
func (s *Styles) TitleStyle(size header.Size) lipgloss.Style {
	if size == header.SizeLarge {
		return s.TitleLargeStyle
	}
	return s.TitleSmallStyle
}

// DayTextStyle returns the day label style for the given size.
func (s *Styles) DayTextStyle(size header.Size) lipgloss.Style {
	if size == header.SizeSmall {
		return s.DaySmallStyle
	}
	return s.DayMediumStyle
}

// ColumnStyleWidth returns the column style with specified width.
func (s *Styles) ColumnStyleWidth(width int, today bool) lipgloss.Style {
	if today {
		return s.TodayColumnStyle.Width(width)
	}
	return s.ColumnStyle.Width(width)
}
