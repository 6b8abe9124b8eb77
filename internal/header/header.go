// Package header builds the title and day columns of a week view header.
package header

import (
	"fmt"
	"strings"
	"time"

	"github.com/javiermolinar/weekhead/internal/dateutil"
	"github.com/javiermolinar/weekhead/internal/locale"
)

// Default patterns.
const (
	DefaultDayFormat       = "MMM D"
	DefaultWeekdayFormat   = "ddd"
	DefaultMonthYearFormat = "MMMM Y"
)

// Size is the relative text size of a header element.
type Size int

const (
	SizeSmall Size = iota
	SizeMedium
	SizeLarge
)

func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	}
	return fmt.Sprintf("Size(%d)", int(s))
}

// Options controls what a header shows.
type Options struct {
	DayCount        dateutil.DayCount
	DayFormat       string // e.g. "MMM D"
	WeekdayFormat   string // e.g. "ddd"
	MonthYearFormat string // e.g. "MMMM Y"
}

func (o Options) withDefaults() Options {
	if o.DayFormat == "" {
		o.DayFormat = DefaultDayFormat
	}
	if o.WeekdayFormat == "" {
		o.WeekdayFormat = DefaultWeekdayFormat
	}
	if o.MonthYearFormat == "" {
		o.MonthYearFormat = DefaultMonthYearFormat
	}
	return o
}

// Column is one displayed day.
type Column struct {
	Date    time.Time
	Weekday string
	Label   string
	Today   bool
}

// Header is a computed week view header.
type Header struct {
	Title       string
	TitleSize   Size
	DayTextSize Size
	DayCount    dateutil.DayCount
	Columns     []Column
}

// Build computes the header for selected. today decides which column is
// highlighted and is compared by calendar day only.
func Build(selected, today time.Time, opts Options, f locale.Formatter) (Header, error) {
	if !opts.DayCount.Valid() {
		return Header{}, fmt.Errorf("%w, got %d", dateutil.ErrInvalidDayCount, opts.DayCount.Int())
	}
	opts = opts.withDefaults()

	title, err := f.Format(selected, opts.MonthYearFormat)
	if err != nil {
		return Header{}, fmt.Errorf("formatting title: %w", err)
	}

	dates := dateutil.ColumnDates(selected, opts.DayCount)
	columns := make([]Column, 0, len(dates))
	for _, d := range dates {
		weekday, err := f.Format(d, opts.WeekdayFormat)
		if err != nil {
			return Header{}, fmt.Errorf("formatting weekday: %w", err)
		}
		label, err := f.Format(d, opts.DayFormat)
		if err != nil {
			return Header{}, fmt.Errorf("formatting day: %w", err)
		}
		columns = append(columns, Column{
			Date:    d,
			Weekday: weekday,
			Label:   label,
			Today:   dateutil.SameDay(d, today),
		})
	}

	return Header{
		Title:       title,
		TitleSize:   titleSize(opts.DayCount),
		DayTextSize: dayTextSize(opts.DayCount),
		DayCount:    opts.DayCount,
		Columns:     columns,
	}, nil
}

func titleSize(c dateutil.DayCount) Size {
	if c > dateutil.One {
		return SizeSmall
	}
	return SizeLarge
}

func dayTextSize(c dateutil.DayCount) Size {
	if c == dateutil.Seven {
		return SizeSmall
	}
	return SizeMedium
}

// TodayIndex returns the index of today's column, or -1.
func (h Header) TodayIndex() int {
	for i, c := range h.Columns {
		if c.Today {
			return i
		}
	}
	return -1
}

// PlainText renders the header without styling, one column per line.
func (h Header) PlainText() string {
	var b strings.Builder
	b.WriteString(h.Title)
	for _, c := range h.Columns {
		b.WriteString("\n")
		if c.Today {
			b.WriteString("* ")
		} else {
			b.WriteString("  ")
		}
		b.WriteString(c.Weekday)
		b.WriteString(" ")
		b.WriteString(c.Label)
	}
	return b.String()
}
