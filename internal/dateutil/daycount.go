package dateutil

import (
	"errors"
	"fmt"
)

// ErrInvalidDayCount is returned for day counts other than 1, 3 or 7.
var ErrInvalidDayCount = errors.New("day count must be 1, 3 or 7")

// DayCount is the number of day columns a header shows.
type DayCount int

// Supported day counts.
const (
	One   DayCount = 1
	Three DayCount = 3
	Seven DayCount = 7
)

// ParseDayCount converts an integer from the outside world into a DayCount.
func ParseDayCount(n int) (DayCount, error) {
	switch DayCount(n) {
	case One, Three, Seven:
		return DayCount(n), nil
	}
	return 0, fmt.Errorf("%w, got %d", ErrInvalidDayCount, n)
}

// Int returns the number of columns.
func (c DayCount) Int() int {
	return int(c)
}

// Valid reports whether c is one of the supported counts.
func (c DayCount) Valid() bool {
	return c == One || c == Three || c == Seven
}

// Next cycles One -> Three -> Seven -> One.
func (c DayCount) Next() DayCount {
	switch c {
	case One:
		return Three
	case Three:
		return Seven
	default:
		return One
	}
}

// Step returns how many days one navigation step moves the selected date.
func (c DayCount) Step() int {
	if !c.Valid() {
		return 1
	}
	return int(c)
}

func (c DayCount) String() string {
	switch c {
	case One:
		return "day"
	case Three:
		return "3 days"
	case Seven:
		return "week"
	}
	return fmt.Sprintf("DayCount(%d)", int(c))
}
