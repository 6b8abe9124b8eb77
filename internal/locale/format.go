package locale

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// tokens are matched longest first.
var tokens = []string{
	"YYYY", "MMMM", "dddd", "DDDD",
	"MMM", "ddd", "DDD",
	"YY", "MM", "Mo", "DD", "Do", "dd", "WW",
	"Y", "Q", "M", "D", "d", "E", "W",
}

// Format renders t with a moment-style pattern. Text inside [brackets]
// is copied literally; characters that are not tokens pass through.
func (f Formatter) Format(t time.Time, pattern string) (string, error) {
	if pattern == "" {
		return "", ErrEmptyPattern
	}
	def := f.definition()

	var b strings.Builder
	for i := 0; i < len(pattern); {
		if pattern[i] == '[' {
			end := strings.IndexByte(pattern[i+1:], ']')
			if end < 0 {
				return "", fmt.Errorf("%w: %q", ErrUnterminatedLiteral, pattern)
			}
			b.WriteString(pattern[i+1 : i+1+end])
			i += end + 2
			continue
		}

		tok := matchToken(pattern[i:])
		if tok == "" {
			b.WriteByte(pattern[i])
			i++
			continue
		}
		b.WriteString(def.render(tok, t))
		i += len(tok)
	}
	return b.String(), nil
}

func matchToken(s string) string {
	for _, tok := range tokens {
		if strings.HasPrefix(s, tok) {
			return tok
		}
	}
	return ""
}

func (d Definition) render(tok string, t time.Time) string {
	switch tok {
	case "YYYY":
		return fmt.Sprintf("%04d", t.Year())
	case "YY":
		return fmt.Sprintf("%02d", t.Year()%100)
	case "Y":
		return strconv.Itoa(t.Year())
	case "Q":
		return strconv.Itoa((int(t.Month())-1)/3 + 1)
	case "M":
		return strconv.Itoa(int(t.Month()))
	case "MM":
		return fmt.Sprintf("%02d", int(t.Month()))
	case "Mo":
		return d.ordinal(int(t.Month()), tok)
	case "MMM":
		return d.MonthsShort[t.Month()-1]
	case "MMMM":
		return d.Months[t.Month()-1]
	case "D":
		return strconv.Itoa(t.Day())
	case "DD":
		return fmt.Sprintf("%02d", t.Day())
	case "Do":
		return d.ordinal(t.Day(), tok)
	case "DDD":
		return strconv.Itoa(t.YearDay())
	case "DDDD":
		return fmt.Sprintf("%03d", t.YearDay())
	case "d":
		return strconv.Itoa(int(t.Weekday()))
	case "dd":
		return d.WeekdaysMin[t.Weekday()]
	case "ddd":
		return d.WeekdaysShort[t.Weekday()]
	case "dddd":
		return d.Weekdays[t.Weekday()]
	case "E":
		wd := int(t.Weekday())
		if wd == 0 {
			wd = 7
		}
		return strconv.Itoa(wd)
	case "W":
		_, week := t.ISOWeek()
		return strconv.Itoa(week)
	case "WW":
		_, week := t.ISOWeek()
		return fmt.Sprintf("%02d", week)
	}
	return tok
}

// ordinal renders n for the ordinal token tok ("Do" or "Mo").
func (d Definition) ordinal(n int, tok string) string {
	switch d.Ordinal {
	case OrdinalEnglish:
		return englishOrdinal(n)
	case OrdinalFrench:
		switch {
		case n == 1:
			return "1er"
		case tok == "Do":
			return strconv.Itoa(n)
		}
		return strconv.Itoa(n) + "e"
	}
	return fmt.Sprintf(d.Ordinal, n)
}

func englishOrdinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}
