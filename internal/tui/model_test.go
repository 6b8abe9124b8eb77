package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/weekhead/internal/dateutil"
	"github.com/javiermolinar/weekhead/internal/header"
	"github.com/javiermolinar/weekhead/internal/locale"
)

// Wednesday, June 16 2021
var fixedNow = time.Date(2021, 6, 16, 10, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T, count dateutil.DayCount) (Model, *string) {
	t.Helper()
	copied := new(string)
	m := New(Options{
		Selected: fixedNow,
		Header:   header.Options{DayCount: count},
		Registry: locale.NewRegistry(),
		Theme:    testTheme(),
		Locales:  []string{"en_US", "de_DE", "fr_FR"},
		Now:      func() time.Time { return fixedNow },
		Copy: func(s string) error {
			*copied = s
			return nil
		},
	})
	if m.Err() != nil {
		t.Fatalf("unexpected build error: %v", m.Err())
	}
	return m, copied
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func TestNew_Defaults(t *testing.T) {
	m := New(Options{
		Registry: locale.NewRegistry(),
		Header:   header.Options{DayCount: dateutil.DayCount(4)},
		Now:      func() time.Time { return fixedNow },
	})
	if m.opts.DayCount != dateutil.Seven {
		t.Errorf("invalid day count should default to week, got %v", m.opts.DayCount)
	}
	if !m.Selected().Equal(dateutil.TruncateToDay(fixedNow)) {
		t.Errorf("zero selected should default to now, got %v", m.Selected())
	}
	if len(m.Header().Columns) != 7 {
		t.Errorf("got %d columns, want 7", len(m.Header().Columns))
	}
	if m.Header().TodayIndex() != 2 {
		t.Errorf("today index = %d, want 2", m.Header().TodayIndex())
	}
}

func TestNavigationMovesByDayCount(t *testing.T) {
	tests := []struct {
		count dateutil.DayCount
		msg   tea.KeyMsg
		want  time.Time
	}{
		{dateutil.One, runeKey('l'), time.Date(2021, 6, 17, 0, 0, 0, 0, time.UTC)},
		{dateutil.Three, tea.KeyMsg{Type: tea.KeyRight}, time.Date(2021, 6, 19, 0, 0, 0, 0, time.UTC)},
		{dateutil.Seven, runeKey('h'), time.Date(2021, 6, 9, 0, 0, 0, 0, time.UTC)},
		{dateutil.Seven, tea.KeyMsg{Type: tea.KeyLeft}, time.Date(2021, 6, 9, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.count.String()+"_"+tt.msg.String(), func(t *testing.T) {
			m, _ := newTestModel(t, tt.count)
			m = press(t, m, tt.msg)
			if !m.Selected().Equal(tt.want) {
				t.Errorf("selected = %v, want %v", m.Selected(), tt.want)
			}
		})
	}
}

func TestTodayKeyResetsSelection(t *testing.T) {
	m, _ := newTestModel(t, dateutil.Seven)
	m = press(t, m, runeKey('l'))
	m = press(t, m, runeKey('l'))
	if m.Header().TodayIndex() != -1 {
		t.Fatalf("expected today outside displayed range")
	}
	m = press(t, m, runeKey('t'))
	if m.Header().TodayIndex() != 2 {
		t.Errorf("today index = %d, want 2", m.Header().TodayIndex())
	}
}

func TestLayoutKeyCycles(t *testing.T) {
	m, _ := newTestModel(t, dateutil.One)
	want := []int{3, 7, 1}
	for _, n := range want {
		m = press(t, m, runeKey('v'))
		if got := len(m.Header().Columns); got != n {
			t.Errorf("got %d columns, want %d", got, n)
		}
	}
}

func TestLocaleKeyCycles(t *testing.T) {
	m, _ := newTestModel(t, dateutil.Seven)
	dates := m.Header().Columns

	m = press(t, m, runeKey('L'))
	if m.registry.Locale() != "de_DE" {
		t.Fatalf("locale = %s, want de_DE", m.registry.Locale())
	}
	if m.Header().Title != "Juni 2021" {
		t.Errorf("title = %q, want %q", m.Header().Title, "Juni 2021")
	}
	for i, c := range m.Header().Columns {
		if !c.Date.Equal(dates[i].Date) {
			t.Errorf("column %d date changed with locale", i)
		}
	}

	m = press(t, m, runeKey('L'))
	m = press(t, m, runeKey('L'))
	if m.registry.Locale() != "en_US" {
		t.Errorf("locale = %s, want en_US after full cycle", m.registry.Locale())
	}
}

func TestCopyKey(t *testing.T) {
	m, copied := newTestModel(t, dateutil.Three)
	m = press(t, m, runeKey('y'))
	if *copied != m.Header().PlainText() {
		t.Errorf("copied %q, want %q", *copied, m.Header().PlainText())
	}
	if !strings.Contains(m.status, "Copied") {
		t.Errorf("status = %q", m.status)
	}
}

func TestCopyKeyFailure(t *testing.T) {
	m, _ := newTestModel(t, dateutil.Three)
	m.copyFunc = func(string) error { return errors.New("no clipboard") }
	m = press(t, m, runeKey('y'))
	if !strings.Contains(m.status, "no clipboard") {
		t.Errorf("status = %q", m.status)
	}
}

func TestQuitKey(t *testing.T) {
	m, _ := newTestModel(t, dateutil.Seven)
	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", msg.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected tea.QuitMsg", msg.String())
		}
	}
}

func TestHelpKeyToggles(t *testing.T) {
	m, _ := newTestModel(t, dateutil.Seven)
	m = press(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Error("expected full help")
	}
	m = press(t, m, runeKey('?'))
	if m.help.ShowAll {
		t.Error("expected short help")
	}
}

func TestBuildErrorShownInView(t *testing.T) {
	m := New(Options{
		Selected: fixedNow,
		Header:   header.Options{DayCount: dateutil.Seven, DayFormat: "[D"},
		Registry: locale.NewRegistry(),
		Now:      func() time.Time { return fixedNow },
	})
	if !errors.Is(m.Err(), locale.ErrUnterminatedLiteral) {
		t.Fatalf("err = %v, want %v", m.Err(), locale.ErrUnterminatedLiteral)
	}
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	view := updated.(Model).View()
	if !strings.Contains(view, "Error:") {
		t.Errorf("expected error in view: %q", view)
	}
}

func TestView(t *testing.T) {
	m, _ := newTestModel(t, dateutil.Seven)
	if got := m.View(); got != "Loading..." {
		t.Errorf("view before size = %q", got)
	}

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 20})
	view := updated.(Model).View()
	for _, want := range []string{"June 2021", "Jun 14", "Jun 20", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view:\n%s", want, view)
		}
	}
}
