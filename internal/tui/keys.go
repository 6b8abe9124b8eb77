package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/weekhead/internal/dateutil"
)

// keyMap defines the header key bindings.
type keyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Today  key.Binding
	Layout key.Binding
	Locale key.Binding
	Copy   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Prev: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "next"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
		Layout: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "1/3/7 days"),
		),
		Locale: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "next locale"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Layout, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Today},
		{k.Layout, k.Locale, k.Copy},
		{k.Help, k.Quit},
	}
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Prev):
		m.selected = m.selected.AddDate(0, 0, -m.opts.DayCount.Step())
		m.status = ""
		m.refresh()

	case key.Matches(msg, m.keys.Next):
		m.selected = m.selected.AddDate(0, 0, m.opts.DayCount.Step())
		m.status = ""
		m.refresh()

	case key.Matches(msg, m.keys.Today):
		m.selected = dateutil.TruncateToDay(m.nowFunc())
		m.status = ""
		m.refresh()

	case key.Matches(msg, m.keys.Layout):
		m.opts.DayCount = m.opts.DayCount.Next()
		m.status = "Showing " + m.opts.DayCount.String()
		m.refresh()

	case key.Matches(msg, m.keys.Locale):
		m.cycleLocale()
		m.refresh()

	case key.Matches(msg, m.keys.Copy):
		if m.err != nil {
			return m, nil
		}
		if err := m.copyFunc(m.header.PlainText()); err != nil {
			LogError("copy", err)
			m.status = fmt.Sprintf("Copy failed: %v", err)
			return m, nil
		}
		m.status = "Copied header to clipboard"

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// cycleLocale activates the locale after the current one.
func (m *Model) cycleLocale() {
	if len(m.locales) == 0 {
		return
	}
	current := m.registry.Locale()
	next := m.locales[0]
	for i, id := range m.locales {
		if id == current {
			next = m.locales[(i+1)%len(m.locales)]
			break
		}
	}
	if err := m.registry.SetLocale(next); err != nil {
		LogError("set locale", err)
		m.status = fmt.Sprintf("Locale error: %v", err)
		return
	}
	m.status = "Locale " + m.registry.Locale()
}
