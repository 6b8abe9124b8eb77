package tui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/weekhead/internal/dateutil"
	"github.com/javiermolinar/weekhead/internal/header"
	"github.com/javiermolinar/weekhead/internal/locale"
	"github.com/javiermolinar/weekhead/internal/tui/theme"
)

// Options configures a Model.
type Options struct {
	Selected time.Time
	Header   header.Options
	Registry *locale.Registry
	Theme    *theme.Theme
	// Overrides replace the theme's container or today style.
	Overrides StyleOverrides
	// Locales is the cycle order for the locale key. Empty means all
	// locales known to Registry.
	Locales []string
	// Now reports the current time; defaults to time.Now.
	Now func() time.Time
	// Copy writes text to the clipboard; defaults to clipboard.WriteAll.
	Copy func(string) error
}

// Model is the interactive header model.
type Model struct {
	registry *locale.Registry
	styles   *Styles
	opts     header.Options
	selected time.Time
	nowFunc  func() time.Time
	copyFunc func(string) error
	locales  []string

	keys keyMap
	help help.Model

	width  int
	height int

	header header.Header
	err    error
	status string
}

// New creates a model showing opts.Selected.
func New(opts Options) Model {
	if opts.Registry == nil {
		opts.Registry = locale.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Copy == nil {
		opts.Copy = clipboard.WriteAll
	}
	if opts.Selected.IsZero() {
		opts.Selected = opts.Now()
	}
	if !opts.Header.DayCount.Valid() {
		opts.Header.DayCount = dateutil.Seven
	}
	locales := opts.Locales
	if len(locales) == 0 {
		locales = opts.Registry.Available()
	}

	m := Model{
		registry: opts.Registry,
		styles:   NewStyles(opts.Theme).WithOverrides(opts.Overrides),
		opts:     opts.Header,
		selected: dateutil.TruncateToDay(opts.Selected),
		nowFunc:  opts.Now,
		copyFunc: opts.Copy,
		locales:  locales,
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Header returns the header currently shown.
func (m Model) Header() header.Header {
	return m.header
}

// Selected returns the selected date.
func (m Model) Selected() time.Time {
	return m.selected
}

// Err returns the last header build error.
func (m Model) Err() error {
	return m.err
}

// refresh rebuilds the header from the current state.
func (m *Model) refresh() {
	h, err := header.Build(m.selected, m.nowFunc(), m.opts, m.registry.Formatter())
	if err != nil {
		LogError("build header", err)
		m.err = err
		return
	}
	m.err = nil
	m.header = h
	LogHeaderBuilt(m.selected, m.registry.Locale(), h)
}

// Run starts the interactive header.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// RunWithDebug starts the interactive header with optional debug logging.
func RunWithDebug(opts Options, debug bool) error {
	if err := InitDebugLogger(debug, ""); err != nil {
		return err
	}
	defer CloseDebugLogger()

	return Run(New(opts))
}
