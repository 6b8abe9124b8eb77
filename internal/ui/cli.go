package ui

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekhead/internal/config"
	"github.com/javiermolinar/weekhead/internal/dateutil"
	"github.com/javiermolinar/weekhead/internal/header"
	"github.com/javiermolinar/weekhead/internal/locale"
	"github.com/javiermolinar/weekhead/internal/tui"
	"github.com/javiermolinar/weekhead/internal/tui/theme"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config     *config.Config
	configPath string
	registry   *locale.Registry
	now        func() time.Time
	root       *cobra.Command
	debug      bool // Enable debug logging
}

// headerFlags are the flags shared by commands that build a header.
type headerFlags struct {
	date       string
	days       int
	localeID   string
	localeFile string
}

func (f *headerFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.date, "date", "d", "", "Selected date (YYYY-MM-DD, today, tomorrow, monday, next-week...)")
	cmd.Flags().IntVarP(&f.days, "days", "n", 0, "Number of day columns: 1, 3 or 7 (default from config)")
	cmd.Flags().StringVar(&f.localeID, "locale", "", "Locale id, e.g. en_US, de, fr-FR (default from config)")
	cmd.Flags().StringVar(&f.localeFile, "locale-file", "", "TOML locale definition to register")
}

// NewApp creates a new CLI application with the given config.
// A nil config uses config.Default().
func NewApp(cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	a := &App{
		config:     cfg,
		configPath: config.DefaultConfigPath(),
		registry:   locale.Default(),
		now:        time.Now,
	}

	var flags headerFlags
	a.root = &cobra.Command{
		Use:   "weekhead",
		Short: "A calendar week view header for the terminal",
		Long: `Weekhead renders the header of a calendar week view: the month and
year plus one column per day, for 1, 3 or 7 day layouts, in any locale.

Run without a subcommand to browse interactively.`,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			opts, err := a.tuiOptions(flags)
			if err != nil {
				return err
			}
			return tui.RunWithDebug(opts, a.debug)
		},
	}
	flags.bind(a.root)

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to weekhead-debug.log)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.localesCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "weekhead %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// setupLocale registers the configured locale file and activates the
// requested locale. Flags win over config.
func (a *App) setupLocale(f headerFlags) error {
	file := f.localeFile
	if file == "" {
		file = a.config.Locale.File
	}
	id := f.localeID
	if file != "" {
		registered, err := a.registry.RegisterFile(file)
		if err != nil {
			return err
		}
		// A locale file given on the command line is used unless --locale says otherwise.
		if id == "" && f.localeFile != "" {
			id = registered
		}
	}
	if id == "" {
		id = a.config.Locale.ID
	}
	if err := a.registry.SetLocale(id); err != nil {
		return fmt.Errorf("setting locale: %w", err)
	}
	return nil
}

// selection resolves the selected date and header options from flags and config.
func (a *App) selection(f headerFlags) (time.Time, header.Options, error) {
	selected, err := dateutil.ParseRelativeDate(f.date, a.now())
	if err != nil {
		return time.Time{}, header.Options{}, fmt.Errorf("--date: %w", err)
	}

	opts := a.config.HeaderOptions()
	if f.days != 0 {
		count, err := dateutil.ParseDayCount(f.days)
		if err != nil {
			return time.Time{}, header.Options{}, fmt.Errorf("--days: %w", err)
		}
		opts.DayCount = count
	}
	return selected, opts, nil
}

func (a *App) loadTheme() (*theme.Theme, error) {
	t, err := theme.Load(a.config.UI.Theme)
	if err != nil {
		return nil, fmt.Errorf("loading theme: %w", err)
	}
	return t, nil
}

// styles returns the theme styles with the configured color overrides.
func (a *App) styles(t *theme.Theme) *tui.Styles {
	s := tui.NewStyles(t)
	return s.WithOverrides(a.styleOverrides(s))
}

// styleOverrides derives the container and today overrides from [ui]
// today_color and background.
func (a *App) styleOverrides(s *tui.Styles) tui.StyleOverrides {
	var o tui.StyleOverrides
	if c := a.config.UI.TodayColor; c != "" {
		today := s.TodayColumnStyle.
			Background(theme.Color(c)).
			BorderForeground(theme.Color(c))
		o.Today = &today
	}
	if c := a.config.UI.Background; c != "" {
		container := s.ContainerStyle.Background(theme.Color(c))
		o.Container = &container
	}
	return o
}

func (a *App) tuiOptions(f headerFlags) (tui.Options, error) {
	if err := a.setupLocale(f); err != nil {
		return tui.Options{}, err
	}
	selected, opts, err := a.selection(f)
	if err != nil {
		return tui.Options{}, err
	}
	t, err := a.loadTheme()
	if err != nil {
		return tui.Options{}, err
	}
	return tui.Options{
		Selected:  selected,
		Header:    opts,
		Registry:  a.registry,
		Theme:     t,
		Overrides: a.styleOverrides(tui.NewStyles(t)),
		Now:       a.now,
	}, nil
}
