package ui

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekhead/internal/config"
	"github.com/javiermolinar/weekhead/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Print the config file path and the configuration in effect after
defaults, the config file and WEEKHEAD_* environment variables are merged.

Example:
  weekhead config`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config file: %s\n\n", a.configPath)
			printConfig(out, a.config)
			return nil
		},
	}
	cmd.AddCommand(a.configInitCmd())
	return cmd
}

func (a *App) configInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with default values",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := os.Stat(a.configPath)
			if err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", a.configPath)
			}
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("checking config path: %w", err)
			}

			if err := config.Default().SaveTo(a.configPath); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", a.configPath)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}

func printConfig(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Current configuration:")
	fmt.Fprintln(w, "──────────────────────")
	fmt.Fprintln(w, "[header]")
	fmt.Fprintf(w, "  days              = %d\n", cfg.Header.Days)
	fmt.Fprintf(w, "  day_format        = %s\n", cfg.Header.DayFormat)
	fmt.Fprintf(w, "  weekday_format    = %s\n", cfg.Header.WeekdayFormat)
	fmt.Fprintf(w, "  month_year_format = %s\n", cfg.Header.MonthYearFormat)
	fmt.Fprintln(w, "\n[locale]")
	fmt.Fprintf(w, "  id                = %s\n", cfg.Locale.ID)
	if cfg.Locale.File != "" {
		fmt.Fprintf(w, "  file              = %s\n", cfg.Locale.File)
	}
	fmt.Fprintln(w, "\n[ui]")
	fmt.Fprintf(w, "  theme             = %s (available: %v)\n", cfg.UI.Theme, theme.Available())
	if cfg.UI.TodayColor != "" {
		fmt.Fprintf(w, "  today_color       = %s\n", cfg.UI.TodayColor)
	}
	if cfg.UI.Background != "" {
		fmt.Fprintf(w, "  background        = %s\n", cfg.UI.Background)
	}
}
