package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekhead/internal/header"
	"github.com/javiermolinar/weekhead/internal/tui"
)

func (a *App) showCmd() *cobra.Command {
	var flags headerFlags
	var width int
	var plain bool
	var noColor bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the header once",
		Long: `Print the week view header for a date and exit.

Examples:
  weekhead show
  weekhead show --days 3 --date tomorrow
  weekhead show --locale fr --date 2021-06-16`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			if err := a.setupLocale(flags); err != nil {
				return err
			}
			selected, opts, err := a.selection(flags)
			if err != nil {
				return err
			}

			h, err := header.Build(selected, a.now(), opts, a.registry.Formatter())
			if err != nil {
				return fmt.Errorf("building header: %w", err)
			}

			out := cmd.OutOrStdout()
			if plain {
				fmt.Fprintln(out, h.PlainText())
				return nil
			}

			t, err := a.loadTheme()
			if err != nil {
				return err
			}
			styles := a.styles(t)
			if width <= 0 {
				width = termWidth() - styles.ContainerStyle.GetHorizontalFrameSize()
			}
			fmt.Fprintln(out, tui.RenderHeader(h, styles, width))
			return nil
		},
	}

	flags.bind(cmd)
	cmd.Flags().IntVarP(&width, "width", "w", 0, "Render width (default terminal width)")
	cmd.Flags().BoolVar(&plain, "plain", false, "Print unstyled text, one day per line")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}
