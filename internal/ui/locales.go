package ui

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) localesCmd() *cobra.Command {
	var localeFile string
	var sample string
	var noColor bool

	cmd := &cobra.Command{
		Use:   "locales",
		Short: "List available locales",
		Long: `List every locale id that can be passed to --locale, with today's
date formatted in that locale. The active locale is marked with *.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			if err := a.setupLocale(headerFlags{localeFile: localeFile}); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			active := a.registry.Locale()
			now := a.now()
			for _, id := range a.registry.Available() {
				f, err := a.registry.FormatterFor(id)
				if err != nil {
					return err
				}
				example, err := f.Format(now, sample)
				if err != nil {
					return fmt.Errorf("--sample: %w", err)
				}
				if id == active {
					fmt.Fprintf(out, "* %s  %s\n", formatHeader(fmt.Sprintf("%-8s", id)), example)
					continue
				}
				fmt.Fprintf(out, "  %-8s  %s\n", id, formatMuted(example))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&localeFile, "locale-file", "", "TOML locale definition to register first")
	cmd.Flags().StringVar(&sample, "sample", "dddd, D MMMM Y", "Pattern used for the example column")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}
