package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mediquick/mediquick/internal/tui/theme"
)

func (a *App) themesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available storefront themes",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			for _, t := range theme.MustLoadAll() {
				marker := " "
				if t.Name == a.config.UI.Theme {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %-10s %s\n", marker, t.Name, formatMuted(t.Description))
			}
		},
	}
}
