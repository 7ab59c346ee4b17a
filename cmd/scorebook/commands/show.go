package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/scorebook/internal/app"
)

func (c *CLI) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <sheet> [artifact]",
		Short: "Show the stored run tables of a sheet",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sheet, err := parseSheet(args[0])
			if err != nil {
				return err
			}

			opts := app.ShowOptions{Sheet: sheet}
			if len(args) == 2 {
				opts.Artifact = args[1]
			}
			return c.app.Show(cmd.Context(), opts, cmd.OutOrStdout())
		},
	}
}
