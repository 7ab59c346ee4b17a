package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/scorebook/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove stored artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := app.CleanOptions{}
			if cmd.Flags().Changed("sheet") {
				sheet, _ := cmd.Flags().GetString("sheet")
				n, err := parseSheet(sheet)
				if err != nil {
					return err
				}
				opts.Sheet = n
			}
			return c.app.Clean(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringP("sheet", "s", "", "Only clean the given sheet")

	return cmd
}
