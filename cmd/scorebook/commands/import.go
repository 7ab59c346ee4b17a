package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/scorebook/internal/app"
)

func (c *CLI) newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <sheet> <artifact> <file>",
		Short: "Store a YAML run table as an artifact of a sheet",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			sheet, err := parseSheet(args[0])
			if err != nil {
				return err
			}
			return c.app.Import(cmd.Context(), app.ImportOptions{
				Sheet:    sheet,
				Artifact: args[1],
				Source:   args[2],
			})
		},
	}
}
