package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/scorebook/internal/app"
)

func (c *CLI) newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that every stored artifact decodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Verify(cmd.Context(), app.VerifyOptions{}, cmd.OutOrStdout())
		},
	}
}
