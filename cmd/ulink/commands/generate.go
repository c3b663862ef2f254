package commands

import "github.com/spf13/cobra"

func (c *CLI) newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Run one generation pass",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := c.app.Generate(cmd.Context(), options(cmd))
			return err
		},
	}
}
