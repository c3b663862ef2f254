package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newRuntimeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "runtime <dir>",
		Short: "Write the UlinkBinder support source generated code calls into",
		Long: "Write UlinkBinder.cs into dir. The directory must compile into the\n" +
			"assembly that defines Ulink.Runtime, so every generated artifact can reach it.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.app.Runtime(cmd.Context(), options(cmd), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
