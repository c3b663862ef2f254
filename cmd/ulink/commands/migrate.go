package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/ulink/internal/app"
)

func (c *CLI) newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate [dirs...]",
		Short: "Rewrite legacy controller identifiers in layout documents",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			report, err := c.app.Migrate(cmd.Context(), options(cmd), app.MigrateOptions{
				Dirs:   args,
				DryRun: dryRun,
			})
			if err != nil {
				return err
			}

			suffix := ""
			if dryRun {
				suffix = " (dry run)"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d documents, %d changed, %d identifiers rewritten, %d unresolved%s\n",
				report.Documents, len(report.Changed), report.Changes, report.Issues, suffix)
			return nil
		},
	}
	cmd.Flags().BoolP("dry-run", "n", false, "Report changes without writing")
	return cmd
}
