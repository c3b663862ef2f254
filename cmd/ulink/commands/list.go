package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.trai.ch/ulink/internal/ui/output"
	"go.trai.ch/ulink/internal/ui/style"
)

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the eligible types per root without writing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			listings, err := c.app.List(cmd.Context(), options(cmd))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			lipgloss.SetColorProfile(output.ColorProfile())
			heading, muted := style.Heading, style.Muted

			if len(listings) == 0 {
				_, _ = fmt.Fprintln(out, muted.Render("no eligible types"))
				return nil
			}

			for i, l := range listings {
				if i > 0 {
					_, _ = fmt.Fprintln(out)
				}
				_, _ = fmt.Fprintf(out, "%s %s\n", heading.Render(l.Root), muted.Render(l.Path))
				_, _ = fmt.Fprintf(out, "  %s %s\n", muted.Render("fingerprint"), l.Fingerprint)
				for _, section := range l.Sections {
					for _, t := range section.Types {
						_, _ = fmt.Fprintf(out, "  %-11s %s\n", section.Kind, t.FullName)
					}
				}
			}
			return nil
		},
	}
}
