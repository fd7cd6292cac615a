package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/tally/internal/render"
)

func newSummaryCommand(a *app) *cobra.Command {
	var in sheetInput
	var plain bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show totals and percentages of salary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sh, err := in.build(a)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if plain {
				_, err = fmt.Fprintln(out, strings.Join(render.SummaryLines(sh, a.cfg.Display.Currency), "\n"))
				return err
			}
			_, err = fmt.Fprint(out, render.Summary(a.cfg.Display.Title, sh, a.catalog, a.cfg.Display.Currency))
			return err
		},
	}

	in.register(cmd)
	cmd.Flags().BoolVar(&plain, "plain", false, "print only the three summary lines")

	return cmd
}
