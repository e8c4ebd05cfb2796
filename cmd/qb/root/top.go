package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edwincheahmp4/questboard/internal/ui"
)

func newTopCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show the global leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ctrl, cleanup, err := openController(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			// Leaderboard is readable without a session.
			entries, err := ctrl.Leaderboard(ctx, limit)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconTrophy, "Leaderboard"))
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(no players yet)"))
				return nil
			}
			for i, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-16s %s %s\n",
					ui.Gold.Render(fmt.Sprintf("%2d.", i+1)),
					ui.DisplayName(e.Username),
					ui.Key.Render(fmt.Sprintf("lvl %d", e.Level)),
					ui.Muted.Render(fmt.Sprintf("(%d xp)", e.Exp)))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of entries to show")

	return cmd
}
