package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edwincheahmp4/questboard/internal/session"
	"github.com/edwincheahmp4/questboard/internal/ui"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your quests (newest first)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ctrl, cleanup, err := openController(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if ctrl.Current() == nil {
				return session.ErrNotSignedIn
			}
			snap, err := ctrl.Refresh(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconQuest, "Quest Log"))
			if len(snap.Quests) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(no quests — add one with `qb add`)"))
				return nil
			}
			for _, q := range snap.Quests {
				mark := "[ ]"
				text := q.Task
				if q.Completed {
					mark = "[x]"
					text = ui.Strike.Render(text)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s %s\n",
					mark, q.ID, text, ui.Muted.Render(fmt.Sprintf("(+%d XP)", q.XP)))
			}
			return nil
		},
	}

	return cmd
}
