package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edwincheahmp4/questboard/internal/engine"
	"github.com/edwincheahmp4/questboard/internal/session"
	"github.com/edwincheahmp4/questboard/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show your profile and progress",
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
			p := snap.Profile

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconRocket, "Questboard"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Username", ui.DisplayName(p.Username)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Level", p.Level))
			st := engine.ProfileState{Exp: p.Exp, Level: p.Level}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %d/%d (%d to next)\n",
				ui.Key.Render("XP:"),
				ui.XPBar(p.Exp, engine.LevelCapacity(p.Level), 30),
				p.Exp, engine.LevelCapacity(p.Level), engine.XPToNext(st))

			open := 0
			done := 0
			for _, q := range snap.Quests {
				if q.Completed {
					done++
				} else {
					open++
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Quests", fmt.Sprintf("%d open, %d completed", open, done)))
			return nil
		},
	}

	return cmd
}
