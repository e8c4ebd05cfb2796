package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/edwincheahmp4/questboard/internal/engine"
	"github.com/edwincheahmp4/questboard/internal/ui"
)

func newDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Complete a quest and earn its XP",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return errors.New("id must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ctrl, cleanup, err := openController(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, _ := strconv.ParseInt(args[0], 10, 64)
			res, snap, err := ctrl.CompleteQuest(ctx, id)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s\n",
				ui.Good.Render(ui.IconDone+" Completed"), res.QuestID,
				ui.Muted.Render(fmt.Sprintf("(+%d XP)", res.XPAwarded)))
			if res.LevelUp {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s Level %d → %d\n",
					ui.BadgeLevelUp, ui.IconStar, res.LevelBefore, res.LevelAfter)
			}
			if snap.Profile != nil {
				p := snap.Profile
				st := engine.ProfileState{Exp: p.Exp, Level: p.Level}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %d/%d (%d to next)\n",
					ui.LabelValue("Level", p.Level),
					ui.XPBar(p.Exp, engine.LevelCapacity(p.Level), 20),
					p.Exp, engine.LevelCapacity(p.Level), engine.XPToNext(st))
			}
			return nil
		},
	}

	return cmd
}
