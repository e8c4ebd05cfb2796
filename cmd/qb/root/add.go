package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edwincheahmp4/questboard/internal/engine"
	"github.com/edwincheahmp4/questboard/internal/ui"
)

func newAddCmd() *cobra.Command {
	var diff string

	cmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Add a quest",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("description is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			d, err := engine.ParseDifficulty(diff)
			if err != nil {
				return err
			}
			ctrl, cleanup, err := openController(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			snap, err := ctrl.AddQuest(ctx, args[0], d)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconPlus+" Added"), args[0],
				ui.Muted.Render(fmt.Sprintf("(%s, +%d XP)", d, int(d))))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Quests", len(snap.Quests)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&diff, "diff", "d", "easy", "Difficulty (easy|medium|hard)")

	return cmd
}
