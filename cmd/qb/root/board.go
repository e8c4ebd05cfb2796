package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/edwincheahmp4/questboard/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the TUI dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ctrl, cleanup, err := openController(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(ctx, ctrl, cmd.OutOrStdout())
		},
	}

	return cmd
}
