package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edwincheahmp4/questboard/internal/ui"
)

func newLogoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ctrl, cleanup, err := openController(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := ctrl.SignOut(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(ui.IconWave+" Signed out."))
			return nil
		},
	}

	return cmd
}
