package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edwincheahmp4/questboard/internal/ui"
)

func newLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login <email> <password>",
		Short: "Sign in and start a session",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("email and password are required")
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

			snap, err := ctrl.SignIn(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			name := ctrl.Current().Email
			if snap.Profile != nil {
				name = ui.DisplayName(snap.Profile.Username)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconRocket+" Signed in as "+name))
			if snap.Profile != nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Level", snap.Profile.Level))
			}
			return nil
		},
	}

	return cmd
}
