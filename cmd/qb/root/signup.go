package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edwincheahmp4/questboard/internal/ui"
)

func newSignupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signup <email> <password>",
		Short: "Create an account",
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

			profile, err := ctrl.SignUp(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconSparkle+" You are now ready to log in."))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Username", profile.Username))
			return nil
		},
	}

	return cmd
}
