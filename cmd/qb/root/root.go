package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/edwincheahmp4/questboard/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "qb",
	Short:         "Questboard — gamified to-do tracker",
	Long:          "Questboard is a gamified to-do CLI: add quests, complete them for XP, level up and climb the leaderboard.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newSignupCmd(),
		newLoginCmd(),
		newLogoutCmd(),
		newAddCmd(),
		newDoneCmd(),
		newRmCmd(),
		newListCmd(),
		newStatusCmd(),
		newTopCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
