package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a practice session",
	Example: `  mathdrill play
  mathdrill play --op add --level 2
  mathdrill play --op x --mastery --mute`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().String("op", "", "Open on this operation: add, sub, mul, div (or + - x /)")
	cmd.Flags().Int("level", 0, "Start a practice quiz at this digit level (1-9, needs --op)")
	cmd.Flags().Bool("mastery", false, "Start a mastery quiz (needs --op)")
	cmd.Flags().Uint64("seed", 0, "Seed the problem sequence, 0 included (overrides MATHDRILL_SEED)")
	cmd.Flags().Bool("mute", false, "Disable the terminal bell (overrides MATHDRILL_MUTE)")
}
