package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/teamsel/internal/wire"
)

// SessionCmd returns the interactive session command
func SessionCmd() *cobra.Command {
	var (
		players int
		teams   int
		auto    bool
	)

	cmd := &cobra.Command{
		Use:   "session",
		Short: "Edit a team schedule and see who played with whom",
		Long: `Start an interactive schedule session.

Commands are read one per line from stdin. Each row is a player, each
column a round; a cell holds the team the player is on in that round.
A new round appears once the last round gets its first entry, and an
empty trailing round is dropped again when the round before it empties.

Examples:
  teamsel session                      # 10 players, 2 teams
  teamsel session --players 6 --auto   # recalculate after every change
  teamsel session < schedule.txt       # replay a saved command script`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := wire.Config()
			if err != nil {
				return err
			}

			// Flags override the configured start values for this run only.
			c := *cfg
			if cmd.Flags().Changed("players") {
				c.Players.Start = players
			}
			if cmd.Flags().Changed("teams") {
				c.Teams.Start = teams
			}
			if err := c.Validate(); err != nil {
				return fmt.Errorf("invalid session options: %w", err)
			}

			out := cmd.OutOrStdout()
			adapter := wire.SessionAdapterWithOutput(&c, out)
			if auto {
				adapter.EnableAutoRecalculate()
			}

			fmt.Fprintln(out, "Type help for commands.")
			return adapter.Run(cmd.Context(), cmd.InOrStdin())
		},
	}

	cmd.Flags().IntVarP(&players, "players", "p", 0, "Initial player count")
	cmd.Flags().IntVarP(&teams, "teams", "t", 0, "Initial team count")
	cmd.Flags().BoolVar(&auto, "auto", false, "Recalculate after every change")

	return cmd
}
