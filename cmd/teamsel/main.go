package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/teamsel/internal/cli"
	"github.com/example/teamsel/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "teamsel",
		Short:   "teamsel - plan rounds of team games",
		Version: version.String(),
		Long: `teamsel helps plan rounds of team games so every player gets to play
with everyone else. Enter which team each player is on per round and it
shows which pairs of players have shared a team.`,
		SilenceUsage: true,
	}

	cli.ConfigureRoot(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(cli.SessionCmd())
	rootCmd.AddCommand(cli.LabelCmd())
	rootCmd.AddCommand(cli.ConfigCmd())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
