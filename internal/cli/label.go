package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/teamsel/internal/core/label"
)

// LabelCmd returns the label command
func LabelCmd() *cobra.Command {
	var (
		maxExclusive int
		base         int
	)

	cmd := &cobra.Command{
		Use:   "label [index]",
		Short: "Print mixed-radix labels for player indices",
		Long: `Print the digit-group label of a player index.

The index is written in the given base (the team count), padded to as many
groups as the largest index below --max needs. Without an index, labels for
every index below --max are printed.

Examples:
  teamsel label 5 --max 10 --base 2    # 0_1_0_1
  teamsel label --max 9 --base 3`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				index, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("index must be a number (got %q)", args[0])
				}
				text, err := label.Label(index, maxExclusive, base)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, text)
				return nil
			}

			width := label.DigitWidth(maxExclusive)
			for i := 0; i < maxExclusive; i++ {
				text, err := label.Label(i, maxExclusive, base)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%0*d  %s\n", width, i, text)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&maxExclusive, "max", 10, "Exclusive upper bound of the index range")
	cmd.Flags().IntVar(&base, "base", 2, "Radix (team count), at least 2")

	return cmd
}
