package cli

import (
	"fmt"
	"io"
	"log"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/decker502/pickup52/pkg/game"
)

func newStatsCmd() *cobra.Command {
	var reset bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show saved round statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.SetOutput(io.Discard)

			storage, err := game.OpenStorage(game.AppName)
			if err != nil {
				return err
			}
			sm := game.NewStatsManager(storage)
			if reset {
				if err := sm.Reset(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "statistics cleared")
				return nil
			}

			colorize.NoColor = !isTerminal(cmd.OutOrStdout())
			printStats(cmd.OutOrStdout(), sm.Stats())
			return nil
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "clear all saved statistics")
	return cmd
}

func printStats(out io.Writer, stats game.PlayerStats) {
	label := colorize.New(colorize.FgCyan).SprintFunc()
	fmt.Fprintf(out, "%s %d\n", label("Rounds dealt:  "), stats.RoundsStarted)
	fmt.Fprintf(out, "%s %d\n", label("Rounds cleared:"), stats.RoundsWon)
	if stats.BestClearSeconds > 0 {
		fmt.Fprintf(out, "%s %.1fs\n", label("Best time:     "), stats.BestClearSeconds)
	} else {
		fmt.Fprintf(out, "%s -\n", label("Best time:     "))
	}
	if stats.LastSessionID != "" {
		fmt.Fprintf(out, "%s %s (seed %d)\n", label("Last round:    "), stats.LastSessionID, stats.LastSeed)
	}
}
