// Command kami solves flood-fill region puzzles and hunts for the hardest
// small instances.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	verbose bool

	rootCmd = &cobra.Command{
		Use:   "kami",
		Short: "Solve and generate flood-fill region puzzles",
		Long: `kami works on puzzles in the style of the paper-folding game Kami:
a board of colored regions, where one move recolors a region and merges it
with every same-colored neighbor, and the goal is to leave a single region.

The solve command finds an optimal move sequence for the bundled board;
the hardest command exhaustively searches all small boards for the one
whose optimal solution needs the most moves.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("command failed")
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(hardestCmd)
}
