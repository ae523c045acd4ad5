package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Jadiker/kami/color"
	"github.com/Jadiker/kami/puzzle"
	"github.com/Jadiker/kami/solve"
)

var (
	bestFirst bool
	maxMoves  int

	solveCmd = &cobra.Command{
		Use:   "solve",
		Short: "Find an optimal move sequence for the bundled 3-3 board",
		RunE:  runSolve,
	}
)

func init() {
	solveCmd.Flags().BoolVar(&bestFirst, "best-first", false, "use best-first search with the color-count heuristic")
	solveCmd.Flags().IntVar(&maxMoves, "max-moves", 0, "fail if no solution exists within this many moves (0 = unbounded)")
}

// The 3-3 board from the mobile game: eleven regions, four colors. Regions
// are numbered top to bottom, left to right; the dark blue region 3 spans
// the middle of the board and touches almost everything.
func boardThreeThree() (*puzzle.Puzzle, error) {
	coloring := map[int]color.Color{
		0:  color.Cream,
		1:  color.Turquoise,
		2:  color.Orange,
		3:  color.DarkBlue,
		4:  color.Orange,
		5:  color.Cream,
		6:  color.Cream,
		7:  color.Orange,
		8:  color.Orange,
		9:  color.Turquoise,
		10: color.Cream,
	}
	edges := []puzzle.Pair{
		{0, 1}, {0, 2}, {0, 4},
		{1, 3},
		{2, 3}, {2, 5},
		{3, 4}, {3, 5}, {3, 6}, {3, 7}, {3, 8}, {3, 9},
		{4, 6},
		{5, 7},
		{6, 8},
		{7, 10}, {8, 10},
		{9, 10},
	}
	return puzzle.New(coloring, edges)
}

func runSolve(cmd *cobra.Command, args []string) error {
	p, err := boardThreeThree()
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"regions": p.Len(),
		"colors":  len(p.Colors()),
	}).Info("solving bundled board")

	opts := []solve.Option{solve.WithContext(cmd.Context())}
	if bestFirst {
		opts = append(opts,
			solve.WithStrategy(solve.BestFirst),
			solve.WithHeuristic(solve.ColorCount()))
	}
	if maxMoves > 0 {
		opts = append(opts, solve.WithMaxMoves(maxMoves))
	}

	res, err := solve.Solve(p, opts...)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"moves":     len(res.Moves),
		"expanded":  res.Expanded,
		"generated": res.Generated,
	}).Info("solved")

	for i, m := range res.Moves {
		fmt.Printf("%d. %s\n", i+1, m)
	}
	return nil
}
