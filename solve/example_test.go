package solve_test

import (
	"fmt"

	"github.com/Jadiker/kami/color"
	"github.com/Jadiker/kami/puzzle"
	"github.com/Jadiker/kami/solve"
)

// ExampleSolve finds the single move that folds an A–B–A path into one region.
func ExampleSolve() {
	p, _ := puzzle.New(
		map[int]color.Color{0: color.Orange, 1: color.DarkBlue, 2: color.Orange},
		[]puzzle.Pair{{0, 1}, {1, 2}},
	)

	res, _ := solve.Solve(p)
	for i, m := range res.Moves {
		fmt.Printf("%d. %s\n", i+1, m)
	}
	// Output:
	// 1. set 1 to ORANGE
}

// ExampleSolve_bestFirst guides the search with the admissible color-count
// bound; the answer stays minimal.
func ExampleSolve_bestFirst() {
	p, _ := puzzle.New(
		map[int]color.Color{
			0: color.Orange, 1: color.DarkBlue, 2: color.Cream,
			3: color.Turquoise, 4: color.Color(4),
		},
		[]puzzle.Pair{{0, 1}, {0, 2}, {0, 3}, {0, 4}},
	)

	res, _ := solve.Solve(p,
		solve.WithStrategy(solve.BestFirst),
		solve.WithHeuristic(solve.ColorCount()),
	)
	fmt.Println("moves:", len(res.Moves))
	// Output:
	// moves: 4
}
