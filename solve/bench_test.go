package solve_test

import (
	"testing"

	"github.com/Jadiker/kami/color"
	"github.com/Jadiker/kami/puzzle"
	"github.com/Jadiker/kami/solve"
)

// benchPuzzle is a 6-node wheel with three colors, small enough for the
// exhaustive strategies yet branchy enough to exercise the visited set.
func benchPuzzle(b *testing.B) *puzzle.Puzzle {
	b.Helper()
	p, err := puzzle.New(
		map[int]color.Color{
			0: color.Orange, 1: color.DarkBlue, 2: color.Cream,
			3: color.DarkBlue, 4: color.Cream, 5: color.DarkBlue,
		},
		[]puzzle.Pair{
			{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
			{1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 1},
		},
	)
	if err != nil {
		b.Fatal(err)
	}
	return p
}

func BenchmarkSolve_BreadthFirst(b *testing.B) {
	p := benchPuzzle(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solve.Solve(p); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve_BestFirstColorCount(b *testing.B) {
	p := benchPuzzle(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := solve.Solve(p,
			solve.WithStrategy(solve.BestFirst),
			solve.WithHeuristic(solve.ColorCount()),
		)
		if err != nil {
			b.Fatal(err)
		}
	}
}
