package solve_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Jadiker/kami/canon"
	"github.com/Jadiker/kami/color"
	"github.com/Jadiker/kami/puzzle"
	"github.com/Jadiker/kami/solve"
)

// instances6 builds a family of solvable puzzles up to 6 nodes: paths, rings,
// stars, and wheels under several deterministic coloring patterns.
func instances6(t *testing.T) map[string]*puzzle.Puzzle {
	t.Helper()
	out := make(map[string]*puzzle.Puzzle)

	colorings := map[string]func(i int) color.Color{
		"alternate": func(i int) color.Color { return color.Color(i % 2) },
		"triple":    func(i int) color.Color { return color.Color(i % 3) },
		"distinct":  func(i int) color.Color { return color.Color(i) },
	}

	for n := 3; n <= 6; n++ {
		for cname, cfn := range colorings {
			coloring := make(map[int]color.Color, n)
			for i := 0; i < n; i++ {
				coloring[i] = cfn(i)
			}

			var path, ring, star []puzzle.Pair
			for i := 0; i < n-1; i++ {
				path = append(path, puzzle.Pair{i, i + 1})
			}
			ring = append(append([]puzzle.Pair{}, path...), puzzle.Pair{n - 1, 0})
			for i := 1; i < n; i++ {
				star = append(star, puzzle.Pair{0, i})
			}
			// Wheel: ring over 1..n-1 plus spokes from 0.
			var wheel []puzzle.Pair
			for i := 1; i < n; i++ {
				wheel = append(wheel, puzzle.Pair{0, i})
				next := i + 1
				if next == n {
					next = 1
				}
				if i != next {
					wheel = append(wheel, puzzle.Pair{i, next})
				}
			}

			for tname, edges := range map[string][]puzzle.Pair{
				"path": path, "ring": ring, "star": star, "wheel": wheel,
			} {
				p, err := puzzle.New(coloring, edges)
				if err != nil {
					continue // e.g. a duplicate-heavy wheel at tiny n
				}
				out[fmt.Sprintf("%s%d-%s", tname, n, cname)] = p
			}
		}
	}
	return out
}

// TestSolve_FuzzyAgreesWithExact is the collision property test: on every
// solvable instance up to 6 nodes, fuzzy and exact signatures must produce
// the same optimal move count. Refinement separates every connected colored
// pair at this scale, so a disagreement exposes a real dedup bug rather
// than an expected collision.
func TestSolve_FuzzyAgreesWithExact(t *testing.T) {
	for name, p := range instances6(t) {
		t.Run(name, func(t *testing.T) {
			exact, err := solve.Solve(p, solve.WithSignatureMode(canon.Exact))
			require.NoError(t, err)
			fuzzy, err := solve.Solve(p, solve.WithSignatureMode(canon.Fuzzy))
			require.NoError(t, err)
			require.Len(t, fuzzy.Moves, len(exact.Moves),
				"fuzzy dedup changed the optimal length")
			replay(t, p, fuzzy.Moves)
		})
	}
}
