package solve_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jadiker/kami/canon"
	"github.com/Jadiker/kami/color"
	"github.com/Jadiker/kami/puzzle"
	"github.com/Jadiker/kami/solve"
)

// path3 is the one-move scenario: colors A,B,A along a path.
func path3(t *testing.T) *puzzle.Puzzle {
	t.Helper()
	p, err := puzzle.New(
		map[int]color.Color{0: color.Orange, 1: color.DarkBlue, 2: color.Orange},
		[]puzzle.Pair{{0, 1}, {1, 2}},
	)
	require.NoError(t, err)
	return p
}

// star5 is the four-move scenario: center Orange, four distinctly colored leaves.
func star5(t *testing.T) *puzzle.Puzzle {
	t.Helper()
	p, err := puzzle.New(
		map[int]color.Color{
			0: color.Orange, 1: color.DarkBlue, 2: color.Cream,
			3: color.Turquoise, 4: color.Color(4),
		},
		[]puzzle.Pair{{0, 1}, {0, 2}, {0, 3}, {0, 4}},
	)
	require.NoError(t, err)
	return p
}

// exhaustiveOptimal finds the true minimal solution length by breadth-first
// enumeration of raw move sequences, with no canonical dedup at all. Only
// usable on tiny instances; it is the ground truth the solver is checked
// against.
func exhaustiveOptimal(t *testing.T, p *puzzle.Puzzle) int {
	t.Helper()
	type st struct {
		p *puzzle.Puzzle
		d int
	}
	queue := []st{{p: p.Clone(), d: 0}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.p.Solved() {
			return cur.d
		}
		for _, m := range cur.p.Moves() {
			child := cur.p.Clone()
			require.NoError(t, child.Apply(m))
			queue = append(queue, st{p: child, d: cur.d + 1})
		}
	}
	t.Fatal("exhaustive search exhausted without terminal state")
	return -1
}

// replay applies a solution to a fresh clone and requires it to solve.
func replay(t *testing.T, p *puzzle.Puzzle, moves []puzzle.Move) {
	t.Helper()
	cp := p.Clone()
	for _, m := range moves {
		require.NoError(t, cp.Apply(m))
	}
	assert.True(t, cp.Solved(), "replaying the solution must reach one region")
}

func TestSolve_Errors(t *testing.T) {
	_, err := solve.Solve(nil)
	assert.ErrorIs(t, err, solve.ErrNilPuzzle)

	_, err = solve.Solve(path3(t), solve.WithMaxMoves(-1))
	assert.ErrorIs(t, err, solve.ErrOptionViolation)

	_, err = solve.Solve(path3(t), solve.WithStrategy(solve.Strategy(7)))
	assert.ErrorIs(t, err, solve.ErrOptionViolation)

	_, err = solve.Solve(path3(t), solve.WithSignatureMode(canon.Mode(7)))
	assert.ErrorIs(t, err, solve.ErrOptionViolation)
}

func TestSolve_AlreadySolved(t *testing.T) {
	p, err := puzzle.New(map[int]color.Color{3: color.Cream}, nil)
	require.NoError(t, err)
	res, err := solve.Solve(p)
	require.NoError(t, err)
	assert.Empty(t, res.Moves)
}

func TestSolve_Path3_OneMove(t *testing.T) {
	p := path3(t)
	res, err := solve.Solve(p)
	require.NoError(t, err)
	require.Len(t, res.Moves, 1)
	assert.Equal(t, puzzle.Move{Node: 1, To: color.Orange}, res.Moves[0])
	replay(t, p, res.Moves)
}

func TestSolve_Star5_FourMoves(t *testing.T) {
	p := star5(t)
	res, err := solve.Solve(p)
	require.NoError(t, err)
	assert.Len(t, res.Moves, 4)
	replay(t, p, res.Moves)
}

func TestSolve_MatchesExhaustiveSearch(t *testing.T) {
	cases := map[string]*puzzle.Puzzle{
		"path3": path3(t),
		"star5": star5(t),
	}
	// A 4-cycle with alternating colors: needs 2 moves.
	ring4, err := puzzle.New(
		map[int]color.Color{0: color.Orange, 1: color.Cream, 2: color.Orange, 3: color.Cream},
		[]puzzle.Pair{{0, 1}, {1, 2}, {2, 3}, {3, 0}},
	)
	require.NoError(t, err)
	cases["ring4"] = ring4

	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			want := exhaustiveOptimal(t, p)
			res, err := solve.Solve(p)
			require.NoError(t, err)
			assert.Len(t, res.Moves, want)
			replay(t, p, res.Moves)
		})
	}
}

func TestSolve_BestFirstAdmissible_StaysMinimal(t *testing.T) {
	for name, p := range map[string]*puzzle.Puzzle{"path3": path3(t), "star5": star5(t)} {
		t.Run(name, func(t *testing.T) {
			bfs, err := solve.Solve(p)
			require.NoError(t, err)

			astar, err := solve.Solve(p,
				solve.WithStrategy(solve.BestFirst),
				solve.WithHeuristic(solve.ColorCount()),
			)
			require.NoError(t, err)
			assert.Len(t, astar.Moves, len(bfs.Moves),
				"admissible best-first must match breadth-first length")
			replay(t, p, astar.Moves)
		})
	}
}

func TestSolve_MaxEdgeReduction_SolvesButMayOvershoot(t *testing.T) {
	p := star5(t)
	res, err := solve.Solve(p,
		solve.WithStrategy(solve.BestFirst),
		solve.WithHeuristic(solve.ColorCount()),
		solve.WithHeuristic(solve.MaxEdgeReduction()),
	)
	require.NoError(t, err)
	replay(t, p, res.Moves)
	// No minimality assertion: MaxEdgeReduction is not admissible.
	assert.GreaterOrEqual(t, len(res.Moves), 4)
}

func TestSolve_BoundReached(t *testing.T) {
	_, err := solve.Solve(star5(t), solve.WithMaxMoves(2))
	assert.ErrorIs(t, err, solve.ErrBoundReached)

	// A bound wide enough must still succeed.
	res, err := solve.Solve(star5(t), solve.WithMaxMoves(4))
	require.NoError(t, err)
	assert.Len(t, res.Moves, 4)
}

func TestSolve_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := solve.Solve(star5(t), solve.WithContext(ctx))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestSolve_SharedCacheAcrossRuns(t *testing.T) {
	cache := canon.NewCache()
	p := star5(t)

	first, err := solve.Solve(p, solve.WithCache(cache))
	require.NoError(t, err)
	second, err := solve.Solve(p, solve.WithCache(cache))
	require.NoError(t, err)
	assert.Equal(t, first.Moves, second.Moves, "shared cache must not change results")
}

func TestSolve_Deterministic(t *testing.T) {
	p := star5(t)
	a, err := solve.Solve(p)
	require.NoError(t, err)
	b, err := solve.Solve(p)
	require.NoError(t, err)
	assert.Equal(t, a.Moves, b.Moves)
}
