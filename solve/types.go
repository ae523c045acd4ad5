// Package solve finds minimal-length move sequences that reduce a puzzle to
// a single region.
//
// Two strategies share one frontier/visited structure:
//
//   - BreadthFirst expands states in strict non-decreasing depth order;
//     every move has unit cost, so the first terminal state dequeued carries
//     a minimal solution.
//   - BestFirst orders the frontier by f = depth + h(state) where h is the
//     maximum of the enabled heuristics. The result is minimal only if every
//     enabled heuristic is admissible (never overestimates the remaining
//     move count); see ColorCount and MaxEdgeReduction.
//
// Canonical signatures (package canon) prune re-exploration of equivalent
// states. Fuzzy signatures are cheaper but may collide, in which case a
// genuinely distinct state is silently skipped and the answer may be
// non-minimal — an explicit speed/correctness trade-off, not an error.
//
// Errors:
//
//   - ErrNilPuzzle       — nil input.
//   - ErrOptionViolation — an invalid functional option was supplied.
//   - ErrBoundReached    — no terminal state within WithMaxMoves; a reported
//     outcome, not a defect.
//   - ErrUnsolvable      — frontier exhausted with no bound set. The move
//     rule guarantees the single-color state is reachable, so this surfaces
//     a collapse or move-generation defect; it is never retried silently.
package solve

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jadiker/kami/canon"
	"github.com/Jadiker/kami/puzzle"
)

// Sentinel errors for solver execution.
var (
	// ErrNilPuzzle is returned if a nil puzzle pointer is passed.
	ErrNilPuzzle = errors.New("solve: puzzle is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solve: invalid option supplied")

	// ErrBoundReached is returned when the depth bound set by WithMaxMoves is
	// exhausted without reaching a terminal state. Recoverable by the caller.
	ErrBoundReached = errors.New("solve: no solution within move bound")

	// ErrUnsolvable is returned when the frontier empties with no bound set.
	// Should be unreachable for a valid puzzle; it indicates an engine defect.
	ErrUnsolvable = errors.New("solve: search exhausted without terminal state")
)

// Strategy selects the frontier ordering.
type Strategy int

const (
	// BreadthFirst guarantees a minimal solution.
	BreadthFirst Strategy = iota

	// BestFirst orders by depth plus heuristic; minimal only under
	// admissible heuristics.
	BestFirst
)

// Heuristic estimates a lower bound on the moves remaining for a state.
// Implementations must be pure and must not mutate the puzzle.
type Heuristic func(*puzzle.Puzzle) int

// Option configures Solve via functional arguments. An invalid option is
// recorded internally and surfaced as ErrOptionViolation when Solve runs.
type Option func(*Options)

// Options holds solver parameters. Zero value is not usable; DefaultOptions
// supplies the baseline.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Strategy picks BreadthFirst or BestFirst.
	Strategy Strategy

	// Heuristics guide BestFirst; combined by taking their maximum so any
	// individually admissible bound keeps its guarantee. Ignored by
	// BreadthFirst.
	Heuristics []Heuristic

	// Mode selects exact or fuzzy canonical signatures for the visited set.
	Mode canon.Mode

	// Cache is the signature cache; sharing one across runs dedups exact
	// signatures globally. Nil means a private cache per run.
	Cache *canon.Cache

	// MaxMoves, if > 0, bounds the solution depth; exceeding it yields
	// ErrBoundReached. 0 disables the bound.
	MaxMoves int

	// OnExpand is called once per expanded state with its depth and the
	// frontier size after the pop.
	OnExpand func(depth, frontier int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the solver baseline: background context,
// breadth-first, exact signatures, no bound, no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Strategy: BreadthFirst,
		Mode:     canon.Exact,
		OnExpand: func(int, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStrategy selects the search strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != BreadthFirst && s != BestFirst {
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, s)
			return
		}
		o.Strategy = s
	}
}

// WithHeuristic adds one heuristic to the enabled set. Repeatable.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristics = append(o.Heuristics, h)
		}
	}
}

// WithSignatureMode selects exact or fuzzy state signatures.
func WithSignatureMode(m canon.Mode) Option {
	return func(o *Options) {
		if m != canon.Exact && m != canon.Fuzzy {
			o.err = fmt.Errorf("%w: unknown signature mode %d", ErrOptionViolation, m)
			return
		}
		o.Mode = m
	}
}

// WithCache shares a signature cache across solver runs. Safe because cache
// entries are never invalidated.
func WithCache(c *canon.Cache) Option {
	return func(o *Options) {
		if c != nil {
			o.Cache = c
		}
	}
}

// WithMaxMoves bounds the solution depth.
//
//	d > 0: solutions longer than d are not searched (ErrBoundReached)
//	d == 0: explicit no bound
//	d < 0: invalid option → ErrOptionViolation
func WithMaxMoves(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxMoves cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxMoves = d
	}
}

// WithOnExpand registers an observation hook, called per expanded state.
func WithOnExpand(fn func(depth, frontier int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result holds a successful search outcome.
type Result struct {
	// Moves is the solution in application order; empty for an already
	// solved puzzle.
	Moves []puzzle.Move

	// Expanded counts states popped from the frontier.
	Expanded int

	// Generated counts child states created, including pruned duplicates.
	Generated int
}
