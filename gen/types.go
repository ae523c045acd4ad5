// Package gen brute-forces the space of small puzzle instances to find the
// hardest one: the planar, connected instance whose optimal solution needs
// the most moves for a given node count and color count.
//
// Enumeration is lazy throughout — topologies are edge-subset masks produced
// one at a time, colorings are an odometer over the palette — so memory stays
// bounded no matter how large the candidate space gets. The space itself is
// exponential (2^(n·(n−1)/2) topologies × k^n colorings); nothing here claims
// to scale past small n, and the node count is capped where the edge mask
// would overflow.
//
// Errors:
//
//   - ErrBadNodeCount  — n < 1.
//   - ErrBadColorCount — k < 1 or k > n.
//   - ErrTooManyNodes  — n too large for the edge-subset mask.
package gen

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jadiker/kami/puzzle"
)

// Sentinel errors for generator input validation.
var (
	// ErrBadNodeCount indicates a non-positive node count.
	ErrBadNodeCount = errors.New("gen: node count must be at least 1")

	// ErrBadColorCount indicates a color count outside 1..n.
	ErrBadColorCount = errors.New("gen: color count must satisfy 1 ≤ k ≤ n")

	// ErrTooManyNodes indicates the topology space cannot be enumerated
	// because the edge-subset mask would exceed 63 bits.
	ErrTooManyNodes = errors.New("gen: node count too large to enumerate")

	// ErrBadWorkerCount indicates a non-positive worker count.
	ErrBadWorkerCount = errors.New("gen: worker count must be positive")
)

// Record is the hardest instance found so far: the puzzle, one optimal
// solution, and its length. Replaced only when a strictly larger optimal
// move count appears; ties keep the instance found first.
type Record struct {
	// Puzzle is the instance, already normalized.
	Puzzle *puzzle.Puzzle

	// Solution is one optimal move sequence.
	Solution []puzzle.Move

	// Optimal is the minimal move count, len(Solution).
	Optimal int
}

// Option configures FindHardest via functional arguments. Invalid options
// are recorded and surfaced when FindHardest runs.
type Option func(*Options)

// Options holds generator parameters.
type Options struct {
	// Ctx allows cancellation of a long enumeration.
	Ctx context.Context

	// Workers shards the topology enumeration across goroutines. The best
	// record sits behind one mutex; with more than one worker the maximal
	// optimal count is still deterministic, but which tying instance is
	// reported may vary between runs.
	Workers int

	// Dedup skips instances whose canonical signature was already evaluated.
	// With exact signatures this only removes true duplicates (isomorphic
	// instances share their optimum); combined with Fuzzy it may also skip
	// genuinely distinct instances — a documented precision trade-off.
	Dedup bool

	// Fuzzy uses fuzzy signatures for instance dedup.
	Fuzzy bool

	// OnProgress is called after each evaluated instance with the running
	// total. May be called from multiple workers concurrently.
	OnProgress func(evaluated uint64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the generator baseline: background context, one
// worker, no dedup, no-op progress hook.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Workers:    1,
		OnProgress: func(uint64) {},
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

// WithWorkers shards topology enumeration across w goroutines; w < 1 is an
// option violation.
func WithWorkers(w int) Option {
	return func(o *Options) {
		if w < 1 {
			o.err = fmt.Errorf("%w: %d", ErrBadWorkerCount, w)
			return
		}
		o.Workers = w
	}
}

// WithDedup skips instances whose canonical signature has been seen.
func WithDedup() Option {
	return func(o *Options) { o.Dedup = true }
}

// WithFuzzySignatures makes instance dedup use fuzzy signatures: cheaper,
// but distinct instances may collide and be skipped.
func WithFuzzySignatures() Option {
	return func(o *Options) { o.Fuzzy = true }
}

// WithOnProgress registers a progress hook, called per evaluated instance.
func WithOnProgress(fn func(evaluated uint64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnProgress = fn
		}
	}
}
