package gen

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/Jadiker/kami/canon"
	"github.com/Jadiker/kami/color"
	"github.com/Jadiker/kami/puzzle"
	"github.com/Jadiker/kami/solve"
)

// FindHardest searches every connected planar topology on n labeled nodes,
// under every assignment of the first k palette colors, for the instance
// whose optimal solution needs the most moves.
//
// Each candidate is solved under a depth bound equal to the best count so
// far — only a strictly larger optimum is interesting, so a bounded search
// that fails proves the instance beats the incumbent, and one unbounded
// re-solve then obtains its true optimal length. Ties keep the first
// instance found in enumeration order (with one worker this is fully
// deterministic; see Options.Workers).
//
// Errors: ErrBadNodeCount, ErrBadColorCount, ErrTooManyNodes for invalid
// input, option violations, or a context error on cancellation.
// Complexity: O(2^(n·(n−1)/2) · k^n) solver invocations before pruning.
func FindHardest(n, k int, opts ...Option) (*Record, error) {
	if n < 1 {
		return nil, ErrBadNodeCount
	}
	if n > maxEnumNodes {
		return nil, ErrTooManyNodes
	}
	if k < 1 || k > n {
		return nil, fmt.Errorf("%w: k=%d, n=%d", ErrBadColorCount, k, n)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	h := &hunt{opts: o, n: n, k: k, bestLen: -1}
	if o.Dedup {
		h.dedupCache = canon.NewCache()
		h.seen = make(map[canon.Signature]struct{})
	}

	g, ctx := errgroup.WithContext(o.Ctx)

	topoCh := make(chan []puzzle.Pair, o.Workers)
	g.Go(func() error {
		defer close(topoCh)
		it, err := Topologies(n)
		if err != nil {
			return err
		}
		for {
			edges, ok := it.Next()
			if !ok {
				return nil
			}
			select {
			case topoCh <- edges:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	})

	for w := 0; w < o.Workers; w++ {
		g.Go(func() error {
			for edges := range topoCh {
				if err := h.evaluateTopology(ctx, edges); err != nil {
					return err
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return h.record(), nil
}

// hunt carries the shared state of one FindHardest run. The best record is
// the only cross-worker mutable state, behind its own mutex; the dedup set
// has a second one so signature churn does not serialize record updates.
type hunt struct {
	opts Options
	n, k int

	mu      sync.Mutex
	best    *Record
	bestLen int // -1 until the first instance is solved

	dedupMu    sync.Mutex
	dedupCache *canon.Cache
	seen       map[canon.Signature]struct{}

	evaluated atomic.Uint64
}

// evaluateTopology filters one topology and runs every coloring through the
// solver.
func (h *hunt) evaluateTopology(ctx context.Context, edges []puzzle.Pair) error {
	if !Connected(h.n, edges) {
		return nil
	}
	if !IsPlanar(h.n, edges) {
		return nil
	}

	it, err := Colorings(h.n, h.k)
	if err != nil {
		return err
	}
	for {
		coloring, ok := it.Next()
		if !ok {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err = h.evaluateInstance(ctx, coloring, edges); err != nil {
			return err
		}
	}
}

// evaluateInstance builds, dedups, and solves one candidate, installing a
// new record when its optimum strictly beats the incumbent.
func (h *hunt) evaluateInstance(ctx context.Context, coloring map[int]color.Color, edges []puzzle.Pair) error {
	p, err := puzzle.New(coloring, edges)
	if err != nil {
		// The topology passed the connectivity filter; failure is a defect.
		return fmt.Errorf("gen: building candidate: %w", err)
	}

	if h.opts.Dedup && h.alreadySeen(p) {
		return nil
	}

	bound := h.currentBest()
	sopts := []solve.Option{solve.WithContext(ctx)}
	if bound > 0 {
		sopts = append(sopts, solve.WithMaxMoves(bound))
	}
	res, err := solve.Solve(p, sopts...)
	switch {
	case err == nil:
		// Within the bound: interesting only before any record exists (the
		// first solved instance) — a bounded success can never be strictly
		// larger than the bound it ran under.
		h.install(p, res.Moves)
	case errors.Is(err, solve.ErrBoundReached):
		// Strictly harder than the incumbent: fetch its true optimum.
		res, err = solve.Solve(p, solve.WithContext(ctx))
		if err != nil {
			return err
		}
		h.install(p, res.Moves)
	default:
		return err
	}

	h.opts.OnProgress(h.evaluated.Add(1))
	return nil
}

// alreadySeen checks and records the instance signature under the dedup lock.
func (h *hunt) alreadySeen(p *puzzle.Puzzle) bool {
	mode := canon.Exact
	if h.opts.Fuzzy {
		mode = canon.Fuzzy
	}
	sig := h.dedupCache.Signature(p, mode)
	h.dedupMu.Lock()
	defer h.dedupMu.Unlock()
	if _, ok := h.seen[sig]; ok {
		return true
	}
	h.seen[sig] = struct{}{}
	return false
}

// currentBest snapshots the incumbent optimal count (-1 if none).
func (h *hunt) currentBest() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.bestLen
}

// install replaces the record iff the new optimum is strictly larger.
func (h *hunt) install(p *puzzle.Puzzle, moves []puzzle.Move) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(moves) > h.bestLen {
		h.bestLen = len(moves)
		h.best = &Record{Puzzle: p, Solution: moves, Optimal: len(moves)}
	}
}

// record returns the final best record.
func (h *hunt) record() *Record {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.best
}
