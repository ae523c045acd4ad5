package solve

import (
	"container/heap"
	"fmt"

	"github.com/Jadiker/kami/canon"
	"github.com/Jadiker/kami/puzzle"
)

// state is one node of the search: an exclusively owned puzzle snapshot plus
// the move list that produced it. Snapshots are never mutated after creation;
// every transition clones first.
type state struct {
	p     *puzzle.Puzzle
	moves []puzzle.Move
}

func (s *state) depth() int { return len(s.moves) }

// searcher encapsulates the mutable run state shared by both strategies.
type searcher struct {
	opts    Options
	cache   *canon.Cache
	visited map[canon.Signature]struct{}

	fifo []*state // BreadthFirst frontier
	pq   statePQ  // BestFirst frontier
	seq  int      // insertion counter for deterministic heap ties

	expanded  int
	generated int
}

// Solve searches for a minimal move sequence reducing p to a single region.
// The input puzzle is cloned up front and never mutated.
//
// Returns the ordered move list on success; ErrBoundReached when WithMaxMoves
// is exhausted (no partial result is returned); ErrUnsolvable if the frontier
// empties unbounded, which indicates an engine defect.
// Complexity: exponential in the worst case (the underlying problem is
// NP-hard); canonical-signature pruning keeps small instances tractable.
func Solve(p *puzzle.Puzzle, opts ...Option) (*Result, error) {
	if p == nil {
		return nil, ErrNilPuzzle
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	cache := o.Cache
	if cache == nil {
		cache = canon.NewCache()
	}

	start := p.Clone()
	start.Collapse()
	if start.Solved() {
		return &Result{Moves: []puzzle.Move{}}, nil
	}

	s := &searcher{
		opts:    o,
		cache:   cache,
		visited: make(map[canon.Signature]struct{}),
	}
	s.visited[cache.Signature(start, o.Mode)] = struct{}{}
	s.push(&state{p: start})

	return s.run()
}

// run pops, tests, and expands until a terminal state, exhaustion, or
// cancellation.
func (s *searcher) run() (*Result, error) {
	for s.frontierLen() > 0 {
		select {
		case <-s.opts.Ctx.Done():
			return nil, s.opts.Ctx.Err()
		default:
		}

		cur := s.pop()
		s.expanded++
		s.opts.OnExpand(cur.depth(), s.frontierLen())

		// Goal test at pop keeps BestFirst honest: a terminal state may sit
		// in the frontier behind a cheaper-f state that leads to a shorter
		// solution. BreadthFirst is unaffected.
		if cur.p.Solved() {
			return &Result{Moves: cur.moves, Expanded: s.expanded, Generated: s.generated}, nil
		}

		if err := s.expand(cur); err != nil {
			return nil, err
		}
	}

	if s.opts.MaxMoves > 0 {
		return nil, fmt.Errorf("%w: bound %d", ErrBoundReached, s.opts.MaxMoves)
	}
	return nil, ErrUnsolvable
}

// expand generates one child per candidate move, pruning visited signatures
// and children beyond the depth bound.
func (s *searcher) expand(cur *state) error {
	childDepth := cur.depth() + 1
	if s.opts.MaxMoves > 0 && childDepth > s.opts.MaxMoves {
		return nil
	}
	for _, m := range cur.p.Moves() {
		child := cur.p.Clone()
		if err := child.Apply(m); err != nil {
			// Moves() only emits applicable moves; failure here is a defect.
			return fmt.Errorf("%w: apply %v: %v", ErrUnsolvable, m, err)
		}
		s.generated++

		sig := s.cache.Signature(child, s.opts.Mode)
		if _, seen := s.visited[sig]; seen {
			continue // already explored at equal-or-lower depth
		}
		s.visited[sig] = struct{}{}

		moves := make([]puzzle.Move, childDepth)
		copy(moves, cur.moves)
		moves[childDepth-1] = m
		s.push(&state{p: child, moves: moves})
	}
	return nil
}

// push enqueues a state on the strategy's frontier.
func (s *searcher) push(st *state) {
	if s.opts.Strategy == BreadthFirst {
		s.fifo = append(s.fifo, st)
		return
	}
	s.seq++
	heap.Push(&s.pq, &pqItem{st: st, f: st.depth() + s.estimate(st.p), seq: s.seq})
}

// pop dequeues the next state to expand.
func (s *searcher) pop() *state {
	if s.opts.Strategy == BreadthFirst {
		st := s.fifo[0]
		s.fifo = s.fifo[1:]
		return st
	}
	return heap.Pop(&s.pq).(*pqItem).st
}

// frontierLen reports the current frontier size.
func (s *searcher) frontierLen() int {
	if s.opts.Strategy == BreadthFirst {
		return len(s.fifo)
	}
	return s.pq.Len()
}

// estimate combines the enabled heuristics by maximum, so any individually
// admissible bound keeps its guarantee.
func (s *searcher) estimate(p *puzzle.Puzzle) int {
	best := 0
	for _, h := range s.opts.Heuristics {
		if v := h(p); v > best {
			best = v
		}
	}
	return best
}

// pqItem is one frontier entry of the best-first heap.
type pqItem struct {
	st  *state
	f   int // depth + heuristic estimate
	seq int // insertion order, for deterministic ties
}

// statePQ is a min-heap over f with insertion-order tie-breaking.
type statePQ []*pqItem

func (q statePQ) Len() int { return len(q) }

func (q statePQ) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}

func (q statePQ) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *statePQ) Push(x interface{}) { *q = append(*q, x.(*pqItem)) }

func (q *statePQ) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
