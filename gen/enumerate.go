package gen

import (
	"github.com/Jadiker/kami/color"
	"github.com/Jadiker/kami/puzzle"
)

// maxEnumNodes keeps the edge-subset mask within 63 bits: n·(n−1)/2 ≤ 63.
const maxEnumNodes = 11

// TopologyIter lazily enumerates every simple undirected graph on n labeled
// nodes as an edge list, by walking all subsets of the n·(n−1)/2 candidate
// pairs. Restartable via Reset; O(n²) memory regardless of how many of the
// 2^(n·(n−1)/2) subsets exist.
type TopologyIter struct {
	pairs []puzzle.Pair
	mask  uint64
	limit uint64
}

// Topologies returns an iterator over all simple graphs on n labeled nodes.
// ErrBadNodeCount for n < 1, ErrTooManyNodes past the mask capacity.
func Topologies(n int) (*TopologyIter, error) {
	if n < 1 {
		return nil, ErrBadNodeCount
	}
	if n > maxEnumNodes {
		return nil, ErrTooManyNodes
	}
	pairs := make([]puzzle.Pair, 0, n*(n-1)/2)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			pairs = append(pairs, puzzle.Pair{u, v})
		}
	}
	return &TopologyIter{pairs: pairs, limit: uint64(1) << len(pairs)}, nil
}

// Next yields the next edge list; ok is false when the space is exhausted.
// The returned slice is freshly allocated and owned by the caller.
func (it *TopologyIter) Next() (edges []puzzle.Pair, ok bool) {
	if it.mask >= it.limit {
		return nil, false
	}
	for i, p := range it.pairs {
		if it.mask&(uint64(1)<<i) != 0 {
			edges = append(edges, p)
		}
	}
	it.mask++
	return edges, true
}

// Reset rewinds the iterator to the empty graph.
func (it *TopologyIter) Reset() { it.mask = 0 }

// Total returns the number of subsets the iterator walks.
func (it *TopologyIter) Total() uint64 { return it.limit }

// ColoringIter lazily enumerates every assignment of the first k palette
// colors to n nodes — an odometer over k^n values, O(n) memory.
type ColoringIter struct {
	palette []color.Color
	digits  []int
	done    bool
}

// Colorings returns an iterator over all k^n colorings.
// ErrBadNodeCount for n < 1, ErrBadColorCount for k < 1.
func Colorings(n, k int) (*ColoringIter, error) {
	if n < 1 {
		return nil, ErrBadNodeCount
	}
	if k < 1 {
		return nil, ErrBadColorCount
	}
	return &ColoringIter{palette: color.Palette(k), digits: make([]int, n)}, nil
}

// Next yields the next coloring as a map from node id to color; ok is false
// when all assignments have been produced.
func (it *ColoringIter) Next() (coloring map[int]color.Color, ok bool) {
	if it.done {
		return nil, false
	}
	coloring = make(map[int]color.Color, len(it.digits))
	for i, d := range it.digits {
		coloring[i] = it.palette[d]
	}
	// Advance the odometer, least significant digit first.
	for i := 0; i < len(it.digits); i++ {
		it.digits[i]++
		if it.digits[i] < len(it.palette) {
			return coloring, true
		}
		it.digits[i] = 0
	}
	it.done = true
	return coloring, true
}

// Reset rewinds the iterator to the all-first-color assignment.
func (it *ColoringIter) Reset() {
	for i := range it.digits {
		it.digits[i] = 0
	}
	it.done = false
}

// Connected reports whether the given edges connect all n nodes, via
// union-find with path halving.
func Connected(n int, edges []puzzle.Pair) bool {
	if n <= 1 {
		return true
	}
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	find := func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	comps := n
	for _, e := range edges {
		ra, rb := find(e[0]), find(e[1])
		if ra != rb {
			parent[ra] = rb
			comps--
		}
	}
	return comps == 1
}
