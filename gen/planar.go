package gen

import (
	"math/bits"

	"github.com/Jadiker/kami/puzzle"
)

// IsPlanar reports whether the given simple graph can be drawn in the plane
// with no edge crossings — the physical-board validity predicate for puzzle
// topologies.
//
// Decision path: graphs on ≤ 4 nodes are always planar; anything past the
// Euler bound m > 3n−6 never is; the rest is settled by Wagner's theorem —
// planar iff no K5 and no K3,3 minor. The minor search assigns each node to
// a branch set (or leaves it unused) with backtracking; exponential in n,
// which is fine at the scale the enumerator feeds it (and the node count is
// capped well before it matters).
// Complexity: O((h+1)^n) worst case for h branch sets.
func IsPlanar(n int, edges []puzzle.Pair) bool {
	if n <= 4 {
		return true
	}

	adj := make([]uint64, n)
	m := 0
	for _, e := range edges {
		u, v := e[0], e[1]
		if u == v || u < 0 || v < 0 || u >= n || v >= n {
			continue
		}
		if adj[u]&(uint64(1)<<v) == 0 {
			m++
		}
		adj[u] |= uint64(1) << v
		adj[v] |= uint64(1) << u
	}
	if m > 3*n-6 {
		return false
	}

	if hasMinor(adj, k5Edges, 5) {
		return false
	}
	if n >= 6 && hasMinor(adj, k33Edges, 6) {
		return false
	}
	return true
}

// k5Edges lists the edges of K5 over branch sets 0..4.
var k5Edges = [][2]int{
	{0, 1}, {0, 2}, {0, 3}, {0, 4},
	{1, 2}, {1, 3}, {1, 4},
	{2, 3}, {2, 4},
	{3, 4},
}

// k33Edges lists the edges of K3,3: parts {0,1,2} and {3,4,5}.
var k33Edges = [][2]int{
	{0, 3}, {0, 4}, {0, 5},
	{1, 3}, {1, 4}, {1, 5},
	{2, 3}, {2, 4}, {2, 5},
}

// hasMinor reports whether the graph given by adjacency bitmasks contains
// the model graph as a minor: h disjoint, non-empty, connected branch sets
// with at least one crossing edge for every model edge.
func hasMinor(adj []uint64, model [][2]int, h int) bool {
	n := len(adj)
	if n < h {
		return false
	}
	sets := make([]uint64, h)

	var assign func(v, empty int) bool
	assign = func(v, empty int) bool {
		if n-v < empty {
			return false // not enough nodes left to fill the empty sets
		}
		if v == n {
			return minorRealized(adj, sets, model)
		}
		bit := uint64(1) << v
		for part := 0; part < h; part++ {
			wasEmpty := sets[part] == 0
			sets[part] |= bit
			nowEmpty := empty
			if wasEmpty {
				nowEmpty--
			}
			if assign(v+1, nowEmpty) {
				return true
			}
			sets[part] &^= bit
		}
		// Leave v out of every branch set.
		return assign(v+1, empty)
	}
	return assign(0, h)
}

// minorRealized checks a complete assignment: every branch set connected,
// every model edge crossed by at least one graph edge.
func minorRealized(adj []uint64, sets []uint64, model [][2]int) bool {
	for _, s := range sets {
		if s == 0 || !connectedMask(adj, s) {
			return false
		}
	}
	for _, e := range model {
		if !crossingEdge(adj, sets[e[0]], sets[e[1]]) {
			return false
		}
	}
	return true
}

// connectedMask floods from the lowest bit of mask within the induced
// subgraph and reports whether it reaches every member.
func connectedMask(adj []uint64, mask uint64) bool {
	if mask == 0 {
		return false
	}
	seen := mask & (-mask) // lowest set bit
	for {
		next := seen
		for f := seen; f != 0; {
			v := bits.TrailingZeros64(f)
			f &= f - 1
			next |= adj[v] & mask
		}
		if next == seen {
			return seen == mask
		}
		seen = next
	}
}

// crossingEdge reports whether any edge joins the two node sets.
func crossingEdge(adj []uint64, a, b uint64) bool {
	for s := a; s != 0; {
		v := bits.TrailingZeros64(s)
		s &= s - 1
		if adj[v]&b != 0 {
			return true
		}
	}
	return false
}
