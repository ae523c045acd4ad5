package canon

import "sort"

// isomorphic reports whether two snapshots are isomorphic as colored graphs:
// a bijection of node positions that preserves both adjacency and colors.
//
// Cheap profile rejections first, then a backtracking search mapping nodes
// in position order. Exponential in the worst case; the states this engine
// deals in are small, and the refined-hash bucketing means this runs only on
// hash collisions.
func isomorphic(a, b *snapshot) bool {
	n := len(a.colors)
	if len(b.colors) != n || a.edges != b.edges {
		return false
	}
	if !sameProfile(a, b) {
		return false
	}

	mapping := make([]int, n) // position in a → position in b
	used := make([]bool, n)

	var match func(v int) bool
	match = func(v int) bool {
		if v == n {
			return true
		}
		for u := 0; u < n; u++ {
			if used[u] || b.colors[u] != a.colors[v] || len(b.adj[u]) != len(a.adj[v]) {
				continue
			}
			consistent := true
			for w := 0; w < v; w++ {
				if hasEdge(a, v, w) != hasEdge(b, u, mapping[w]) {
					consistent = false
					break
				}
			}
			if !consistent {
				continue
			}
			mapping[v] = u
			used[u] = true
			if match(v + 1) {
				return true
			}
			used[u] = false
		}
		return false
	}
	return match(0)
}

// sameProfile compares the sorted (color, degree) multisets of two snapshots.
func sameProfile(a, b *snapshot) bool {
	pa := profile(a)
	pb := profile(b)
	for i := range pa {
		if pa[i] != pb[i] {
			return false
		}
	}
	return true
}

// profile returns the sorted (color, degree) pairs packed into single ints.
func profile(s *snapshot) []int {
	out := make([]int, len(s.colors))
	for i, c := range s.colors {
		out[i] = c<<16 | len(s.adj[i])
	}
	sort.Ints(out)
	return out
}

// hasEdge reports adjacency between positions u and v via binary search over
// the sorted neighbor row.
func hasEdge(s *snapshot, u, v int) bool {
	row := s.adj[u]
	i := sort.SearchInts(row, v)
	return i < len(row) && row[i] == v
}
