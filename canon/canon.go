// Package canon computes canonical signatures of puzzle states, used by the
// solver as dedup keys so equivalent states are explored once.
//
// Two precision modes:
//
//   - Exact: iterative color refinement (each node's label is re-hashed from
//     its color and the sorted multiset of neighbor labels, for |V| rounds),
//     then verification against a bucket of representative states held in a
//     Cache via a color-preserving isomorphism test. Refinement alone is not
//     injective on all graphs, so the bucket step is what makes two equal
//     exact signatures mean "structurally indistinguishable puzzles".
//   - Fuzzy: the refinement hash alone, skipping the bucket verification.
//     Refinement-equivalent non-isomorphic states collide; that is a silent,
//     documented speed/precision trade-off, not an error. A solver using
//     Fuzzy can skip a genuinely different state and return a non-minimal
//     answer. No such pair exists among connected graphs small enough for
//     this engine to search exhaustively, which is what makes the mode
//     useful in practice.
//
// Both modes are deterministic, operate on a collapsed copy, and never
// mutate the input.
package canon

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"sort"

	"github.com/Jadiker/kami/puzzle"
)

// Mode selects signature precision.
type Mode int

const (
	// Exact signatures are injective over colored-graph isomorphism.
	Exact Mode = iota

	// Fuzzy signatures are cheaper but may collide for distinct states.
	Fuzzy
)

// String names the mode for logs and errors.
func (m Mode) String() string {
	if m == Fuzzy {
		return "fuzzy"
	}
	return "exact"
}

// Signature is a dedup key for a puzzle state. Equal signatures from the
// same Cache and Mode identify states the solver treats as equivalent.
type Signature string

// snapshot is a compact, id-free copy of a collapsed puzzle: nodes are
// relabeled to 0..n-1 in ascending original-id order.
type snapshot struct {
	colors []int   // palette index per node
	adj    [][]int // sorted neighbor positions per node
	edges  int
}

// snapshotOf relabels a collapsed puzzle into positional form.
func snapshotOf(p *puzzle.Puzzle) *snapshot {
	ids := p.NodeIDs()
	pos := make(map[int]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}
	s := &snapshot{
		colors: make([]int, len(ids)),
		adj:    make([][]int, len(ids)),
		edges:  p.EdgeCount(),
	}
	for i, id := range ids {
		c, _ := p.ColorOf(id)
		s.colors[i] = c.Index()
		nbs, _ := p.NeighborIDs(id)
		row := make([]int, len(nbs))
		for j, nb := range nbs {
			row[j] = pos[nb]
		}
		sort.Ints(row)
		s.adj[i] = row
	}
	return s
}

// refinedHash runs color refinement to a fixed point bounded by the node
// count and hashes the sorted multiset of final labels. Invariant under node
// relabeling, sensitive to color identity and adjacency structure.
func (s *snapshot) refinedHash() uint64 {
	n := len(s.colors)
	labels := make([]uint64, n)
	for i, c := range s.colors {
		labels[i] = mix(uint64(c), 0x9e3779b97f4a7c15)
	}

	next := make([]uint64, n)
	neigh := make([]uint64, 0, n)
	for round := 0; round < n; round++ {
		for v := 0; v < n; v++ {
			neigh = neigh[:0]
			for _, nb := range s.adj[v] {
				neigh = append(neigh, labels[nb])
			}
			sort.Slice(neigh, func(i, j int) bool { return neigh[i] < neigh[j] })

			h := fnv.New64a()
			writeU64(h, uint64(s.colors[v]))
			writeU64(h, labels[v])
			for _, l := range neigh {
				writeU64(h, l)
			}
			next[v] = h.Sum64()
		}
		labels, next = next, labels
	}

	final := make([]uint64, n)
	copy(final, labels)
	sort.Slice(final, func(i, j int) bool { return final[i] < final[j] })

	h := fnv.New64a()
	writeU64(h, uint64(n))
	writeU64(h, uint64(s.edges))
	for _, l := range final {
		writeU64(h, l)
	}
	return h.Sum64()
}

// writeU64 feeds one big-endian word into a hash.
func writeU64(h interface{ Write([]byte) (int, error) }, v uint64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	h.Write(buf[:]) //nolint:errcheck // fnv never fails
}

// mix is a cheap 64-bit scramble (splitmix64 finalizer).
func mix(v, salt uint64) uint64 {
	v += salt
	v = (v ^ (v >> 30)) * 0xbf58476d1ce4e5b9
	v = (v ^ (v >> 27)) * 0x94d049bb133111eb
	return v ^ (v >> 31)
}

// format renders a signature string from mode tag, hash, and bucket index.
func format(mode Mode, h uint64, index int) Signature {
	if mode == Fuzzy {
		return Signature(fmt.Sprintf("f:%016x", h))
	}
	return Signature(fmt.Sprintf("x:%016x#%d", h, index))
}
