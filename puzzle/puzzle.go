package puzzle

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Jadiker/kami/color"
)

// Puzzle is the region graph: a mapping from live region id to its color and
// neighbor set. A Puzzle is constructed once from a description and then only
// transitions through Apply; solvers clone before transitioning so each
// search state exclusively owns its snapshot.
type Puzzle struct {
	nodes map[int]*node
}

// New builds a puzzle from a coloring (which defines the region id set) and a
// list of unordered adjacency pairs. Symmetry holds by construction: each
// pair is inserted in both directions, duplicates collapse into the set.
//
// The result is normalized by a full collapse, so the post-collapse invariant
// (no two live adjacent nodes share a color) holds from birth.
//
// Errors: ErrEmptyPuzzle, ErrSelfLoop, ErrUnknownNode for malformed input,
// ErrDisconnected if the regions do not form one connected graph.
// Complexity: O(V + E) plus the normalizing collapse.
func New(coloring map[int]color.Color, edges []Pair) (*Puzzle, error) {
	if len(coloring) == 0 {
		return nil, ErrEmptyPuzzle
	}
	p := &Puzzle{nodes: make(map[int]*node, len(coloring))}
	for id, c := range coloring {
		p.nodes[id] = &node{color: c, adj: make(map[int]struct{})}
	}
	for _, e := range edges {
		a, b := e[0], e[1]
		if a == b {
			return nil, fmt.Errorf("%w: region %d", ErrSelfLoop, a)
		}
		na, ok := p.nodes[a]
		if !ok {
			return nil, fmt.Errorf("%w: edge endpoint %d", ErrUnknownNode, a)
		}
		nb, ok := p.nodes[b]
		if !ok {
			return nil, fmt.Errorf("%w: edge endpoint %d", ErrUnknownNode, b)
		}
		na.adj[b] = struct{}{}
		nb.adj[a] = struct{}{}
	}
	if !p.connected() {
		return nil, ErrDisconnected
	}
	p.Collapse()
	return p, nil
}

// connected reports whether every live node is reachable from an arbitrary
// start node, ignoring colors.
func (p *Puzzle) connected() bool {
	var start int
	for id := range p.nodes {
		start = id
		break
	}
	seen := map[int]struct{}{start: {}}
	stack := []int{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for nb := range p.nodes[cur].adj {
			if _, ok := seen[nb]; !ok {
				seen[nb] = struct{}{}
				stack = append(stack, nb)
			}
		}
	}
	return len(seen) == len(p.nodes)
}

// Clone returns a deep copy. The copy shares nothing with the receiver; no
// nested structures beyond the neighbor sets exist, so a per-node clone is a
// full snapshot.
func (p *Puzzle) Clone() *Puzzle {
	cp := &Puzzle{nodes: make(map[int]*node, len(p.nodes))}
	for id, n := range p.nodes {
		cp.nodes[id] = n.clone()
	}
	return cp
}

// Len returns the number of live regions.
func (p *Puzzle) Len() int { return len(p.nodes) }

// Solved reports whether exactly one live region remains.
func (p *Puzzle) Solved() bool { return len(p.nodes) == 1 }

// NodeIDs returns the live region ids in ascending order.
func (p *Puzzle) NodeIDs() []int {
	ids := make([]int, 0, len(p.nodes))
	for id := range p.nodes {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// ColorOf returns the color of a live region, or ErrUnknownNode.
func (p *Puzzle) ColorOf(id int) (color.Color, error) {
	n, ok := p.nodes[id]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	return n.color, nil
}

// NeighborIDs returns the ids adjacent to a live region in ascending order,
// or ErrUnknownNode.
func (p *Puzzle) NeighborIDs(id int) ([]int, error) {
	n, ok := p.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	ids := make([]int, 0, len(n.adj))
	for nb := range n.adj {
		ids = append(ids, nb)
	}
	sort.Ints(ids)
	return ids, nil
}

// Colors returns the distinct colors among live regions in palette order.
func (p *Puzzle) Colors() []color.Color {
	seen := make(map[color.Color]struct{}, len(p.nodes))
	for _, n := range p.nodes {
		seen[n.color] = struct{}{}
	}
	out := make([]color.Color, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// EdgeCount returns the number of undirected adjacencies between live regions.
func (p *Puzzle) EdgeCount() int {
	total := 0
	for _, n := range p.nodes {
		total += len(n.adj)
	}
	return total / 2
}

// Moves enumerates the candidate moves in deterministic order: for each live
// region (ascending id), one move per distinct live color other than its own.
// Recoloring to a color held by no live region can never merge anything and
// is excluded; after a collapse a region's own color is never adjacent, so
// every returned move is valid for Apply.
// Complexity: O(V·C) for C distinct colors.
func (p *Puzzle) Moves() []Move {
	colors := p.Colors()
	ids := p.NodeIDs()
	out := make([]Move, 0, len(ids)*(len(colors)-1))
	for _, id := range ids {
		own := p.nodes[id].color
		for _, c := range colors {
			if c != own {
				out = append(out, Move{Node: id, To: c})
			}
		}
	}
	return out
}

// String renders one line per live region, ascending by id.
func (p *Puzzle) String() string {
	var b strings.Builder
	for _, id := range p.NodeIDs() {
		nbs, _ := p.NeighborIDs(id)
		fmt.Fprintf(&b, "node %d: %s, neighbors %v\n", id, p.nodes[id].color, nbs)
	}
	return b.String()
}
