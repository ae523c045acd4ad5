package puzzle

import (
	"fmt"
	"sort"
)

// Apply recolors one region and collapses the connected same-color component
// around it into a single surviving node.
//
// The component is found by a depth-first walk restricted to the induced
// same-new-color subgraph, so regions that become same-colored only as a side
// effect of the recolor are merged too — not just the target's pre-existing
// neighbors. The survivor keeps the smallest id in the component; its
// neighbor set is the union of all external neighbors of the merged regions.
//
// Errors: ErrUnknownNode for a dead or unknown id, ErrSameColor for a no-op
// move. Both are recoverable; the puzzle is untouched on error, and collapse
// never runs for a rejected move.
// Complexity: O(component + its adjacency).
func (p *Puzzle) Apply(m Move) error {
	n, ok := p.nodes[m.Node]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownNode, m.Node)
	}
	if n.color == m.To {
		return fmt.Errorf("%w: region %d is already %s", ErrSameColor, m.Node, m.To)
	}
	n.color = m.To
	p.collapseFrom(m.Node)
	return nil
}

// Collapse normalizes the whole graph: every connected same-color component
// is merged into one node. Running it twice in a row without an intervening
// recolor changes nothing — after the first pass no live adjacent pair shares
// a color, so every component is a singleton.
// Complexity: O(V + E).
func (p *Puzzle) Collapse() {
	visited := make(map[int]struct{}, len(p.nodes))
	for _, id := range p.NodeIDs() {
		if _, live := p.nodes[id]; !live {
			continue // merged away earlier in this pass
		}
		if _, ok := visited[id]; ok {
			continue
		}
		for _, member := range p.sameColorComponent(id) {
			visited[member] = struct{}{}
		}
		p.collapseFrom(id)
	}
}

// sameColorComponent returns the ids of the connected component containing
// start within the subgraph induced by start's color, in ascending order.
func (p *Puzzle) sameColorComponent(start int) []int {
	want := p.nodes[start].color
	comp := map[int]struct{}{start: {}}
	stack := []int{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for nb := range p.nodes[cur].adj {
			if _, ok := comp[nb]; ok {
				continue
			}
			if p.nodes[nb].color != want {
				continue
			}
			comp[nb] = struct{}{}
			stack = append(stack, nb)
		}
	}
	ids := make([]int, 0, len(comp))
	for id := range comp {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// collapseFrom merges the same-color component containing start into its
// smallest id. External neighbors are rewired to the survivor; merged ids
// leave the live set.
func (p *Puzzle) collapseFrom(start int) {
	comp := p.sameColorComponent(start)
	if len(comp) == 1 {
		return
	}
	survivor := comp[0] // smallest id, deterministic
	inComp := make(map[int]struct{}, len(comp))
	for _, id := range comp {
		inComp[id] = struct{}{}
	}

	// Union of external neighbors across the component.
	external := make(map[int]struct{})
	for _, id := range comp {
		for nb := range p.nodes[id].adj {
			if _, ok := inComp[nb]; !ok {
				external[nb] = struct{}{}
			}
		}
	}

	// Remove merged ids and rewire their external neighbors.
	for _, id := range comp {
		if id != survivor {
			delete(p.nodes, id)
		}
	}
	surv := p.nodes[survivor]
	surv.adj = external
	for nb := range external {
		adj := p.nodes[nb].adj
		for _, id := range comp {
			delete(adj, id)
		}
		adj[survivor] = struct{}{}
	}
}
