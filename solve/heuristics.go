package solve

import "github.com/Jadiker/kami/puzzle"

// ColorCount returns the admissible lower bound: distinct live colors minus
// one. A move recolors a single region, so at most one color class can
// vanish per move; at least that many moves must remain.
func ColorCount() Heuristic {
	return func(p *puzzle.Puzzle) int {
		if n := len(p.Colors()); n > 1 {
			return n - 1
		}
		return 0
	}
}

// MaxEdgeReduction estimates remaining moves as the live edge count divided
// by the largest per-move adjacency gain available anywhere in the state
// (rounded up). The gain of recoloring region v to color c counts v's
// neighbors of color c — the adjacencies a merge would certainly absorb.
//
// NOT admissible: a merge can also dissolve extra edges through neighbor
// dedup, so the estimate can exceed the true remaining count. Enabling it
// trades the minimality guarantee for search speed.
func MaxEdgeReduction() Heuristic {
	return func(p *puzzle.Puzzle) int {
		edges := p.EdgeCount()
		if edges == 0 {
			return 0
		}
		best := 1 // any live edge admits a gain-1 move
		for _, id := range p.NodeIDs() {
			perColor := make(map[int]int)
			nbs, _ := p.NeighborIDs(id)
			for _, nb := range nbs {
				c, _ := p.ColorOf(nb)
				perColor[c.Index()]++
				if perColor[c.Index()] > best {
					best = perColor[c.Index()]
				}
			}
		}
		return (edges + best - 1) / best
	}
}
