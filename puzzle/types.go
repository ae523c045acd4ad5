// Package puzzle holds the mutable state of a flood-fill region puzzle and
// implements the recolor-then-merge transition.
//
// A puzzle is an undirected graph of regions: each live node carries a color
// and a neighbor set. Applying a Move recolors one node and then collapses
// the connected same-color component around it into a single surviving node.
// A puzzle is solved when exactly one live node remains.
//
// Invariants:
//
//   - Adjacency is symmetric and loop-free.
//   - The graph is connected as a whole.
//   - After every collapse, no two live adjacent nodes share a color
//     (adjacent same-colored nodes are a collapse-pending defect, never a
//     stable state).
//
// Errors:
//
//   - ErrEmptyPuzzle   — construction with no regions.
//   - ErrUnknownNode   — an edge or move references an id with no region.
//   - ErrSelfLoop      — an edge connects a region to itself.
//   - ErrDisconnected  — the region graph is not connected.
//   - ErrSameColor     — a move recolors a region to its current color.
package puzzle

import (
	"errors"
	"fmt"

	"github.com/Jadiker/kami/color"
)

// Sentinel errors for puzzle construction and moves.
var (
	// ErrEmptyPuzzle indicates a construction attempt with zero regions.
	ErrEmptyPuzzle = errors.New("puzzle: no regions")

	// ErrUnknownNode indicates a reference to a region id that does not exist
	// (or is no longer live).
	ErrUnknownNode = errors.New("puzzle: unknown region id")

	// ErrSelfLoop indicates an edge from a region to itself.
	ErrSelfLoop = errors.New("puzzle: self-adjacency not allowed")

	// ErrDisconnected indicates the regions do not form a single connected
	// graph; a valid puzzle has no isolated sub-regions.
	ErrDisconnected = errors.New("puzzle: region graph is disconnected")

	// ErrSameColor indicates a no-op move: the target already has that color.
	// No-op moves are rejected, never silently absorbed.
	ErrSameColor = errors.New("puzzle: move target already has that color")
)

// Pair is an unordered adjacency between two region ids.
type Pair [2]int

// Move recolors one region. Precondition: To differs from the region's
// current color; Apply rejects a no-op move with ErrSameColor.
type Move struct {
	// Node is the id of the region to recolor.
	Node int

	// To is the new color.
	To color.Color
}

// String renders a move as "node → color" for logs and solutions.
func (m Move) String() string {
	return fmt.Sprintf("set %d to %s", m.Node, m.To)
}

// node is one live region: its color plus the set of adjacent region ids.
type node struct {
	color color.Color
	adj   map[int]struct{}
}

// clone deep-copies a node.
func (n *node) clone() *node {
	cp := &node{color: n.color, adj: make(map[int]struct{}, len(n.adj))}
	for id := range n.adj {
		cp.adj[id] = struct{}{}
	}
	return cp
}
