// Package kami solves and generates flood-fill region puzzles: a set of
// colored regions, adjacency between regions that touch, and a move that
// recolors one region, merging it with every same-colored region it now
// touches. The goal is a single remaining region in as few moves as possible.
//
// What's inside:
//
//	color/  — ordered, unbounded color identifiers
//	puzzle/ — the region graph, moves, and collapse mechanics
//	canon/  — exact and fuzzy canonical state signatures for search dedup
//	solve/  — breadth-first and best-first solvers with pluggable heuristics
//	gen/    — brute-force search for the hardest small planar instance
//	cmd/    — a small CLI wrapping the library
//
// Why a region graph? Cells of the same color that touch behave as one
// region, so the natural state is a graph of maximal same-color areas. A
// move is then a recolor of one vertex followed by a merge of the connected
// same-color component, which keeps the state small and the search honest.
//
// Solving flood-fill optimally is NP-hard in general; the solvers here are
// exact searches with canonical-state pruning, practical for the small
// instances the generator explores.
//
//	go get github.com/Jadiker/kami
package kami
