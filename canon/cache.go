package canon

import (
	"sync"

	"github.com/Jadiker/kami/puzzle"
)

// Cache disambiguates exact signatures: states whose refined hashes collide
// are verified by isomorphism against stored representatives, and the bucket
// index becomes part of the signature.
//
// A Cache is explicitly constructed and threaded through calls — never
// ambient process state. Entries are append-only and pure functions of graph
// structure, so sharing one Cache across concurrent solver runs is safe; a
// mutex guards the buckets.
type Cache struct {
	mu      sync.Mutex
	buckets map[uint64][]*snapshot
}

// NewCache returns an empty signature cache.
func NewCache() *Cache {
	return &Cache{buckets: make(map[uint64][]*snapshot)}
}

// Signature computes the dedup key of a puzzle state in the given mode.
//
// The input is never mutated: the signature is taken over a collapsed copy,
// so a state with pending merges hashes identically to its stable form.
// Both modes share the refinement hash; Fuzzy stops there, taking no lock
// and never consulting the bucket store.
// Complexity: O(V·(V+E)·log V) refinement; Exact adds an isomorphism check
// per colliding representative (exponential worst case, bounded by the small
// states this engine searches).
func (c *Cache) Signature(p *puzzle.Puzzle, mode Mode) Signature {
	cp := p.Clone()
	cp.Collapse()
	s := snapshotOf(cp)

	h := s.refinedHash()
	if mode == Fuzzy {
		return format(Fuzzy, h, 0)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	bucket := c.buckets[h]
	for i, rep := range bucket {
		if isomorphic(s, rep) {
			return format(Exact, h, i)
		}
	}
	c.buckets[h] = append(bucket, s)
	return format(Exact, h, len(bucket))
}

// Len reports how many representative states the cache currently holds.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, b := range c.buckets {
		total += len(b)
	}
	return total
}
