// Package color defines the identifier domain for puzzle region colors.
//
// A Color is an index into an unbounded, totally ordered palette. The first
// few indices carry the names of the original game palette; every index
// beyond the named prefix is minted on demand with a synthetic name, so the
// domain never runs out. Equality and ordering are by index.
package color

import "fmt"

// Color identifies one region color. Values are immutable and ordered by
// their integer index.
type Color int

// Named colors of the finite prefix, in palette order.
const (
	Orange Color = iota
	DarkBlue
	Cream
	Turquoise
)

// namedCount is the size of the named prefix; indices ≥ namedCount are
// minted lazily via String.
const namedCount = 4

// names holds the display names of the finite prefix.
var names = [namedCount]string{"ORANGE", "DARK_BLUE", "CREAM", "TURQUOISE"}

// String returns the palette name for the named prefix and a synthesized
// "Color_<index>" name for every index beyond it. Negative indices are
// reported verbatim so a defect is visible rather than masked.
func (c Color) String() string {
	if c >= 0 && c < namedCount {
		return names[c]
	}
	return fmt.Sprintf("Color_%d", int(c))
}

// Index returns the position of c in the total order.
func (c Color) Index() int { return int(c) }

// Less reports whether c precedes other in the palette order.
func (c Color) Less(other Color) bool { return c < other }

// Palette returns the first k colors of the domain in order.
// k ≤ 0 yields nil.
// Complexity: O(k).
func Palette(k int) []Color {
	if k <= 0 {
		return nil
	}
	out := make([]Color, k)
	for i := 0; i < k; i++ {
		out[i] = Color(i)
	}
	return out
}
