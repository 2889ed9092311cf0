package circuit

import (
	"slices"

	"github.com/mjedwabn/circuits/spatial"
)

// Circuit is a set of points that are mutually reachable through processed
// edges. Functions in this package treat a Circuit as immutable once it is
// part of a Partition; changes produce a new Circuit.
type Circuit map[spatial.Point]struct{}

// NewCircuit returns a circuit holding the given points (duplicates collapse).
func NewCircuit(points ...spatial.Point) Circuit {
	c := make(Circuit, len(points))
	for _, p := range points {
		c[p] = struct{}{}
	}

	return c
}

// Size returns the number of distinct points in c.
func (c Circuit) Size() int { return len(c) }

// Contains reports whether p belongs to c.
func (c Circuit) Contains(p spatial.Point) bool {
	_, ok := c[p]
	return ok
}

// Members returns the points of c ordered by spatial.Compare.
func (c Circuit) Members() []spatial.Point {
	out := make([]spatial.Point, 0, len(c))
	for p := range c {
		out = append(out, p)
	}
	slices.SortFunc(out, spatial.Compare)

	return out
}

// overlaps reports whether c and o share at least one point.
// Iterates the smaller set. Complexity: O(min(|c|,|o|)).
func (c Circuit) overlaps(o Circuit) bool {
	small, large := c, o
	if len(small) > len(large) {
		small, large = large, small
	}
	for p := range small {
		if large.Contains(p) {
			return true
		}
	}

	return false
}

// with returns a copy of c extended by points.
func (c Circuit) with(points ...spatial.Point) Circuit {
	out := make(Circuit, len(c)+len(points))
	for p := range c {
		out[p] = struct{}{}
	}
	for _, p := range points {
		out[p] = struct{}{}
	}

	return out
}

// union returns a new circuit holding the members of c and o.
func (c Circuit) union(o Circuit) Circuit {
	out := make(Circuit, len(c)+len(o))
	for p := range c {
		out[p] = struct{}{}
	}
	for p := range o {
		out[p] = struct{}{}
	}

	return out
}
