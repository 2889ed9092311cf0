// SPDX-License-Identifier: MIT
// Package: circuits/spatial
//
// point.go — the Point value type and the distance metrics.
//
// Contract:
//   • Point equality is value equality; input position is not part of identity.
//   • Every Metric is symmetric, non-negative and returns 0 for coincident points.
//   • Coordinate differences are taken in float64, so large coordinates never
//     overflow the squared sum.

package spatial

import (
	"cmp"
	"math"
	"strconv"
)

// Point is an immutable triple of integer coordinates.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Metric computes the weight of the unordered pair {a, b}.
type Metric func(a, b Point) float64

// String renders p in the loader's record format "x,y,z".
func (p Point) String() string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y) + "," + strconv.Itoa(p.Z)
}

// Compare orders points lexicographically by (X, Y, Z). It returns -1, 0 or +1.
func Compare(a, b Point) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}

	return cmp.Compare(a.Z, b.Z)
}

// delta returns the per-axis differences a−b as float64.
func delta(a, b Point) (dx, dy, dz float64) {
	return float64(a.X) - float64(b.X), float64(a.Y) - float64(b.Y), float64(a.Z) - float64(b.Z)
}

// Euclidean returns the straight-line distance between a and b:
// sqrt(dx² + dy² + dz²).
// Complexity: O(1).
func Euclidean(a, b Point) float64 {
	return math.Sqrt(SquaredEuclidean(a, b))
}

// SquaredEuclidean returns dx² + dy² + dz². It orders pairs exactly like
// Euclidean but skips the square root.
// Complexity: O(1).
func SquaredEuclidean(a, b Point) float64 {
	dx, dy, dz := delta(a, b)

	return dx*dx + dy*dy + dz*dz
}

// Manhattan returns |dx| + |dy| + |dz|.
// Complexity: O(1).
func Manhattan(a, b Point) float64 {
	dx, dy, dz := delta(a, b)

	return math.Abs(dx) + math.Abs(dy) + math.Abs(dz)
}
