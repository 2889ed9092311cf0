package builder_test

import (
	"fmt"

	"github.com/mjedwabn/circuits/builder"
	"github.com/mjedwabn/circuits/spatial"
)

// ExampleBuild sorts the three pairs of a small point set by distance.
func ExampleBuild() {
	points := []spatial.Point{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 1}, {X: 0, Y: 0, Z: 5}}

	edges, err := builder.Build(points)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range edges {
		fmt.Printf("(%d,%d) %g\n", e.I, e.J, e.Weight)
	}
	// Output:
	// (0,1) 1
	// (1,2) 4
	// (0,2) 5
}
