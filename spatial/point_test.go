package spatial_test

import (
	"math"
	"testing"

	"github.com/mjedwabn/circuits/spatial"
	"github.com/stretchr/testify/assert"
)

// TestMetrics checks each metric on a 3-4-12 box (Euclidean length 13).
func TestMetrics(t *testing.T) {
	a := spatial.Point{X: 1, Y: 2, Z: 3}
	b := spatial.Point{X: 4, Y: 6, Z: 15}

	assert.Equal(t, 13.0, spatial.Euclidean(a, b))
	assert.Equal(t, 169.0, spatial.SquaredEuclidean(a, b))
	assert.Equal(t, 19.0, spatial.Manhattan(a, b))

	// Symmetry.
	assert.Equal(t, spatial.Euclidean(a, b), spatial.Euclidean(b, a))
	assert.Equal(t, spatial.Manhattan(a, b), spatial.Manhattan(b, a))
}

// TestMetrics_Coincident verifies that coincident points weigh zero.
func TestMetrics_Coincident(t *testing.T) {
	p := spatial.Point{X: -7, Y: 0, Z: 9}

	for name, m := range map[string]spatial.Metric{
		"euclidean": spatial.Euclidean,
		"squared":   spatial.SquaredEuclidean,
		"manhattan": spatial.Manhattan,
	} {
		assert.Zero(t, m(p, p), name)
	}
}

// TestMetrics_LargeCoordinates makes sure squared sums do not overflow.
func TestMetrics_LargeCoordinates(t *testing.T) {
	a := spatial.Point{X: math.MinInt32, Y: 0, Z: 0}
	b := spatial.Point{X: math.MaxInt32, Y: 0, Z: 0}

	d := spatial.Euclidean(a, b)
	assert.InDelta(t, float64(math.MaxInt32)-float64(math.MinInt32), d, 1e-6)
	assert.False(t, math.IsInf(spatial.SquaredEuclidean(a, b), 0))
}

func TestPoint_String(t *testing.T) {
	assert.Equal(t, "162,-817,0", spatial.Point{X: 162, Y: -817, Z: 0}.String())
}

// TestPoint_MapKey verifies value identity: equal coordinates, same key.
func TestPoint_MapKey(t *testing.T) {
	seen := map[spatial.Point]int{}
	seen[spatial.Point{X: 1, Y: 2, Z: 3}]++
	seen[spatial.Point{X: 1, Y: 2, Z: 3}]++

	assert.Len(t, seen, 1)
	assert.Equal(t, 2, seen[spatial.Point{X: 1, Y: 2, Z: 3}])
}

func TestCompare(t *testing.T) {
	a := spatial.Point{X: 1, Y: 2, Z: 3}

	assert.Equal(t, 0, spatial.Compare(a, a))
	assert.Equal(t, -1, spatial.Compare(a, spatial.Point{X: 2}))
	assert.Equal(t, 1, spatial.Compare(a, spatial.Point{X: 1, Y: 1, Z: 9}))
	assert.Equal(t, -1, spatial.Compare(a, spatial.Point{X: 1, Y: 2, Z: 4}))
}

// TestMetrics_FullIntRange uses coordinates whose int difference would wrap.
func TestMetrics_FullIntRange(t *testing.T) {
	a := spatial.Point{X: math.MinInt, Y: math.MaxInt, Z: 0}
	b := spatial.Point{X: math.MaxInt, Y: math.MinInt, Z: 0}

	span := float64(math.MaxInt) - float64(math.MinInt)
	assert.Equal(t, 2*span, spatial.Manhattan(a, b))
	assert.InEpsilon(t, span*math.Sqrt2, spatial.Euclidean(a, b), 1e-12)
	assert.Equal(t, spatial.Euclidean(a, b), spatial.Euclidean(b, a))
}
