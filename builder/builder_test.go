package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/mjedwabn/circuits/builder"
	"github.com/mjedwabn/circuits/spatial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomPoints returns n points in a small cube so that equal distances occur.
func randomPoints(n int, seed int64) []spatial.Point {
	r := rand.New(rand.NewSource(seed))
	points := make([]spatial.Point, n)
	for i := range points {
		points[i] = spatial.Point{X: r.Intn(6), Y: r.Intn(6), Z: r.Intn(6)}
	}

	return points
}

// TestBuild_CompleteAndSorted checks the edge count, pair uniqueness and the
// non-decreasing weight order.
func TestBuild_CompleteAndSorted(t *testing.T) {
	for _, n := range []int{2, 3, 7, 40} {
		points := randomPoints(n, int64(n))

		edges, err := builder.Build(points)
		require.NoError(t, err)
		require.Len(t, edges, n*(n-1)/2)

		seen := make(map[[2]int]bool, len(edges))
		for k, e := range edges {
			require.Less(t, e.I, e.J)
			pair := [2]int{e.I, e.J}
			assert.False(t, seen[pair], "pair %v emitted twice", pair)
			seen[pair] = true

			assert.Equal(t, points[e.I], e.A)
			assert.Equal(t, points[e.J], e.B)
			assert.Equal(t, builder.PairIndex(e.I, e.J, n), e.Seq)
			if k > 0 {
				prev := edges[k-1]
				assert.LessOrEqual(t, prev.Weight, e.Weight)
				if prev.Weight == e.Weight {
					assert.Less(t, prev.Seq, e.Seq, "ties must keep generation order")
				}
			}
		}
	}
}

// TestBuild_TieBreak uses three collinear points at unit spacing:
// d(p0,p1) = d(p1,p2) = 1, d(p0,p2) = 2.
func TestBuild_TieBreak(t *testing.T) {
	points := []spatial.Point{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 1}, {X: 0, Y: 0, Z: 2}}

	edges, err := builder.Build(points)
	require.NoError(t, err)
	require.Len(t, edges, 3)

	assert.Equal(t, [2]int{0, 1}, [2]int{edges[0].I, edges[0].J})
	assert.Equal(t, [2]int{1, 2}, [2]int{edges[1].I, edges[1].J})
	assert.Equal(t, [2]int{0, 2}, [2]int{edges[2].I, edges[2].J})
	assert.Equal(t, []float64{1, 1, 2}, []float64{edges[0].Weight, edges[1].Weight, edges[2].Weight})
}

// TestBuild_Coincident verifies that duplicate points give a zero weight that
// sorts first.
func TestBuild_Coincident(t *testing.T) {
	points := []spatial.Point{{X: 5, Y: 5, Z: 5}, {X: 9, Y: 9, Z: 9}, {X: 5, Y: 5, Z: 5}}

	edges, err := builder.Build(points)
	require.NoError(t, err)
	require.Len(t, edges, 3)
	assert.Zero(t, edges[0].Weight)
	assert.Equal(t, 0, edges[0].I)
	assert.Equal(t, 2, edges[0].J)
}

func TestBuild_Degenerate(t *testing.T) {
	for _, points := range [][]spatial.Point{nil, {}, {{X: 1, Y: 2, Z: 3}}} {
		edges, err := builder.Build(points)
		require.NoError(t, err)
		assert.NotNil(t, edges)
		assert.Empty(t, edges)
	}
}

// TestBuild_WorkersDeterministic ensures the worker count is not observable.
func TestBuild_WorkersDeterministic(t *testing.T) {
	points := randomPoints(60, 7)

	want, err := builder.Build(points)
	require.NoError(t, err)

	for _, w := range []int{2, 3, 8, 100} {
		got, err := builder.Build(points, builder.WithWorkers(w))
		require.NoError(t, err)
		assert.Equal(t, want, got, "workers=%d", w)
	}
}

func TestBuild_Metric(t *testing.T) {
	points := []spatial.Point{{X: 0, Y: 0, Z: 0}, {X: 3, Y: 4, Z: 0}}

	edges, err := builder.Build(points, builder.WithMetric(spatial.Manhattan))
	require.NoError(t, err)
	assert.Equal(t, 7.0, edges[0].Weight)

	edges, err = builder.Build(points, builder.WithMetric(spatial.SquaredEuclidean))
	require.NoError(t, err)
	assert.Equal(t, 25.0, edges[0].Weight)
}

func TestBuild_BadWeight(t *testing.T) {
	points := []spatial.Point{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}}

	for name, w := range map[string]float64{
		"nan":      math.NaN(),
		"inf":      math.Inf(1),
		"negative": -1,
	} {
		bad := func(a, b spatial.Point) float64 { return w }
		edges, err := builder.Build(points, builder.WithMetric(bad), builder.WithWorkers(2))
		assert.Nil(t, edges, name)
		assert.ErrorIs(t, err, builder.ErrBadWeight, name)
	}
}

func TestBuild_MaxEdges(t *testing.T) {
	points := randomPoints(5, 1) // 10 edges

	_, err := builder.Build(points, builder.WithMaxEdges(9))
	assert.ErrorIs(t, err, builder.ErrTooManyEdges)

	edges, err := builder.Build(points, builder.WithMaxEdges(10))
	require.NoError(t, err)
	assert.Len(t, edges, 10)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithMetric(nil) })
	assert.Panics(t, func() { builder.WithWorkers(0) })
	assert.Panics(t, func() { builder.WithMaxEdges(-1) })
}

func TestPairCountAndIndex(t *testing.T) {
	assert.Equal(t, 0, builder.PairCount(0))
	assert.Equal(t, 0, builder.PairCount(1))
	assert.Equal(t, 1, builder.PairCount(2))
	assert.Equal(t, 190, builder.PairCount(20))

	// Walking pairs in generation order must enumerate 0..PairCount(n)-1.
	const n = 9
	want := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			assert.Equal(t, want, builder.PairIndex(i, j, n))
			want++
		}
	}
}

func TestPrefix(t *testing.T) {
	edges, err := builder.Build(randomPoints(4, 3)) // 6 edges
	require.NoError(t, err)

	p, err := builder.Prefix(edges, 2)
	require.NoError(t, err)
	assert.Equal(t, edges[:2], p)

	p, err = builder.Prefix(edges, 1000)
	require.NoError(t, err)
	assert.Len(t, p, 6)

	p, err = builder.Prefix(edges, 0)
	require.NoError(t, err)
	assert.Empty(t, p)

	_, err = builder.Prefix(edges, -1)
	assert.ErrorIs(t, err, builder.ErrNegativeLimit)
}
