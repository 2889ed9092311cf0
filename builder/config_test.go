// Package builder contains unit tests for builderConfig and BuilderOption to
// ensure defaults and override order.
package builder

import (
	"testing"

	"github.com/mjedwabn/circuits/spatial"
	"github.com/stretchr/testify/assert"
)

func TestNewBuilderConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Equal(t, defaultWorkers, cfg.workers)
	assert.Equal(t, defaultMaxEdges, cfg.maxEdges)
	assert.Equal(t, 5.0, cfg.metric(spatial.Point{}, spatial.Point{X: 3, Y: 4}))
}

// TestNewBuilderConfig_LastWins verifies later options override earlier ones.
func TestNewBuilderConfig_LastWins(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(
		WithWorkers(4), WithWorkers(2),
		WithMetric(spatial.Euclidean), WithMetric(spatial.Manhattan),
		WithMaxEdges(10),
	)
	assert.Equal(t, 2, cfg.workers)
	assert.Equal(t, 10, cfg.maxEdges)
	assert.Equal(t, 7.0, cfg.metric(spatial.Point{}, spatial.Point{X: 3, Y: 4}))
}

func TestEdgeLess(t *testing.T) {
	t.Parallel()

	a := Edge{Weight: 1, Seq: 5}
	b := Edge{Weight: 1, Seq: 6}
	c := Edge{Weight: 0.5, Seq: 9}

	assert.True(t, a.less(b))
	assert.False(t, b.less(a))
	assert.True(t, c.less(a))
	assert.False(t, a.less(a))
}
