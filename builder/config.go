// SPDX-License-Identifier: MIT
// Package: circuits/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • metric   = spatial.Euclidean
//   • workers  = 1
//   • maxEdges = 0 (unlimited)

package builder

import "github.com/mjedwabn/circuits/spatial"

// builderConfig aggregates all knobs used by Build. Passed by value.
type builderConfig struct {
	metric   spatial.Metric
	workers  int
	maxEdges int
}

const (
	defaultWorkers  = 1 // sequential weight computation
	defaultMaxEdges = 0 // no cap
)

// newBuilderConfig returns the defaults with opts applied in order.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		metric:   spatial.Euclidean,
		workers:  defaultWorkers,
		maxEdges: defaultMaxEdges,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
