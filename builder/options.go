// SPDX-License-Identifier: MIT
// Package: circuits/builder
//
// options.go — functional options for Build.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs; Build
//     itself returns sentinel errors only.
//   • Later options override earlier ones.

package builder

import "github.com/mjedwabn/circuits/spatial"

// BuilderOption customizes Build by mutating a builderConfig before the edges
// are generated.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithMetric sets the pair weight function. Panics on nil.
func WithMetric(m spatial.Metric) BuilderOption {
	if m == nil {
		panic("builder: WithMetric(nil)")
	}
	return func(c *builderConfig) {
		c.metric = m
	}
}

// WithWorkers sets how many goroutines compute weights. The output order does
// not depend on this value. Panics if n < 1.
func WithWorkers(n int) BuilderOption {
	if n < 1 {
		panic("builder: WithWorkers(n<1)")
	}
	return func(c *builderConfig) {
		c.workers = n
	}
}

// WithMaxEdges caps the number of generated edges; 0 removes the cap.
// Panics if n < 0.
func WithMaxEdges(n int) BuilderOption {
	if n < 0 {
		panic("builder: WithMaxEdges(n<0)")
	}
	return func(c *builderConfig) {
		c.maxEdges = n
	}
}
