// Package query defines configuration options and sentinel errors for the
// circuit queries. It supports selecting the tracker via Options.Method.
package query

import (
	"errors"

	"github.com/mjedwabn/circuits/builder"
	"github.com/mjedwabn/circuits/spatial"
)

// ErrDisconnected indicates the sorted edges were exhausted before every point
// joined a single circuit. It cannot happen for a complete graph and signals
// a broken edge sequence.
var ErrDisconnected = errors.New("query: edges exhausted before full connectivity")

// ErrUnknownMethod indicates Options.Method names no known tracker.
var ErrUnknownMethod = errors.New("query: unknown tracking method")

// MethodDisjointSet selects the union-find tracker.
const MethodDisjointSet = "disjoint-set"

// MethodPartition selects the Absorb + MergeUntilStable tracker.
const MethodPartition = "partition"

// DefaultTopK is the number of largest circuits multiplied by TopCircuitsProduct.
const DefaultTopK = 3

// Options configures the queries. Use DefaultOptions() for the defaults.
//
// Fields:
//
//	Method  — MethodDisjointSet or MethodPartition.
//	TopK    — how many of the largest circuits TopCircuitsProduct multiplies.
//	Workers — goroutines used by builder.Build for weights.
//	Metric  — pair weight; nil means builder's default (Euclidean).
type Options struct {
	Method  string
	TopK    int
	Workers int
	Metric  spatial.Metric
}

// Option configures Options.
type Option func(*Options)

// WithMethod selects the circuit tracker. Unknown names surface as
// ErrUnknownMethod when a query runs.
func WithMethod(m string) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// WithTopK sets how many circuits TopCircuitsProduct multiplies. Panics if k < 1.
func WithTopK(k int) Option {
	if k < 1 {
		panic("query: WithTopK(k<1)")
	}
	return func(o *Options) {
		o.TopK = k
	}
}

// WithWorkers forwards builder.WithWorkers. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("query: WithWorkers(n<1)")
	}
	return func(o *Options) {
		o.Workers = n
	}
}

// WithMetric forwards builder.WithMetric. Panics on nil.
func WithMetric(m spatial.Metric) Option {
	if m == nil {
		panic("query: WithMetric(nil)")
	}
	return func(o *Options) {
		o.Metric = m
	}
}

// DefaultOptions returns Options for the union-find tracker, top 3 circuits,
// one worker and Euclidean distance.
func DefaultOptions() Options {
	return Options{
		Method:  MethodDisjointSet,
		TopK:    DefaultTopK,
		Workers: 1,
	}
}

// resolve applies opts over DefaultOptions.
func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// builderOptions maps o onto builder.Build options.
func (o Options) builderOptions() []builder.BuilderOption {
	bopts := []builder.BuilderOption{builder.WithWorkers(o.Workers)}
	if o.Metric != nil {
		bopts = append(bopts, builder.WithMetric(o.Metric))
	}

	return bopts
}

// Report holds both answers for one point set, as produced by Solve.
type Report struct {
	Points        int           `json:"points"`
	Edges         int           `json:"edges"`
	EdgeLimit     int           `json:"edge_limit"`
	TopSizes      []int         `json:"top_sizes"`
	TopCircuits   int           `json:"top_circuits_product"`
	ThresholdEdge *builder.Edge `json:"threshold_edge,omitempty"`
	Threshold     int           `json:"threshold_product"`
}
