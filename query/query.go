// SPDX-License-Identifier: MIT
// Package: circuits/query
//
// query.go — the two circuit queries and Solve.
//
// Determinism: both queries consume builder.Build's (Weight, Seq) order, so
// the answer depends only on the points, their input order and the metric.

package query

import (
	"fmt"
	"slices"

	"github.com/mjedwabn/circuits/builder"
	"github.com/mjedwabn/circuits/spatial"
)

const (
	methodTop       = "TopCircuitsProduct"
	methodThreshold = "ConnectivityThresholdProduct"
	methodSolve     = "Solve"
)

// TopCircuitsProduct multiplies the sizes of the TopK largest circuits formed
// by the first edgeLimit edges.
//
// Steps:
//  1. Build and sort all edges; keep the first edgeLimit (clamped).
//  2. Absorb the prefix into an empty tracker, then settle it.
//  3. Every point outside a circuit becomes a singleton.
//  4. Multiply the TopK largest sizes; missing slots count as 1.
//
// Errors: builder.ErrNegativeLimit for edgeLimit < 0, ErrUnknownMethod, and
// builder errors for the configured metric.
//
// Complexity: O(N² log N) for the build, O(edgeLimit·α(N)) for the union-find.
func TopCircuitsProduct(points []spatial.Point, edgeLimit int, opts ...Option) (int, error) {
	o := resolve(opts)

	edges, err := builder.Build(points, o.builderOptions()...)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodTop, err)
	}
	sizes, err := topSizes(points, edges, edgeLimit, o)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodTop, err)
	}

	return product(sizes), nil
}

// ConnectivityThresholdProduct returns x(A)·x(B) for the first edge, in
// ascending order, after which all points form one circuit. Fewer than two
// points have no such edge; the result is then 1.
//
// Errors: ErrDisconnected if the edges run out first, ErrUnknownMethod, and
// builder errors for the configured metric.
//
// Complexity: O(N² log N) for the build, O(N²·α(N)) worst case for the scan.
func ConnectivityThresholdProduct(points []spatial.Point, opts ...Option) (int, error) {
	e, ok, err := ThresholdEdge(points, opts...)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 1, nil
	}

	return e.A.X * e.B.X, nil
}

// ThresholdEdge returns the edge whose processing first leaves a single
// circuit. ok is false, with a nil error, when fewer than two points exist.
func ThresholdEdge(points []spatial.Point, opts ...Option) (e builder.Edge, ok bool, err error) {
	o := resolve(opts)

	edges, err := builder.Build(points, o.builderOptions()...)
	if err != nil {
		return builder.Edge{}, false, fmt.Errorf("%s: %w", methodThreshold, err)
	}
	e, ok, err = thresholdEdge(points, edges, o)
	if err != nil {
		return builder.Edge{}, false, fmt.Errorf("%s: %w", methodThreshold, err)
	}

	return e, ok, nil
}

// Solve answers both queries from one edge build.
func Solve(points []spatial.Point, edgeLimit int, opts ...Option) (Report, error) {
	o := resolve(opts)

	edges, err := builder.Build(points, o.builderOptions()...)
	if err != nil {
		return Report{}, fmt.Errorf("%s: %w", methodSolve, err)
	}

	sizes, err := topSizes(points, edges, edgeLimit, o)
	if err != nil {
		return Report{}, fmt.Errorf("%s: %w", methodSolve, err)
	}
	rep := Report{
		Points:      len(points),
		Edges:       len(edges),
		EdgeLimit:   min(edgeLimit, len(edges)),
		TopSizes:    sizes,
		TopCircuits: product(sizes),
		Threshold:   1,
	}

	e, ok, err := thresholdEdge(points, edges, o)
	if err != nil {
		return Report{}, fmt.Errorf("%s: %w", methodSolve, err)
	}
	if ok {
		rep.ThresholdEdge = &e
		rep.Threshold = e.A.X * e.B.X
	}

	return rep, nil
}

// topSizes returns the o.TopK largest circuit sizes after the first
// edgeLimit edges, largest first. Fewer circuits yield a shorter slice.
func topSizes(points []spatial.Point, edges []builder.Edge, edgeLimit int, o Options) ([]int, error) {
	prefix, err := builder.Prefix(edges, edgeLimit)
	if err != nil {
		return nil, err
	}
	t, err := newTracker(o.Method, points, false)
	if err != nil {
		return nil, err
	}

	for _, e := range prefix {
		t.absorb(e.A, e.B)
	}
	t.settle()
	t.fill()

	sizes := t.sizes()
	if len(sizes) > o.TopK {
		sizes = sizes[:o.TopK]
	}

	return slices.Clip(sizes), nil
}

// thresholdEdge scans edges in order over a seeded tracker and returns the
// first edge after which one circuit remains.
func thresholdEdge(points []spatial.Point, edges []builder.Edge, o Options) (builder.Edge, bool, error) {
	t, err := newTracker(o.Method, points, true)
	if err != nil {
		return builder.Edge{}, false, err
	}
	if len(edges) == 0 {
		return builder.Edge{}, false, nil
	}

	for _, e := range edges {
		t.absorb(e.A, e.B)
		t.settle()
		if t.count() == 1 {
			return e, true, nil
		}
	}

	return builder.Edge{}, false, fmt.Errorf("%d edges, %d circuits left: %w", len(edges), t.count(), ErrDisconnected)
}

// product multiplies sizes; the empty product is 1.
func product(sizes []int) int {
	p := 1
	for _, s := range sizes {
		p *= s
	}

	return p
}
