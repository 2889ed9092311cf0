// SPDX-License-Identifier: MIT
// Package: circuits/builder
//
// api.go — public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: Build(points, opts...). Resolves cfg, emits the complete
//     graph, sorts it.
//   - Determinism: same points and metric ⇒ identical edge slice, for any
//     worker count.
//   - Safety: never panics; returns sentinel errors wrapped with "Build: ...".

package builder

import (
	"sort"

	"github.com/mjedwabn/circuits/spatial"
)

const methodBuild = "Build"

// Build generates every unordered pair of points once, weights it with the
// configured metric and returns the edges sorted by (Weight, Seq) ascending.
//
// Steps:
//  1. Resolve options; check PairCount(len(points)) against the edge cap.
//  2. Emit pairs into their generation slots (see complete), possibly in parallel.
//  3. Sort by weight; equal weights keep generation order.
//
// Fewer than two points yield an empty, non-nil slice.
//
// Complexity: O(N² log N) time, O(N²) memory.
func Build(points []spatial.Point, opts ...BuilderOption) ([]Edge, error) {
	cfg := newBuilderConfig(opts...)

	// 1. Size validation before any allocation.
	total := PairCount(len(points))
	if err := validateEdgeCount(total, cfg.maxEdges); err != nil {
		return nil, err
	}

	// 2. Generation order, weights computed per row.
	edges, err := complete(points, cfg)
	if err != nil {
		return nil, err
	}

	// 3. Total order: weight, then generation index.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].less(edges[j])
	})

	return edges, nil
}
