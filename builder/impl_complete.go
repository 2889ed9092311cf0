// SPDX-License-Identifier: MIT
// Package: circuits/builder
//
// impl_complete.go — emission of the complete distance graph K_n.
//
// Contract:
//   • Emits each unordered pair {i,j} with i<j exactly once.
//   • Edge {i,j} is written to slot PairIndex(i,j,n); Seq equals that slot.
//   • Rows i are dealt round-robin to cfg.workers goroutines. Each slot has a
//     single writer, so no locking is needed and the pre-sort slice is the
//     same for every worker count.
//
// Complexity:
//   • Time: O(n²) metric evaluations, spread over the workers.
//   • Space: O(n²) for the edge slice.

package builder

import (
	"github.com/mjedwabn/circuits/spatial"
	"golang.org/x/sync/errgroup"
)

// complete returns all pairs of points in generation order with weights.
func complete(points []spatial.Point, cfg builderConfig) ([]Edge, error) {
	n := len(points)
	edges := make([]Edge, PairCount(n))
	if len(edges) == 0 {
		return edges, nil
	}

	// More workers than rows only adds idle goroutines.
	workers := cfg.workers
	if rows := n - 1; workers > rows {
		workers = rows
	}

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := w; i < n-1; i += workers {
				if err := emitRow(edges, points, i, cfg.metric); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return edges, nil
}

// emitRow writes the edges {i, j} for all j > i into their generation slots.
func emitRow(edges []Edge, points []spatial.Point, i int, metric spatial.Metric) error {
	n := len(points)
	a := points[i]
	slot := PairIndex(i, i+1, n)
	for j := i + 1; j < n; j++ {
		b := points[j]
		w := metric(a, b)
		if err := validateWeight(w); err != nil {
			return builderErrorf(methodBuild, err, "pair (%d,%d) %s—%s weight %g", i, j, a, b, w)
		}
		edges[slot] = Edge{A: a, B: b, I: i, J: j, Seq: slot, Weight: w}
		slot++
	}

	return nil
}
