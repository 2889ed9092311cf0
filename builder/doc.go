// Package builder turns an ordered point set into the complete distance graph:
// every unordered pair of points exactly once, weighted by a spatial.Metric and
// sorted into a single deterministic ascending order.
//
// The package offers the following key components:
//
//   - Build(points, opts...): the only orchestrator. Generates N·(N−1)/2 edges,
//     computes weights (optionally across workers) and sorts them.
//   - Edge: the unordered pair {A, B} with input indices I < J, the generation
//     index Seq and the Weight.
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – WithMetric:     pair weight function (default spatial.Euclidean).
//     – WithWorkers:    number of goroutines computing weights (default 1).
//     – WithMaxEdges:   upper bound on the number of edges (default unlimited).
//   - Helpers: PairCount, PairIndex, Prefix.
//
// Ordering guarantee:
//
//	Edges are ordered by (Weight ascending, Seq ascending). Seq is the position of
//	the pair in lexicographic (I, J) generation order, so equal distances keep
//	the order in which the pairs were generated:
//
//	    (0,1) (0,2) … (0,N−1) (1,2) … (N−2,N−1)
//
//	The result is identical for every worker count.
//
// Errors:
//
//   - ErrTooManyEdges:  N·(N−1)/2 exceeds the WithMaxEdges cap.
//   - ErrBadWeight:     the metric produced NaN, ±Inf or a negative weight.
//   - ErrNegativeLimit: Prefix was asked for a negative number of edges.
//
// Complexity: O(N²) weight evaluations, O(N² log N) for the sort, O(N²) memory.
package builder
