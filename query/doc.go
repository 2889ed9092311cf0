// Package query answers the two circuit questions over a point set.
//
// What:
//
//   - TopCircuitsProduct(points, edgeLimit): process only the first edgeLimit
//     edges (ascending distance), then multiply the sizes of the K largest
//     circuits (K = 3 by default). Points never touched count as singletons;
//     missing slots multiply by 1, so an empty input yields 1.
//
//   - ConnectivityThresholdProduct(points): process all edges in ascending
//     order and stop at the first one that leaves a single circuit; return the
//     product of its endpoints' X coordinates. This edge is the bottleneck
//     (heaviest) edge of a minimum spanning tree. With fewer than two points no
//     edge exists and the result is 1.
//
//   - ThresholdEdge exposes that triggering edge; Solve answers both questions
//     from a single edge build.
//
// Methods (see WithMethod):
//
//   - MethodDisjointSet (default): arena union-find, O(α(n)) per edge.
//   - MethodPartition: the explicit Absorb + MergeUntilStable set-of-sets model.
//     Same answers, much slower; kept as a reference and for cross-checks.
//
// Errors:
//
//   - ErrDisconnected:  all edges consumed without reaching one circuit.
//   - ErrUnknownMethod: WithMethod named no known tracker.
//   - builder.ErrNegativeLimit, builder.ErrTooManyEdges, builder.ErrBadWeight
//     are passed through, wrapped with the query name.
package query
