// Package circuit maintains the partition of points into circuits (connected
// groups) while edges are processed in ascending order.
//
// Two interchangeable trackers are provided:
//
//   - Partition — the explicit set-of-sets model. Absorb folds one edge into a
//     partition and MergeUntilStable repeats pairwise merge passes until no two
//     circuits overlap. Both return a new Partition and never mutate their
//     argument, so intermediate states can be kept, compared or replayed.
//
//   - DisjointSet — an arena of parent pointers indexed by point id, with union
//     by size and path compression. Same final components as Partition at a
//     near-constant amortized cost per edge.
//
// Invariants (after MergeUntilStable, and at all times for DisjointSet):
//
//   - Circuits are pairwise disjoint.
//   - Their union is exactly the set of points seen in processed edges, plus
//     any seeded singletons.
//   - Circuits are only created (first contact or seeding), grown, or folded
//     into another circuit; they are never deleted on their own.
//
// Complexity:
//
//   - Absorb:            O(C) circuit lookups + O(|circuit|) copy-on-write.
//   - MergeUntilStable:  O(P·C²·S) for P passes over C circuits of size ≤ S.
//   - DisjointSet.Union: O(α(n)) amortized.
package circuit
