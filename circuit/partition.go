// SPDX-License-Identifier: MIT
// Package: circuits/circuit
//
// partition.go — the set-of-sets tracker: Absorb + MergeUntilStable.
//
// Contract:
//   • Every operation returns a new Partition; the argument and its circuits
//     are never modified (copy-on-write of the touched circuits only).
//   • Circuit order is creation order; merges keep the earlier circuit's slot.

package circuit

import (
	"slices"

	"github.com/mjedwabn/circuits/spatial"
)

// Partition is an ordered list of circuits.
type Partition []Circuit

// Singletons seeds one circuit per distinct point, in first-occurrence order.
// Complexity: O(N).
func Singletons(points []spatial.Point) Partition {
	seen := make(map[spatial.Point]struct{}, len(points))
	out := make(Partition, 0, len(points))
	for _, p := range points {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, NewCircuit(p))
	}

	return out
}

// Absorb folds the edge {a, b} into p and returns the resulting partition.
//
// Cases, where a circuit is looked up by list order:
//  1. Neither a nor b is covered: a new circuit {a, b} is appended.
//  2. Exactly one is covered: the other point joins that circuit.
//  3. Both lie in the same circuit: the partition is unchanged.
//  4. They lie in different circuits: the later circuit is folded into the
//     earlier one, so the result never holds a point in two circuits.
//
// Complexity: O(C) lookups plus the copy of the touched circuit(s).
func Absorb(p Partition, a, b spatial.Point) Partition {
	ia, ib := p.indexOf(a), p.indexOf(b)
	out := slices.Clone(p)

	switch {
	case ia < 0 && ib < 0:
		out = append(out, NewCircuit(a, b))
	case ib < 0:
		out[ia] = out[ia].with(b)
	case ia < 0:
		out[ib] = out[ib].with(a)
	case ia == ib:
		// Already connected.
	default:
		keep, drop := min(ia, ib), max(ia, ib)
		out[keep] = out[keep].union(out[drop])
		out = slices.Delete(out, drop, drop+1)
	}

	return out
}

// MergeUntilStable repeatedly scans circuit pairs (i < j) and folds j into i
// whenever they share a point, until a full pass makes no change. Each fold
// removes one circuit, so at most len(p)−1 folds happen. Idempotent.
//
// Complexity: O(P·C²·S) for P passes over C circuits of size ≤ S.
func MergeUntilStable(p Partition) Partition {
	out := slices.Clone(p)

	for changed := true; changed; {
		changed = false
		for i := 0; i < len(out); i++ {
			for j := i + 1; j < len(out); {
				if !out[i].overlaps(out[j]) {
					j++
					continue
				}
				out[i] = out[i].union(out[j])
				out = slices.Delete(out, j, j+1)
				changed = true
			}
		}
	}

	return out
}

// FillSingletons returns p extended with a singleton circuit for every point
// not covered by p, in input order. Duplicate points are added once.
func FillSingletons(p Partition, points []spatial.Point) Partition {
	out := slices.Clone(p)
	added := make(map[spatial.Point]struct{})
	for _, pt := range points {
		if _, ok := added[pt]; ok || p.Covers(pt) {
			continue
		}
		added[pt] = struct{}{}
		out = append(out, NewCircuit(pt))
	}

	return out
}

// Covers reports whether any circuit of p contains pt.
func (p Partition) Covers(pt spatial.Point) bool {
	return p.indexOf(pt) >= 0
}

// Sizes returns the circuit sizes in descending order.
func (p Partition) Sizes() []int {
	sizes := make([]int, len(p))
	for i, c := range p {
		sizes[i] = c.Size()
	}
	slices.SortFunc(sizes, func(a, b int) int { return b - a })

	return sizes
}

// Disjoint reports whether no point belongs to two circuits of p.
func (p Partition) Disjoint() bool {
	seen := make(map[spatial.Point]struct{})
	for _, c := range p {
		for pt := range c {
			if _, dup := seen[pt]; dup {
				return false
			}
			seen[pt] = struct{}{}
		}
	}

	return true
}

// indexOf returns the index of the first circuit containing pt, or -1.
func (p Partition) indexOf(pt spatial.Point) int {
	for i, c := range p {
		if c.Contains(pt) {
			return i
		}
	}

	return -1
}
