// SPDX-License-Identifier: MIT
// Package: circuits/circuit
//
// disjoint_set.go — arena union-find over point ids 0..n−1.
//
// Contract:
//   • parent[i] == i marks a root; size[root] is the circuit size.
//   • Find compresses paths by halving; Union attaches the smaller tree under
//     the larger one (ties: the lower root id stays root).
//   • Ids outside 0..n−1 panic like out-of-range slice indexing.

package circuit

import "slices"

// DisjointSet partitions the ids 0..n−1 into circuits.
type DisjointSet struct {
	parent []int
	size   []int
	count  int
}

// NewDisjointSet returns n singleton circuits.
// Complexity: O(n).
func NewDisjointSet(n int) *DisjointSet {
	ds := &DisjointSet{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range ds.parent {
		ds.parent[i] = i
		ds.size[i] = 1
	}

	return ds
}

// Len returns the number of ids in the arena.
func (ds *DisjointSet) Len() int { return len(ds.parent) }

// Find returns the root id of the circuit containing i.
// Complexity: O(α(n)) amortized.
func (ds *DisjointSet) Find(i int) int {
	for ds.parent[i] != i {
		// Path halving: point i at its grandparent.
		ds.parent[i] = ds.parent[ds.parent[i]]
		i = ds.parent[i]
	}

	return i
}

// Union merges the circuits of i and j. It reports whether they were separate.
// Complexity: O(α(n)) amortized.
func (ds *DisjointSet) Union(i, j int) bool {
	ri, rj := ds.Find(i), ds.Find(j)
	if ri == rj {
		return false
	}
	if ds.size[ri] < ds.size[rj] || (ds.size[ri] == ds.size[rj] && rj < ri) {
		ri, rj = rj, ri
	}
	ds.parent[rj] = ri
	ds.size[ri] += ds.size[rj]
	ds.count--

	return true
}

// Connected reports whether i and j share a circuit.
func (ds *DisjointSet) Connected(i, j int) bool {
	return ds.Find(i) == ds.Find(j)
}

// Size returns the size of the circuit containing i.
func (ds *DisjointSet) Size(i int) int {
	return ds.size[ds.Find(i)]
}

// Count returns the number of circuits.
func (ds *DisjointSet) Count() int { return ds.count }

// Sizes returns all circuit sizes in descending order.
// Complexity: O(n log n).
func (ds *DisjointSet) Sizes() []int {
	sizes := make([]int, 0, ds.count)
	for i, p := range ds.parent {
		if p == i {
			sizes = append(sizes, ds.size[i])
		}
	}
	slices.SortFunc(sizes, func(a, b int) int { return b - a })

	return sizes
}

// Components returns the members of every circuit. Members are ascending and
// circuits are ordered by their smallest member.
// Complexity: O(n·α(n)).
func (ds *DisjointSet) Components() [][]int {
	index := make(map[int]int, ds.count) // root -> position in out
	out := make([][]int, 0, ds.count)
	for i := range ds.parent {
		r := ds.Find(i)
		k, ok := index[r]
		if !ok {
			k = len(out)
			index[r] = k
			out = append(out, nil)
		}
		out[k] = append(out[k], i)
	}

	return out
}
