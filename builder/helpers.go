package builder

// PairCount returns the number of unordered pairs over n points: n·(n−1)/2.
// Returns 0 for n < 2.
func PairCount(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}

// PairIndex returns the generation index of the pair {i, j}, i < j < n, in the
// lexicographic order (0,1) (0,2) … (0,n−1) (1,2) … (n−2,n−1).
// Rows 0..i−1 contribute (n−1) + (n−2) + … + (n−i) = i·(2n−i−1)/2 slots.
// Complexity: O(1).
func PairIndex(i, j, n int) int {
	return i*(2*n-i-1)/2 + (j - i - 1)
}

// Prefix returns the first limit edges, clamped to len(edges).
// The returned slice aliases edges.
func Prefix(edges []Edge, limit int) ([]Edge, error) {
	if limit < 0 {
		return nil, builderErrorf("Prefix", ErrNegativeLimit, "limit=%d", limit)
	}
	if limit > len(edges) {
		limit = len(edges)
	}

	return edges[:limit], nil
}
