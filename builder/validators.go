package builder

import "math"

// validateEdgeCount ensures the edge total fits under maxEdges (0 = no cap).
// Complexity: O(1).
func validateEdgeCount(total, maxEdges int) error {
	if maxEdges > 0 && total > maxEdges {
		return builderErrorf(methodBuild, ErrTooManyEdges, "%d edges exceed cap %d", total, maxEdges)
	}

	return nil
}

// validateWeight rejects weights that cannot take part in an ascending order.
// Complexity: O(1).
func validateWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return ErrBadWeight
	}

	return nil
}
