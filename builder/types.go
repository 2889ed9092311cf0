package builder

import (
	"fmt"

	"github.com/mjedwabn/circuits/spatial"
)

// Edge is an unordered pair of distinct input positions with its weight.
//
// Fields:
//
//	A, B   — the endpoint points, A taken from input index I, B from J.
//	I, J   — input indices with I < J.
//	Seq    — generation index of {I, J} in lexicographic order (see PairIndex).
//	Weight — metric(A, B); 0 for coincident points.
type Edge struct {
	A      spatial.Point `json:"a"`
	B      spatial.Point `json:"b"`
	I      int           `json:"i"`
	J      int           `json:"j"`
	Seq    int           `json:"seq"`
	Weight float64       `json:"weight"`
}

// String renders the edge as "a—b (w)".
func (e Edge) String() string {
	return fmt.Sprintf("%s—%s (%g)", e.A, e.B, e.Weight)
}

// less reports whether e sorts strictly before o under the builder's total order.
func (e Edge) less(o Edge) bool {
	if e.Weight != o.Weight {
		return e.Weight < o.Weight
	}

	return e.Seq < o.Seq
}
