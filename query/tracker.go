package query

import (
	"fmt"

	"github.com/mjedwabn/circuits/circuit"
	"github.com/mjedwabn/circuits/spatial"
)

// tracker is the circuit state driven by the queries. Implementations are
// single-writer and not safe for concurrent use.
type tracker interface {
	// absorb processes one edge.
	absorb(a, b spatial.Point)
	// settle restores disjointness after absorb calls.
	settle()
	// fill turns every point not yet in a circuit into a singleton.
	fill()
	// count returns the number of circuits.
	count() int
	// sizes returns circuit sizes in descending order.
	sizes() []int
}

// newTracker returns the tracker selected by method. With seeded set, every
// point starts as its own circuit; otherwise circuits appear on first contact.
func newTracker(method string, points []spatial.Point, seeded bool) (tracker, error) {
	switch method {
	case MethodDisjointSet:
		return newSetTracker(points), nil
	case MethodPartition:
		t := &partitionTracker{points: points}
		if seeded {
			t.p = circuit.Singletons(points)
		}
		return t, nil
	default:
		return nil, fmt.Errorf("%q: %w", method, ErrUnknownMethod)
	}
}

// setTracker maps distinct points to DisjointSet ids by first occurrence.
// Every point is a circuit from the start, so fill is a no-op.
type setTracker struct {
	ids map[spatial.Point]int
	ds  *circuit.DisjointSet
}

func newSetTracker(points []spatial.Point) *setTracker {
	ids := make(map[spatial.Point]int, len(points))
	for _, p := range points {
		if _, ok := ids[p]; !ok {
			ids[p] = len(ids)
		}
	}

	return &setTracker{ids: ids, ds: circuit.NewDisjointSet(len(ids))}
}

func (t *setTracker) absorb(a, b spatial.Point) { t.ds.Union(t.ids[a], t.ids[b]) }
func (t *setTracker) settle()                   {}
func (t *setTracker) fill()                     {}
func (t *setTracker) count() int                { return t.ds.Count() }
func (t *setTracker) sizes() []int              { return t.ds.Sizes() }

// partitionTracker drives the set-of-sets Partition. Each step replaces p
// with the partition returned by the circuit package.
type partitionTracker struct {
	points []spatial.Point
	p      circuit.Partition
}

func (t *partitionTracker) absorb(a, b spatial.Point) { t.p = circuit.Absorb(t.p, a, b) }
func (t *partitionTracker) settle()                   { t.p = circuit.MergeUntilStable(t.p) }
func (t *partitionTracker) fill()                     { t.p = circuit.FillSingletons(t.p, t.points) }
func (t *partitionTracker) count() int                { return len(t.p) }
func (t *partitionTracker) sizes() []int              { return t.p.Sizes() }
