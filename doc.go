// Package circuits connects 3-D junction points into circuits by processing
// the pairwise distances in ascending order.
//
// What is in the module?
//
//	spatial/  — Point, distance metrics, the "x,y,z" point loader
//	builder/  — complete distance graph with a deterministic total order
//	circuit/  — circuit trackers: Partition (set of sets) and DisjointSet
//	query/    — TopCircuitsProduct, ConnectivityThresholdProduct, Solve
//	cmd/      — the circuits command line driver
//
// Data flows one way: spatial → builder → circuit → query → caller.
//
// Quick example:
//
//	points, _ := spatial.Load("points.txt")
//	top, _ := query.TopCircuitsProduct(points, 1000)
//	last, _ := query.ConnectivityThresholdProduct(points)
//
//	go install github.com/mjedwabn/circuits/cmd/circuits@latest
package circuits
