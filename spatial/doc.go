// Package spatial defines the 3-D integer Point used across circuits, the
// distance metrics that weight point pairs, and the Point Set Loader that turns
// text records into an ordered []Point.
//
// What:
//
//   - Point is a comparable value type (X, Y, Z int); it is safe as a map key.
//   - Euclidean, SquaredEuclidean and Manhattan are pure Metric functions.
//   - Parse reads one "x,y,z" record per line; Load does the same for a file.
//
// Input format:
//
//	162,817,812
//	57,618,57
//	906,360,560
//
// Blank lines are skipped and blanks around fields are tolerated. Input order is
// preserved because downstream tie-breaking depends on it.
//
// Errors:
//
//   - ErrMalformedRecord: wrong field count or a non-integer field. The error is
//     wrapped with the 1-based line number; no partial slice is returned.
package spatial
