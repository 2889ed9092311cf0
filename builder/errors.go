// SPDX-License-Identifier: MIT
// Package: circuits/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Context is attached with %w at the failure site, prefixed by the method.
//   • Build never panics at runtime; validation panics are confined to the
//     WithX option constructors.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooManyEdges indicates that the complete graph over the input would hold
// more edges than the WithMaxEdges cap allows.
var ErrTooManyEdges = errors.New("builder: too many edges")

// ErrBadWeight indicates that the metric returned NaN, an infinity or a
// negative value, none of which can be ordered meaningfully.
var ErrBadWeight = errors.New("builder: invalid edge weight")

// ErrNegativeLimit indicates a negative edge count was passed to Prefix.
var ErrNegativeLimit = errors.New("builder: negative edge limit")

// builderErrorf wraps err with the method context: "<method>: <msg>: <err>".
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
