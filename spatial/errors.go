package spatial

import "errors"

// ErrMalformedRecord indicates that an input line is not three comma-separated
// integers. It is always wrapped with the offending line number.
var ErrMalformedRecord = errors.New("spatial: malformed point record")
