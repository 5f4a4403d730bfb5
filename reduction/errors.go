package reduction

import "errors"

// ErrUnsupportedDimension is returned when Driver.Run is asked to act on a
// dimension other than 1 — the optimal-cycle core's only supported
// dimension.
var ErrUnsupportedDimension = errors.New("reduction: only dimension 1 is supported")
