// errors.go — sentinel errors for the astar package, grouped into three
// kinds: invalid input, no feasible cycle, and resource exhaustion.
package astar

import "errors"

// ErrInvalidInput covers the invalid-input kind: nil Search arguments,
// or (surfaced via annotation.PrepareSearch upstream) an empty cycle,
// mismatched annotation widths, or a pivot edge absent from edge_map.
// ErrInvalidInput itself is used for conditions detected inside this
// package (e.g. a nil skeleton, store, oracle, or edge map).
var ErrInvalidInput = errors.New("astar: invalid input")

// ErrNoFeasibleCycle is returned when the open set empties before the
// target state is reached: no cycle homologous to the input class exists
// under the pivot restriction.
var ErrNoFeasibleCycle = errors.New("astar: no feasible cycle under this pivot")

// ErrResourceExhausted is returned when an implementation-defined
// expansion-count bound is exceeded, distinguishing a
// deliberately bounded search from genuine infeasibility.
var ErrResourceExhausted = errors.New("astar: expansion limit exceeded")
