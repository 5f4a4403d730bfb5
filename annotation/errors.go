// errors.go — sentinel errors for the annotation package.
package annotation

import "errors"

// ErrEmptyCycle indicates an empty input cycle (a non-empty sequence of
// CellIds is required) was supplied to PrepareSearch.
var ErrEmptyCycle = errors.New("annotation: input cycle is empty")

// ErrPivotNotAnEdge indicates the pivot CellId (the last element of the
// input cycle) does not map to exactly two endpoints via cell2v.
var ErrPivotNotAnEdge = errors.New("annotation: pivot cell is not an edge")

// ErrPivotNotFound indicates the pivot edge's canonical key is absent from
// edge_map, which classifies as InvalidInput.
var ErrPivotNotFound = errors.New("annotation: pivot edge absent from edge map")

// ErrWidthMismatch indicates two BitSets of differing width were combined,
// e.g. a Store value whose width disagrees with the Store's declared β.
var ErrWidthMismatch = errors.New("annotation: bitset width mismatch")
