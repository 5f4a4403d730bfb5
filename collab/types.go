package collab

import "io"

// CubicalGrid is a dense scalar field read from a binary layout of
// a file-type tag, a dimension, an extent per axis, and a row-major
// array of doubles.
type CubicalGrid struct {
	FileType int32
	Extent   []uint32
	Data     []float64
}

// Len returns the total number of samples, the product of Extent.
func (g *CubicalGrid) Len() int {
	n := 1
	for _, e := range g.Extent {
		n *= int(e)
	}

	return n
}

// FiltrationReader reads a dense scalar field usable as a toy cubical
// filtration.
type FiltrationReader interface {
	Read(r io.Reader) (*CubicalGrid, error)
}

// BoundaryColumn is one column of a boundary matrix: the sorted, unique
// row indices of its nonzero (GF(2)) entries.
type BoundaryColumn []int

// ReductionResult is the outcome of reducing a sequence of boundary
// columns in filtration order.
type ReductionResult struct {
	// Low maps a column's index to its pivot row after reduction. A
	// column absent from Low reduced to the empty column: a birth.
	Low map[int]int

	// Reduced holds each column's final, reduced contents, indexed the
	// same way as the input slice.
	Reduced []BoundaryColumn
}

// MatrixReducer reduces a boundary matrix to low-pivot form.
type MatrixReducer interface {
	Reduce(columns []BoundaryColumn) (ReductionResult, error)
}

// DiagramWriter serializes a ReductionResult to a binary payload.
type DiagramWriter interface {
	Write(w io.Writer, result ReductionResult) error
}
