package reduction

import (
	"strconv"

	"github.com/katalvlaran/opticycle/annotation"
)

// ColumnError pairs a reduction column's CellId with the error its
// optimal-cycle search ended in. Driver.Run never aborts on one column's
// failure; it collects
// every column's error and lets the caller decide what to do next.
type ColumnError struct {
	CellID annotation.CellId
	Err    error
}

// Error implements the error interface so a ColumnError can itself be
// wrapped or logged like any other error.
func (c ColumnError) Error() string {
	return "reduction: column " + strconv.Itoa(int(c.CellID)) + ": " + c.Err.Error()
}

// Unwrap exposes the underlying search error to errors.Is/errors.As.
func (c ColumnError) Unwrap() error { return c.Err }
