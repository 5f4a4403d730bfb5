package collab

import "errors"

// Sentinel errors returned by the collab package's reader, reducer, and
// writer.
var (
	// ErrTruncated indicates the input ended before a complete header or
	// payload could be read.
	ErrTruncated = errors.New("collab: truncated input")

	// ErrNegativeExtent indicates a grid extent that would overflow or
	// produce a nonsensical cell count.
	ErrNegativeExtent = errors.New("collab: non-positive grid extent")

	// ErrDimensionMismatch indicates a boundary matrix whose declared
	// dimension does not match its column count.
	ErrDimensionMismatch = errors.New("collab: dimension mismatch")
)
