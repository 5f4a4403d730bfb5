package collab

import (
	"encoding/binary"
	"io"
)

// ReductionColumnsWriter implements DiagramWriter over a binary payload
// with the layout `dim:uint32, header[dim]:uint32,
// payload:uint32[count]`. Compat1Indexed selects whether per-cell row
// indices are written 1-indexed (for interoperability with tooling that
// expects that on-disk convention) or 0-indexed (this repository's
// native convention).
type ReductionColumnsWriter struct {
	Compat1Indexed bool
}

// Write implements DiagramWriter. The header carries two fields: the
// number of columns and the compatibility bit; the payload then lists,
// per column, its length followed by that many row indices.
func (w ReductionColumnsWriter) Write(out io.Writer, result ReductionResult) error {
	return WriteReductionColumns(out, result, w.Compat1Indexed)
}

// WriteReductionColumns serializes result to out using that payload
// layout.
func WriteReductionColumns(out io.Writer, result ReductionResult, compat1Indexed bool) error {
	dim := uint32(2)
	if err := binary.Write(out, binary.LittleEndian, dim); err != nil {
		return err
	}

	compatBit := uint32(0)
	if compat1Indexed {
		compatBit = 1
	}
	header := [2]uint32{uint32(len(result.Reduced)), compatBit}
	if err := binary.Write(out, binary.LittleEndian, &header); err != nil {
		return err
	}

	offset := uint32(0)
	if compat1Indexed {
		offset = 1
	}

	for _, col := range result.Reduced {
		if err := binary.Write(out, binary.LittleEndian, uint32(len(col))); err != nil {
			return err
		}
		for _, row := range col {
			if err := binary.Write(out, binary.LittleEndian, uint32(row)+offset); err != nil {
				return err
			}
		}
	}

	return nil
}
