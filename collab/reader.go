package collab

import (
	"encoding/binary"
	"io"
)

// CubicalBinaryReader implements FiltrationReader over a dense header
// layout (file_type:int32, dim:int32, extent[dim]:uint32,
// data:double[prod(extent)]) written in native little-endian byte order.
type CubicalBinaryReader struct{}

// Read implements FiltrationReader.
func (CubicalBinaryReader) Read(r io.Reader) (*CubicalGrid, error) {
	return ReadCubicalBinary(r)
}

// ReadCubicalBinary parses one CubicalGrid from r.
func ReadCubicalBinary(r io.Reader) (*CubicalGrid, error) {
	var fileType, dim int32
	if err := binary.Read(r, binary.LittleEndian, &fileType); err != nil {
		return nil, ErrTruncated
	}
	if err := binary.Read(r, binary.LittleEndian, &dim); err != nil {
		return nil, ErrTruncated
	}
	if dim <= 0 {
		return nil, ErrNegativeExtent
	}

	extent := make([]uint32, dim)
	if err := binary.Read(r, binary.LittleEndian, &extent); err != nil {
		return nil, ErrTruncated
	}

	n := 1
	for _, e := range extent {
		if e == 0 {
			return nil, ErrNegativeExtent
		}
		n *= int(e)
	}

	data := make([]float64, n)
	if err := binary.Read(r, binary.LittleEndian, &data); err != nil {
		return nil, ErrTruncated
	}

	return &CubicalGrid{FileType: fileType, Extent: extent, Data: data}, nil
}
