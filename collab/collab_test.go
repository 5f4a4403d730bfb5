package collab_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/opticycle/annotation"
	"github.com/katalvlaran/opticycle/collab"
)

func TestReadCubicalBinaryRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	writeLE := func(v any) {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, v))
	}
	writeLE(int32(0))                    // file type
	writeLE(int32(2))                    // dim
	writeLE([2]uint32{2, 3})             // extent
	writeLE([6]float64{1, 2, 3, 4, 5, 6})

	grid, err := collab.ReadCubicalBinary(&buf)
	require.NoError(t, err)
	assert.Equal(t, []uint32{2, 3}, grid.Extent)
	assert.Equal(t, 6, grid.Len())
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, grid.Data)
}

func TestReadCubicalBinaryTruncated(t *testing.T) {
	_, err := collab.ReadCubicalBinary(bytes.NewReader([]byte{1, 2}))
	assert.ErrorIs(t, err, collab.ErrTruncated)
}

func TestReduceBoundaryMatrixTriangleBoundary(t *testing.T) {
	// Three edges whose boundaries (vertex pairs) form a triangle: the
	// third column reduces to empty, the canonical "this edge closes a
	// cycle" signal.
	columns := []collab.BoundaryColumn{
		{0, 1},
		{1, 2},
		{0, 2},
	}

	res, err := collab.ReduceBoundaryMatrix(columns)
	require.NoError(t, err)
	assert.Empty(t, res.Reduced[2])
	_, hasLow := res.Low[2]
	assert.False(t, hasLow)
}

func TestWriteReductionColumnsCompatBit(t *testing.T) {
	res := collab.ReductionResult{Reduced: []collab.BoundaryColumn{{0, 2}}}

	var buf bytes.Buffer
	require.NoError(t, collab.WriteReductionColumns(&buf, res, true))

	var dim uint32
	var header [2]uint32
	var length uint32
	var rows [2]uint32
	require.NoError(t, binary.Read(&buf, binary.LittleEndian, &dim))
	require.NoError(t, binary.Read(&buf, binary.LittleEndian, &header))
	require.NoError(t, binary.Read(&buf, binary.LittleEndian, &length))
	require.NoError(t, binary.Read(&buf, binary.LittleEndian, &rows))

	assert.Equal(t, uint32(2), dim)
	assert.Equal(t, [2]uint32{1, 1}, header) // 1 column, compat bit set
	assert.Equal(t, uint32(2), length)
	assert.Equal(t, [2]uint32{1, 3}, rows) // 0-indexed {0,2} shifted to 1-indexed
}

func TestComputeEdgeAnnotationsTriangleHasOneGenerator(t *testing.T) {
	cell2v := annotation.Cell2V{
		0: {0, 1},
		1: {1, 2},
		2: {0, 2},
	}

	store, err := collab.ComputeEdgeAnnotations(cell2v, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, store.Beta())
	assert.Equal(t, 1, store.Len())
}

func TestComputeEdgeAnnotationsTreeOnlyHasTrivialStore(t *testing.T) {
	cell2v := annotation.Cell2V{
		0: {0, 1},
		1: {1, 2},
	}

	store, err := collab.ComputeEdgeAnnotations(cell2v, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, store.Len())
}
