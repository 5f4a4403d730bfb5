package annotation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/opticycle/annotation"
	"github.com/katalvlaran/opticycle/bitset"
)

func TestStoreGetDefaultsToZero(t *testing.T) {
	s := annotation.NewStore(3)
	key := annotation.NewEdgeKey(1, 2)
	got := s.Get(key)
	assert.True(t, got.IsZero())
}

func TestStoreSetAndGetRoundTrip(t *testing.T) {
	s := annotation.NewStore(2)
	key := annotation.NewEdgeKey(0, 5)
	val := bitset.New(2)
	val.SetBit(1)
	require.NoError(t, s.Set(key, val))

	got := s.Get(key)
	assert.True(t, got.Get(1))
	assert.False(t, got.Get(0))
	assert.Equal(t, 1, s.Len())
}

func TestStoreSetWidthMismatch(t *testing.T) {
	s := annotation.NewStore(2)
	val := bitset.New(3)
	err := s.Set(annotation.NewEdgeKey(0, 1), val)
	assert.ErrorIs(t, err, annotation.ErrWidthMismatch)
}

func TestNewEdgeKeyCanonicalizes(t *testing.T) {
	a := annotation.NewEdgeKey(4, 1)
	b := annotation.NewEdgeKey(1, 4)
	assert.Equal(t, a, b)
	assert.Equal(t, annotation.VertexId(1), a.A)
	assert.Equal(t, annotation.VertexId(4), a.B)
}

func TestChainAnnotationXorsSentinelEdgesOnly(t *testing.T) {
	// Square 0-1-2-3-0 plus sentinel diagonal 0-2, annotation bit0 = 1.
	cell2v := annotation.Cell2V{
		0: {0, 1},
		1: {1, 2},
		2: {2, 3},
		3: {0, 3},
		4: {0, 2},
	}
	store := annotation.NewStore(1)
	diag := bitset.New(1)
	diag.SetBit(0)
	require.NoError(t, store.Set(annotation.NewEdgeKey(0, 2), diag))

	chain := annotation.Chain{1, 2, 3, 4} // e1,e2,e3,e4(diagonal)
	ann := chain.Annotation(cell2v, store)
	assert.True(t, ann.Get(0))

	nonSentinelChain := annotation.Chain{0, 1, 2, 3} // full square, no diagonal
	ann2 := nonSentinelChain.Annotation(cell2v, store)
	assert.True(t, ann2.IsZero())
}
