package bitset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/opticycle/bitset"
)

func TestNewPanicsOnNonPositiveWidth(t *testing.T) {
	assert.Panics(t, func() { bitset.New(0) })
	assert.Panics(t, func() { bitset.New(-1) })
}

func TestXorIsGF2Sum(t *testing.T) {
	a := bitset.New(4)
	a.SetBit(0)
	a.SetBit(2)

	b := bitset.New(4)
	b.SetBit(2)
	b.SetBit(3)

	got, err := a.Xor(b)
	require.NoError(t, err)

	want := bitset.New(4)
	want.SetBit(0)
	want.SetBit(3)
	assert.True(t, got.Equal(want))

	// a itself must be untouched by the non-mutating Xor.
	assert.True(t, a.Get(0))
	assert.True(t, a.Get(2))
	assert.False(t, a.Get(3))
}

func TestXorAssignSelfInverse(t *testing.T) {
	a := bitset.New(8)
	a.SetBit(1)
	a.SetBit(5)
	b := a.Clone()

	require.NoError(t, a.XorAssign(b))
	assert.True(t, a.IsZero())
}

func TestWidthMismatch(t *testing.T) {
	a := bitset.New(3)
	b := bitset.New(4)
	assert.ErrorIs(t, a.XorAssign(b), bitset.ErrWidthMismatch)

	_, err := a.Xor(b)
	assert.ErrorIs(t, err, bitset.ErrWidthMismatch)
}

func TestEqualityAndWidth(t *testing.T) {
	a := bitset.New(5)
	b := bitset.New(6)
	assert.False(t, a.Equal(b), "different widths must never compare equal")

	c := bitset.New(5)
	assert.True(t, a.Equal(c))
}

func TestKeyConsistentWithEqual(t *testing.T) {
	a := bitset.New(10)
	a.SetBit(3)
	a.SetBit(9)

	b := bitset.New(10)
	b.SetBit(3)
	b.SetBit(9)

	assert.Equal(t, a.Key(), b.Key())
	assert.Equal(t, a.Hash(), b.Hash())

	b.SetBit(0)
	assert.NotEqual(t, a.Key(), b.Key())
}

func TestPopCount(t *testing.T) {
	a := bitset.New(16)
	assert.Equal(t, 0, a.PopCount())
	a.SetBit(1)
	a.SetBit(2)
	a.SetBit(15)
	assert.Equal(t, 3, a.PopCount())
}
