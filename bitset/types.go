package bitset

import (
	bbbitset "github.com/bits-and-blooms/bitset"
)

// Key is a comparable, hashable snapshot of a BitSet's value, suitable for
// use as (part of) a Go map key. Two BitSets that are Equal produce the
// same Key; two BitSets with different widths never produce the same Key
// even if one's extra bits happen to be all zero, since the width is
// encoded alongside the bits.
type Key string

// Set is a fixed-width binary vector over GF(2). The zero value is not
// usable; construct one with New.
type Set struct {
	width int
	bits  *bbbitset.BitSet
}
