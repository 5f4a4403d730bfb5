// Package bitset — implementation.
//
// Complexity: all operations are O(⌈β/64⌉) in the width β, since they
// delegate to the word-packed representation in
// github.com/bits-and-blooms/bitset.
package bitset

import (
	"encoding/binary"
	"hash/fnv"

	bbbitset "github.com/bits-and-blooms/bitset"
)

// New returns a zero-valued Set of the given width. Width must be
// positive; New panics on a non-positive width, since this package
// confines validation panics to its one constructor.
func New(width int) *Set {
	if width <= 0 {
		panic(ErrZeroWidth.Error())
	}

	return &Set{width: width, bits: bbbitset.New(uint(width))}
}

// Width returns β, the fixed bit-width of s.
func (s *Set) Width() int { return s.width }

// Get reports whether bit i is set. i must be in [0, Width()).
func (s *Set) Get(i int) bool {
	return s.bits.Test(uint(i))
}

// SetBit sets bit i to 1. i must be in [0, Width()).
func (s *Set) SetBit(i int) {
	s.bits.Set(uint(i))
}

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set {
	return &Set{width: s.width, bits: s.bits.Clone()}
}

// XorAssign sets s := s XOR other, the sum in GF(2). Both
// operands must share the same width; ErrWidthMismatch otherwise.
func (s *Set) XorAssign(other *Set) error {
	if other == nil {
		return nil
	}
	if s.width != other.width {
		return ErrWidthMismatch
	}
	s.bits.InPlaceSymmetricDifference(other.bits)

	return nil
}

// Xor returns a new Set holding s XOR other, leaving both operands
// unmodified. Both operands must share the same width.
func (s *Set) Xor(other *Set) (*Set, error) {
	out := s.Clone()
	if err := out.XorAssign(other); err != nil {
		return nil, err
	}

	return out, nil
}

// Equal reports whether s and other hold the same width and bits.
func (s *Set) Equal(other *Set) bool {
	if other == nil {
		return s.IsZero()
	}
	if s.width != other.width {
		return false
	}

	return s.bits.Equal(other.bits)
}

// IsZero reports whether every bit of s is 0.
func (s *Set) IsZero() bool {
	return s.bits.None()
}

// PopCount returns the number of bits set to 1.
func (s *Set) PopCount() int {
	return int(s.bits.Count())
}

// words returns the bit-width rounded up to a whole number of 64-bit
// words, packed little-endian, for use by Key and Hash.
func (s *Set) words() []byte {
	nWords := (s.width + 63) / 64
	out := make([]byte, nWords*8)
	// bits.Bytes() is not guaranteed stable across bitset versions for
	// partial words, so we walk words explicitly via test bits in chunks.
	for w := 0; w < nWords; w++ {
		var word uint64
		base := w * 64
		lim := base + 64
		if lim > s.width {
			lim = s.width
		}
		for b := base; b < lim; b++ {
			if s.bits.Test(uint(b)) {
				word |= 1 << uint(b-base)
			}
		}
		binary.LittleEndian.PutUint64(out[w*8:], word)
	}

	return out
}

// Key returns a comparable, map-key-safe snapshot of s's value. Equal
// BitSets (including width) produce equal Keys; see the Key doc comment
// in types.go for why a string rather than the BitSet itself is used.
func (s *Set) Key() Key {
	packed := s.words()
	out := make([]byte, 0, len(packed)+4)
	var widthBuf [4]byte
	binary.LittleEndian.PutUint32(widthBuf[:], uint32(s.width))
	out = append(out, widthBuf[:]...)
	out = append(out, packed...)

	return Key(out)
}

// Hash returns an FNV-1a hash of s consistent with Equal: s1.Equal(s2)
// implies s1.Hash() == s2.Hash(). Used by callers that prefer a numeric
// key (e.g. telemetry sampling) to the string Key.
func (s *Set) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s.Key()))

	return h.Sum64()
}
