// Package bitset provides fixed-width binary vectors over GF(2) used as
// annotation values throughout opticycle.
//
// A BitSet is created with a fixed width β that never changes for the
// lifetime of the value. It supports XOR (the sum in GF(2)), equality,
// a zero test, single-bit reads, and a Key() form suitable for use as a
// Go map key — the mutable BitSet itself is backed by a pointer and is
// not comparable, so callers that need (vertex, annotation) search-state
// keys should call Key() once per state, not carry the BitSet around as
// a map key directly.
//
// Internally a BitSet delegates word storage and bit-twiddling to
// github.com/bits-and-blooms/bitset, which already implements compact,
// fast XOR and popcount over []uint64 words; this package adds the
// fixed-width invariant, value semantics (Equal, IsZero), and the
// Key/Hash forms the heuristic cache and the A* closed set need and the
// upstream library does not provide.
package bitset
