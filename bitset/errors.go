// errors.go — sentinel errors for the bitset package.
//
// Error policy:
//   - Only sentinel variables are exposed at package level.
//   - Callers branch on semantics with errors.Is, never string comparison.
//   - Sentinels are never wrapped with formatted text at the definition site.
package bitset

import "errors"

// ErrZeroWidth indicates New was called with a non-positive width. Width
// must always be positive.
var ErrZeroWidth = errors.New("bitset: width must be positive")

// ErrWidthMismatch indicates a binary operation (XorAssign, Xor) was
// attempted between two BitSets of different widths; Equal instead
// reports false for differing widths. Width is fixed for
// the lifetime of one optimal-cycle invocation, so this signals a
// programmer error inside the core rather than an expected runtime
// condition.
var ErrWidthMismatch = errors.New("bitset: width mismatch")
