// Package annotation implements the annotation algebra of /§4.2:
// a partial mapping from sentinel edges to fixed-width GF(2) bitsets, and
// the chain-annotation fold used both to prepare a search's target
// annotation and to annotate edges as the A* engine traverses them.
//
// An annotation map is total over "what does this edge contribute" (an
// absent key contributes the zero bitset) but partial in storage: only
// sentinel edges carry a non-zero entry. β, the width
// shared by every value in one map, is fixed for the lifetime of one
// optimal-cycle invocation.
package annotation
