// Package heuristic implements the A* heuristic oracle: an admissible,
// consistent lower bound on the remaining path length from a search
// state (v, s) to (target, τ), computed as the maximum over annotation
// coordinates of an exact per-coordinate shortest-path bound in that
// coordinate's covering graph.
//
// Per coordinate i, the oracle needs the exact distance in CGᵢ from v's
// sheet-0 node to whichever sheet of target the parity δᵢ = sᵢ ⊕ τᵢ
// demands. Both covering graphs and the single-source distance tables
// rooted at the two sheets of target are static for the duration of one
// search, so each (coordinate, target sheet) distance table is computed
// once, lazily, by gonum.org/v1/gonum/graph/path.DijkstraFrom and
// memoized: because CGᵢ is static and unit-weight, one full
// single-source run is exact and admissible, and strictly simpler to
// reason about than incremental resumption of a partial frontier.
//
// The oracle's own repeated-query memo, (v,s) → h, is bounded by an LRU
// cache (github.com/hashicorp/golang-lru/v2) sized by the caller, so a
// long search's memory footprint stays bounded instead of growing
// without limit across the whole open/closed set traversal.
package heuristic
