// Package skeleton builds the two graph representations the A* engine and
// the heuristic oracle search over:
//
//   - Skeleton1, the plain 1-skeleton adjacency restricted to edges with
//     CellId < pivot, used directly by the A* engine's neighbor expansion.
//   - CoveringGraph, one per annotation coordinate i ∈ [0, β), the 2-sheet
//     cover of Skeleton1 used by the heuristic oracle to bound the
//     remaining path length.
//
// Skeleton1 is a small hand-rolled adjacency map over integer vertex
// IDs — A* needs custom per-state expansion, not a library traversal, so
// no external graph library is warranted there. CoveringGraph instead
// wraps gonum.org/v1/gonum/graph/simple.WeightedUndirectedGraph, so the
// heuristic oracle can reuse gonum's exact shortest-path routine
// (graph/path.DijkstraFrom) instead of a second hand-written one.
package skeleton
