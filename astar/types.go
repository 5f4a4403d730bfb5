package astar

import (
	"github.com/katalvlaran/opticycle/annotation"
	"github.com/katalvlaran/opticycle/bitset"
)

// stateKey is the comparable (vertex, annotation) product-space
// coordinate used by the closed set and the best-known-g map.
type stateKey struct {
	v annotation.VertexId
	s bitset.Key
}

// prevLink is one arena entry: the directed edge (from, to) traversed to
// reach a node, and the index of the predecessor's own arena entry (-1
// for the source). Cycle reconstruction walks this chain.
type prevLink struct {
	parent int
	from   annotation.VertexId
	to     annotation.VertexId
}

// node is one A* open/closed-set record.
type node struct {
	v       annotation.VertexId
	s       *bitset.Set
	sKey    bitset.Key
	g       int
	f       int
	prevIdx int // index into runner.arena, or -1 at the source
}

// Heuristic is the lower-bound oracle Search consults at every expansion.
// heuristic.Oracle satisfies this by its H method;
// reduction's exhaustive algorithm mode substitutes a zero heuristic,
// degrading the same engine to plain uniform-cost search without a
// second implementation of the search loop.
type Heuristic interface {
	H(v annotation.VertexId, s *bitset.Set) int
}

// Result is the outcome of a successful Search.
type Result struct {
	Cycle     []annotation.CellId // ascending by CellId
	Expanded  int                 // number of states popped from the open set and closed
	PathEdges int                 // number of traversed edges, excluding the pivot
}
