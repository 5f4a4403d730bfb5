package skeleton

import (
	"math"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/opticycle/annotation"
)

// CoveringGraph is the 1-dimensional covering graph for a single
// annotation coordinate i: an undirected, unit-weight
// graph on 2N nodes, indexing (v,0) ↦ v and (v,1) ↦ v+N.
type CoveringGraph struct {
	n int
	g *simple.WeightedUndirectedGraph
}

// Graph exposes the underlying gonum graph for use with
// gonum.org/v1/gonum/graph/path algorithms.
func (c *CoveringGraph) Graph() *simple.WeightedUndirectedGraph { return c.g }

// Node returns the gonum node ID for (v, sheet), sheet ∈ {0,1}.
func (c *CoveringGraph) Node(v annotation.VertexId, sheet int) int64 {
	if sheet == 0 {
		return int64(v)
	}

	return int64(v) + int64(c.n)
}

// CoordBit reports, for the annotation coordinate this CoveringGraph was
// built for, whether the sentinel edge key carries a 1 bit (0/false for
// absent/non-sentinel edges,).
type CoordBit func(key annotation.EdgeKey) bool

// BuildCoveringGraph constructs CGᵢ: for every edge
// {u,v} with CellId < pivot, add cross edges (u,0)–(v,1) and (u,1)–(v,0)
// when bit(i) of the edge's annotation is 1, otherwise parallel edges
// (u,0)–(v,0) and (u,1)–(v,1). All edges carry weight 1.
func BuildCoveringGraph(cell2v annotation.Cell2V, pivot annotation.CellId, n int, bit CoordBit) *CoveringGraph {
	g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	cg := &CoveringGraph{n: n, g: g}

	for v := 0; v < 2*n; v++ {
		g.AddNode(simple.Node(v))
	}

	addEdge := func(a, b int64) {
		if g.HasEdgeBetween(a, b) {
			return
		}
		g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(a), T: simple.Node(b), W: 1})
	}

	for id := annotation.CellId(0); id < pivot; id++ {
		u, v, ok := cell2v.Endpoints(id)
		if !ok {
			continue
		}
		key := annotation.NewEdgeKey(u, v)
		if bit(key) {
			addEdge(cg.Node(u, 0), cg.Node(v, 1))
			addEdge(cg.Node(u, 1), cg.Node(v, 0))
		} else {
			addEdge(cg.Node(u, 0), cg.Node(v, 0))
			addEdge(cg.Node(u, 1), cg.Node(v, 1))
		}
	}

	return cg
}
