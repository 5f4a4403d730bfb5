package skeleton

import "github.com/katalvlaran/opticycle/annotation"

// Skeleton1 is the 1-skeleton adjacency restricted to edges with
// CellId < some pivot. Construct with
// BuildSkeleton1.
type Skeleton1 struct {
	n   int
	adj map[annotation.VertexId][]annotation.VertexId
}

// N returns the vertex count of the ambient space.
func (s *Skeleton1) N() int { return s.n }

// Neighbors returns the vertices adjacent to v in the 1-skeleton. The
// returned slice must not be mutated by the caller.
func (s *Skeleton1) Neighbors(v annotation.VertexId) []annotation.VertexId {
	return s.adj[v]
}
