package skeleton

import "github.com/katalvlaran/opticycle/annotation"

// BuildSkeleton1 constructs the 1-skeleton adjacency over N vertices from
// every edge cell with CellId < pivot. cell2v need
// only resolve edges (2-endpoint cells); non-edge cells are ignored.
//
// Complexity: O(pivot) — a single pass over candidate cell IDs below the
// pivot, each producing O(1) adjacency entries.
func BuildSkeleton1(cell2v annotation.Cell2V, pivot annotation.CellId, n int) *Skeleton1 {
	adj := make(map[annotation.VertexId][]annotation.VertexId, n)
	for id := annotation.CellId(0); id < pivot; id++ {
		u, v, ok := cell2v.Endpoints(id)
		if !ok {
			continue
		}
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
	}

	return &Skeleton1{n: n, adj: adj}
}
