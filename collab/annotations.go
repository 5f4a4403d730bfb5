package collab

import (
	"sort"

	"github.com/katalvlaran/opticycle/annotation"
	"github.com/katalvlaran/opticycle/bitset"
)

// ComputeEdgeAnnotations builds the annotation.Store the optimal-cycle
// core consumes, for the 1-skeleton restricted to CellId < pivot over n
// vertices. It implements the standard fundamental-cycle-basis
// construction: a spanning forest is grown greedily over edges in
// filtration order (the same disjoint-set pattern as
// prim_kruskal/kruskal.go's Kruskal, generalized from minimum-weight to
// filtration order since every edge here is unweighted), and every edge
// NOT in the forest is a generator — it is assigned its own standard
// basis vector. XOR-ing those unit vectors along any cycle's non-tree
// edges reproduces the cycle's coordinates in this basis, which is
// exactly the annotation requires: two cycles are homologous
// iff they sum to the same bitset.
//
// The resulting Store's width is the number of non-tree edges found, or
// 1 when there are none (the first Betti number of the restricted
// 1-skeleton taken as a graph, with no 2-cells — a graph's cycle space
// has exactly |E| - |V| + (connected components) dimensions).
func ComputeEdgeAnnotations(cell2v annotation.Cell2V, pivot annotation.CellId, n int) (*annotation.Store, error) {
	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}

	var find func(int) int
	find = func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}
	union := func(u, v int) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}

	type genEdge struct {
		key annotation.EdgeKey
		id  annotation.CellId
	}
	var generators []genEdge

	ids := make([]annotation.CellId, 0, len(cell2v))
	for id := range cell2v {
		if id < pivot {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		u, v, ok := cell2v.Endpoints(id)
		if !ok {
			continue
		}
		key := annotation.NewEdgeKey(u, v)
		if find(int(u)) != find(int(v)) {
			union(int(u), int(v))
		} else {
			generators = append(generators, genEdge{key: key, id: id})
		}
	}

	beta := len(generators)
	if beta == 0 {
		beta = 1 // bitset.New requires a positive width; a trivial store carries an unused coordinate
	}
	store := annotation.NewStore(beta)
	for i, g := range generators {
		unit := bitset.New(beta)
		unit.SetBit(i)
		if err := store.Set(g.key, unit); err != nil {
			return nil, err
		}
	}

	return store, nil
}
