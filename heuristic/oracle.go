package heuristic

import (
	"math"

	lru "github.com/hashicorp/golang-lru/v2"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/opticycle/annotation"
	"github.com/katalvlaran/opticycle/bitset"
	"github.com/katalvlaran/opticycle/skeleton"
)

// New builds an Oracle for one search: target is the A* goal vertex, tau
// is its goal annotation, covers holds one CoveringGraph per coordinate
// (len(covers) == beta), and cacheSize bounds the top-level (v,s) → h
// memo. cacheSize ≤ 0 defaults to a modest fixed size rather
// than disabling the memo outright, since an unbounded cache would defeat
// the point of using an LRU at all.
func New(covers []*skeleton.CoveringGraph, n int, target annotation.VertexId, tau *bitset.Set, cacheSize int) (*Oracle, error) {
	if cacheSize <= 0 {
		cacheSize = 4096
	}
	cache, err := lru.New[stateKey, int](cacheSize)
	if err != nil {
		return nil, err
	}

	perCoord := make([][2]*sheetDist, len(covers))
	for i := range perCoord {
		perCoord[i] = [2]*sheetDist{{dist: nil}, {dist: nil}}
	}

	return &Oracle{
		n:        n,
		beta:     len(covers),
		target:   target,
		tau:      tau,
		covers:   covers,
		perCoord: perCoord,
		topMemo:  cache,
	}, nil
}

// H returns h((v,s),(target,τ)): the maximum, over annotation
// coordinates, of the exact shortest-path bound in that coordinate's
// covering graph. The result is memoized by (v, s.Key()).
func (o *Oracle) H(v annotation.VertexId, s *bitset.Set) int {
	key := stateKey{v: v, s: s.Key()}
	if cached, ok := o.topMemo.Get(key); ok {
		return cached
	}

	delta, _ := s.Xor(o.tau)

	best := 0
	for i := 0; i < o.beta; i++ {
		sheet := 0
		if delta.Get(i) {
			sheet = 1
		}
		d := o.coordDistance(i, sheet, v)
		if d > best {
			best = d
		}
	}

	o.topMemo.Add(key, best)

	return best
}

// coordDistance returns the exact distance, in coordinate i's covering
// graph, from (v, 0) to (target, sheet), computing and caching the full
// single-source table rooted at (target, sheet) on first use.
func (o *Oracle) coordDistance(i, sheet int, v annotation.VertexId) int {
	table := o.perCoord[i][sheet]
	cg := o.covers[i]
	if table.dist == nil {
		root := simple.Node(cg.Node(o.target, sheet))
		shortest := path.DijkstraFrom(root, cg.Graph())
		dist := make(map[int64]float64, 2*o.n)
		for nid := 0; nid < 2*o.n; nid++ {
			id := int64(nid)
			dist[id] = shortest.WeightTo(id)
		}
		table = &sheetDist{computed: true, dist: dist}
		o.perCoord[i][sheet] = table
	}

	w, ok := table.dist[cg.Node(v, 0)]
	if !ok || math.IsInf(w, 1) {
		return Infeasible
	}

	return int(w)
}
