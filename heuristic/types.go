package heuristic

import (
	"math"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/opticycle/annotation"
	"github.com/katalvlaran/opticycle/bitset"
	"github.com/katalvlaran/opticycle/skeleton"
)

// Infeasible is the sentinel distance returned by a per-coordinate query
// when the required parity is unreachable in that coordinate's covering
// graph. It is large enough never to be mistaken for a real path length
// in any graph this package is used on, while staying safely summable
// with g-scores without overflowing int.
const Infeasible = math.MaxInt32 / 2

// stateKey is the comparable lookup key for the top-level (v,s) → h memo.
type stateKey struct {
	v annotation.VertexId
	s bitset.Key
}

// sheetDist is a lazily-populated single-source distance table, rooted at
// one sheet of the target vertex in one coordinate's covering graph.
type sheetDist struct {
	computed bool
	dist     map[int64]float64
}

// Oracle computes h((v,s),(target,τ)). One Oracle is built per
// optimal-cycle search and discarded when the search ends.
type Oracle struct {
	n        int
	beta     int
	target   annotation.VertexId
	tau      *bitset.Set
	covers   []*skeleton.CoveringGraph
	perCoord [][2]*sheetDist // perCoord[i][sheet]
	topMemo  *lru.Cache[stateKey, int]
}
