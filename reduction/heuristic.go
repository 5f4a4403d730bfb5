package reduction

import (
	"github.com/katalvlaran/opticycle/annotation"
	"github.com/katalvlaran/opticycle/bitset"
)

// zeroHeuristic always returns 0, degrading astar.Search to plain
// uniform-cost search. Used for config.Exhaustive: an independently
// reasoned cross-check against the heuristic-guided path, without a
// second implementation of the search loop.
type zeroHeuristic struct{}

func (zeroHeuristic) H(annotation.VertexId, *bitset.Set) int { return 0 }
