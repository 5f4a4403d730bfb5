package skeleton_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/opticycle/annotation"
	"github.com/katalvlaran/opticycle/skeleton"
)

func TestBuildSkeleton1RestrictsByPivot(t *testing.T) {
	cell2v := annotation.Cell2V{
		0: {0, 1},
		1: {1, 2},
		2: {2, 3},
		3: {0, 3},
		4: {0, 2}, // pivot, excluded
	}
	sk := skeleton.BuildSkeleton1(cell2v, 4, 4)

	assert.ElementsMatch(t, []annotation.VertexId{1, 3}, sk.Neighbors(0))
	assert.ElementsMatch(t, []annotation.VertexId{0, 2}, sk.Neighbors(1))
	assert.Nil(t, sk.Neighbors(99)) // unknown vertex: no adjacency, no panic
}

func TestBuildCoveringGraphCrossAndParallelEdges(t *testing.T) {
	cell2v := annotation.Cell2V{
		0: {0, 1}, // non-sentinel
		1: {1, 2}, // sentinel, bit=1
	}
	bit := func(k annotation.EdgeKey) bool {
		return k == annotation.NewEdgeKey(1, 2)
	}
	cg := skeleton.BuildCoveringGraph(cell2v, 2, 3, bit)
	g := cg.Graph()

	// parallel edge for e0: (0,0)-(1,0) and (0,1)-(1,1)
	assert.True(t, g.HasEdgeBetween(cg.Node(0, 0), cg.Node(1, 0)))
	assert.True(t, g.HasEdgeBetween(cg.Node(0, 1), cg.Node(1, 1)))
	assert.False(t, g.HasEdgeBetween(cg.Node(0, 0), cg.Node(1, 1)))

	// cross edge for e1 (sentinel, bit=1): (1,0)-(2,1) and (1,1)-(2,0)
	assert.True(t, g.HasEdgeBetween(cg.Node(1, 0), cg.Node(2, 1)))
	assert.True(t, g.HasEdgeBetween(cg.Node(1, 1), cg.Node(2, 0)))
	assert.False(t, g.HasEdgeBetween(cg.Node(1, 0), cg.Node(2, 0)))
}
