package astar_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/katalvlaran/opticycle/annotation"
	"github.com/katalvlaran/opticycle/bitset"
	"github.com/katalvlaran/opticycle/skeleton"
)

// ringWithChords builds a harness over a ring 0-1-...-(n-1)-0 plus k
// random non-consecutive chords; every ring edge and chord independently
// either is non-sentinel or carries a single 1 bit at a random
// coordinate. Ring edges get ids 0..n-2, chords get the
// next k ids, and the pivot (the ring-closing edge (n-1,0)) is always
// last, so the caller can pass ids 0..n-2 plus the pivot id as the input
// cycle while chords remain available to the skeleton as shortcuts.
func ringWithChords(rt *rapid.T, beta int) (*harness, annotation.Chain, int) {
	n := rapid.IntRange(3, 6).Draw(rt, "n")
	k := rapid.IntRange(0, 2).Draw(rt, "numChords")

	specs := make([]edgeSpec, 0, n+k)
	drawBits := func(label string) (bool, []int) {
		if !rapid.Bool().Draw(rt, label+"Has") {
			return false, nil
		}
		bits := []int{rapid.IntRange(0, beta-1).Draw(rt, label+"Bit")}

		return true, bits
	}

	for i := 0; i < n-1; i++ {
		sentinel, bits := drawBits("ring")
		specs = append(specs, edgeSpec{u: annotation.VertexId(i), v: annotation.VertexId(i + 1), sentinel: sentinel, bits: bits})
	}

	for c := 0; c < k; c++ {
		if n < 4 {
			break
		}
		u := rapid.IntRange(0, n-3).Draw(rt, "chordU")
		v := rapid.IntRange(u+2, n-1).Draw(rt, "chordV")
		if u == 0 && v == n-1 {
			continue // would duplicate the pivot edge
		}
		sentinel, bits := drawBits("chord")
		specs = append(specs, edgeSpec{u: annotation.VertexId(u), v: annotation.VertexId(v), sentinel: sentinel, bits: bits})
	}

	pivotID := len(specs)
	specs = append(specs, edgeSpec{u: annotation.VertexId(n - 1), v: 0})

	h := newHarness(n, beta, specs)

	ring := make(annotation.Chain, 0, n)
	for i := 0; i < n-1; i++ {
		ring = append(ring, annotation.CellId(i))
	}
	ring = append(ring, annotation.CellId(pivotID))

	return h, ring, n
}

// bruteForceProductDistance runs a plain BFS over the product space
// (vertex, accumulated annotation), the same state space astar.Search
// explores, to compute the true shortest-path length between two
// (vertex, annotation) states. It is the ground truth the shortness and
// admissibility properties check the engine and the oracle against.
func bruteForceProductDistance(sk *skeleton.Skeleton1, store *annotation.Store, fromV annotation.VertexId, fromAnn *bitset.Set, toV annotation.VertexId, toAnn *bitset.Set) (int, bool) {
	type state struct {
		v annotation.VertexId
		s bitset.Key
	}

	start := state{v: fromV, s: fromAnn.Key()}
	goal := state{v: toV, s: toAnn.Key()}
	if start == goal {
		return 0, true
	}

	dist := map[state]int{start: 0}
	annByKey := map[bitset.Key]*bitset.Set{start.s: fromAnn}
	queue := []state{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curAnn := annByKey[cur.s]

		for _, w := range sk.Neighbors(cur.v) {
			edgeAnn := store.Get(annotation.NewEdgeKey(cur.v, w))
			newAnn, err := curAnn.Xor(edgeAnn)
			if err != nil {
				continue
			}
			next := state{v: w, s: newAnn.Key()}
			if _, seen := dist[next]; seen {
				continue
			}
			dist[next] = dist[cur] + 1
			annByKey[next.s] = newAnn
			if next == goal {
				return dist[next], true
			}
			queue = append(queue, next)
		}
	}

	return 0, false
}

// TestSearchResultIsAClosedChain checks the cycle-ness invariant: the
// edge set Search returns has zero GF(2) boundary, i.e. every vertex it
// touches is incident to an even number of its edges. A 1-chain with
// nonzero boundary is not a cycle at all, regardless of its annotation.
func TestSearchResultIsAClosedChain(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		beta := rapid.IntRange(1, 2).Draw(rt, "beta")
		h, ring, _ := ringWithChords(rt, beta)

		res, _, err := h.run(t, ring, 0)
		if err != nil {
			rt.Fatalf("Search: %v", err)
		}

		degree := make(map[annotation.VertexId]int)
		for _, id := range res.Cycle {
			u, v, ok := h.cell2v.Endpoints(id)
			if !ok {
				rt.Fatalf("returned cell %d is not an edge", id)
			}
			degree[u]++
			degree[v]++
		}
		for v, d := range degree {
			if d%2 != 0 {
				rt.Fatalf("vertex %d has odd degree %d in returned cycle %v: not a closed chain", v, d, res.Cycle)
			}
		}
	})
}

// TestSearchLengthMatchesBruteForceProductDistance checks the shortness
// property: Search's PathEdges (the traversed-edge count excluding the
// pivot) equals the true shortest distance from (source, 0) to
// (dest, tau) in the product space, computed independently by brute-
// force BFS.
func TestSearchLengthMatchesBruteForceProductDistance(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		beta := rapid.IntRange(1, 2).Draw(rt, "beta")
		h, ring, n := ringWithChords(rt, beta)

		res, target, err := h.run(t, ring, 0)
		if err != nil {
			rt.Fatalf("Search: %v", err)
		}

		sk := skeleton.BuildSkeleton1(h.cell2v, target.PivotID, n)
		zero := bitset.New(beta)
		want, found := bruteForceProductDistance(sk, h.store, target.Source, zero, target.Dest, target.Tau)
		if !found {
			rt.Fatal("brute force found no path, but Search succeeded")
		}
		if res.PathEdges != want {
			rt.Fatalf("Search PathEdges = %d, brute force shortest = %d", res.PathEdges, want)
		}
	})
}

// TestSearchIsIdempotent checks that two independent Search calls over
// the same input (fresh skeleton, oracle, and store each time, as the
// driver builds per invocation) return identical results: the engine has
// no hidden mutable state that leaks between runs and no nondeterminism
// in its own decisions, including how it picks among several equally
// short cycles, which the harness graphs here can have.
func TestSearchIsIdempotent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		beta := rapid.IntRange(1, 2).Draw(rt, "beta")
		h, ring, _ := ringWithChords(rt, beta)

		res1, _, err1 := h.run(t, ring, 0)
		res2, _, err2 := h.run(t, ring, 0)

		if (err1 == nil) != (err2 == nil) {
			rt.Fatalf("inconsistent errors across runs: %v vs %v", err1, err2)
		}
		if err1 != nil {
			return
		}
		if res1.PathEdges != res2.PathEdges || res1.Expanded != res2.Expanded {
			rt.Fatalf("repeated Search over identical input diverged: %+v vs %+v", res1, res2)
		}
		if len(res1.Cycle) != len(res2.Cycle) {
			rt.Fatalf("cycle length diverged: %v vs %v", res1.Cycle, res2.Cycle)
		}
		for i := range res1.Cycle {
			if res1.Cycle[i] != res2.Cycle[i] {
				rt.Fatalf("cycle contents diverged: %v vs %v", res1.Cycle, res2.Cycle)
			}
		}
	})
}
