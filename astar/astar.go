package astar

import (
	"container/heap"

	"github.com/katalvlaran/opticycle/annotation"
	"github.com/katalvlaran/opticycle/bitset"
	"github.com/katalvlaran/opticycle/heuristic"
	"github.com/katalvlaran/opticycle/skeleton"
)

// DefaultMaxExpansions bounds the number of states popped and finalized
// before giving up with ErrResourceExhausted, when the caller passes
// maxExpansions ≤ 0. It is generous enough not to trip on realistic
// scenarios while still bounding a runaway search.
const DefaultMaxExpansions = 1_000_000

// Search runs the A* traversal over sk's vertices crossed with store's
// annotation space, from target.Source (annotation zero) to target.Dest
// (annotation target.Tau), using oracle as h. edgeMap resolves traversed
// (from,to) pairs back to CellIds during reconstruction. maxExpansions ≤
// 0 substitutes DefaultMaxExpansions.
//
// Search returns ErrNoFeasibleCycle if the open set empties first, or
// ErrResourceExhausted if the expansion bound is hit first.
func Search(sk *skeleton.Skeleton1, store *annotation.Store, oracle Heuristic, edgeMap annotation.EdgeMap, target annotation.Target, maxExpansions int) (*Result, error) {
	r, err := newRunner(sk, store, oracle, edgeMap, target)
	if err != nil {
		return nil, err
	}
	if maxExpansions <= 0 {
		maxExpansions = DefaultMaxExpansions
	}

	return r.run(maxExpansions)
}

// newRunner validates Search's arguments and builds a fresh runner over
// them, with instrumentation hooks left at their zero values.
func newRunner(sk *skeleton.Skeleton1, store *annotation.Store, oracle Heuristic, edgeMap annotation.EdgeMap, target annotation.Target) (*runner, error) {
	if sk == nil || store == nil || oracle == nil || edgeMap == nil {
		return nil, ErrInvalidInput
	}

	return &runner{
		sk:      sk,
		store:   store,
		oracle:  oracle,
		edgeMap: edgeMap,
		target:  target,
		bestG:   make(map[stateKey]int, 1024),
		closed:  make(map[stateKey]bool, 1024),
		arena:   make([]prevLink, 0, 1024),
	}, nil
}

// runner holds the mutable state of a single Search invocation.
type runner struct {
	sk      *skeleton.Skeleton1
	store   *annotation.Store
	oracle  Heuristic
	edgeMap annotation.EdgeMap
	target  annotation.Target

	open   openPQ
	bestG  map[stateKey]int
	closed map[stateKey]bool
	arena  []prevLink

	// onFinalize, if set, is called with the f-value of every state as it
	// is popped and finalized (closed). Nil in production use; tests set
	// it to record the closed-set's f-order without perturbing the search
	// itself.
	onFinalize func(f int)
}

func (r *runner) run(maxExpansions int) (*Result, error) {
	s0 := bitset.New(r.target.Beta)
	k0 := stateKey{v: r.target.Source, s: s0.Key()}
	r.bestG[k0] = 0

	heap.Init(&r.open)
	heap.Push(&r.open, &node{
		v:       r.target.Source,
		s:       s0,
		sKey:    k0.s,
		g:       0,
		f:       r.oracle.H(r.target.Source, s0),
		prevIdx: -1,
	})

	expanded := 0
	for r.open.Len() > 0 {
		cur := heap.Pop(&r.open).(*node)
		key := stateKey{v: cur.v, s: cur.sKey}

		// Stale lazy-deletion entry: a better g for this state was pushed
		// after cur, or the state is already finalized.
		if r.closed[key] || cur.g > r.bestG[key] {
			continue
		}
		r.closed[key] = true
		expanded++
		if r.onFinalize != nil {
			r.onFinalize(cur.f)
		}

		if cur.v == r.target.Dest && cur.s.Equal(r.target.Tau) {
			cycle, err := r.reconstruct(cur.prevIdx)
			if err != nil {
				return nil, err
			}

			return &Result{Cycle: cycle, Expanded: expanded, PathEdges: cur.g}, nil
		}

		if expanded > maxExpansions {
			return nil, ErrResourceExhausted
		}

		r.expand(cur)
	}

	return nil, ErrNoFeasibleCycle
}

// expand relaxes every neighbor of cur.v, pushing an improved successor
// node for each neighbor whose new g strictly improves on its best known
// g.
func (r *runner) expand(cur *node) {
	// A successor's arena entry points back to cur via cur.prevIdx: the
	// index of the arena entry that recorded the edge reaching cur (-1 at
	// the source).
	curArenaIdx := cur.prevIdx

	for _, w := range r.sk.Neighbors(cur.v) {
		edgeKey := annotation.NewEdgeKey(cur.v, w)
		ann := r.store.Get(edgeKey)
		newS, err := cur.s.Xor(ann)
		if err != nil {
			continue // width mismatch: malformed store entry, skip defensively
		}

		newG := cur.g + 1
		key := stateKey{v: w, s: newS.Key()}
		if best, ok := r.bestG[key]; ok && newG >= best {
			continue
		}
		if r.closed[key] {
			continue
		}

		h := r.oracle.H(w, newS)
		if h >= heuristic.Infeasible {
			continue
		}

		r.bestG[key] = newG
		r.arena = append(r.arena, prevLink{parent: curArenaIdx, from: cur.v, to: w})
		heap.Push(&r.open, &node{
			v:       w,
			s:       newS,
			sKey:    key.s,
			g:       newG,
			f:       newG + h,
			prevIdx: len(r.arena) - 1,
		})
	}
}
