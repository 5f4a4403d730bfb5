package annotation

// PrepareSearch implements steps 1–4: given the already
// prepared annotation Store for the sub-complex at the class's birth
// index (supplied by the reduction pipeline's collaborator — see
// collab.ComputeEdgeAnnotations), this derives the A* engine's actual
// search goal from the input cycle.
//
// Steps:
//  1. τ ← ⊕ annotation(e) over all e in inputCycle.
//  2. pivot = last edge of inputCycle; its endpoints, sorted, become
//     (source, target) with source < target.
//  3. If the pivot itself is a sentinel edge, τ is XORed with the
//     pivot's own annotation, excluding its contribution.
//  4. The 1-skeleton adjacency restricted to CellId < pivot.CellId is
//     the caller's responsibility (skeleton.BuildSkeleton1); this
//     function only returns the pivot's CellId so the caller can apply
//     that restriction.
func PrepareSearch(inputCycle Chain, cell2v Cell2V, edgeMap EdgeMap, store *Store) (Target, error) {
	if len(inputCycle) == 0 {
		return Target{}, ErrEmptyCycle
	}

	tau := inputCycle.Annotation(cell2v, store)

	pivotID := inputCycle[len(inputCycle)-1]
	p0, p1, ok := cell2v.Endpoints(pivotID)
	if !ok {
		return Target{}, ErrPivotNotAnEdge
	}

	source, dest := p0, p1
	if source > dest {
		source, dest = dest, source
	}

	pivotKey := NewEdgeKey(source, dest)
	if _, ok = edgeMap[pivotKey]; !ok {
		return Target{}, ErrPivotNotFound
	}

	// Step 3: if the pivot is itself a sentinel edge, exclude its
	// contribution from τ so the path search (which never traverses the
	// pivot edge itself) targets the correct residual annotation.
	_ = tau.XorAssign(store.Get(pivotKey))

	return Target{
		Tau:     tau,
		Source:  source,
		Dest:    dest,
		PivotID: pivotID,
		Beta:    store.Beta(),
	}, nil
}
