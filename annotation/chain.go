package annotation

import "github.com/katalvlaran/opticycle/bitset"

// Annotation folds the chain's edges through store with XOR:
// annotation(chain) = ⊕_{e ∈ chain} annotation(e). Edges that are not
// valid 2-endpoint cells in cell2v are skipped (their contribution
// cannot be looked up and is treated as the implicit zero assigned to
// unknown/absent edges).
func (c Chain) Annotation(cell2v Cell2V, store *Store) *bitset.Set {
	acc := bitset.New(store.Beta())
	for _, id := range c {
		u, v, ok := cell2v.Endpoints(id)
		if !ok {
			continue
		}
		edgeAnn := store.Get(NewEdgeKey(u, v))
		_ = acc.XorAssign(edgeAnn) // same Store ⇒ same width, never mismatches
	}

	return acc
}
