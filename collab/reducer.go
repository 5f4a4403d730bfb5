package collab

import "sort"

// StandardReducer implements MatrixReducer with the textbook GF(2) column
// reduction used throughout persistent homology: columns are processed in
// filtration order, and a column is repeatedly XORed with any earlier
// column sharing its current low (maximum) row, until its low is unique
// or it becomes empty. This is a toy reducer — not tuned for the large
// matrices a real persistence computation produces — sized for the small
// complexes this repository's tests and CLI demo exercise.
type StandardReducer struct{}

// Reduce implements MatrixReducer.
func (StandardReducer) Reduce(columns []BoundaryColumn) (ReductionResult, error) {
	return ReduceBoundaryMatrix(columns)
}

// ReduceBoundaryMatrix performs the reduction described on StandardReducer
// and returns the low-pivot map alongside the fully reduced columns.
func ReduceBoundaryMatrix(columns []BoundaryColumn) (ReductionResult, error) {
	reduced := make([]BoundaryColumn, len(columns))
	for i, c := range columns {
		cp := make(BoundaryColumn, len(c))
		copy(cp, c)
		reduced[i] = cp
	}

	lowOf := func(c BoundaryColumn) (int, bool) {
		if len(c) == 0 {
			return 0, false
		}

		return c[len(c)-1], true
	}

	lowToCol := make(map[int]int, len(columns))
	low := make(map[int]int, len(columns))

	for j := range reduced {
		for {
			l, ok := lowOf(reduced[j])
			if !ok {
				break
			}
			prev, exists := lowToCol[l]
			if !exists {
				lowToCol[l] = j
				low[j] = l

				break
			}
			reduced[j] = xorColumns(reduced[j], reduced[prev])
		}
	}

	return ReductionResult{Low: low, Reduced: reduced}, nil
}

// xorColumns returns the GF(2) symmetric difference of two sorted row-
// index lists, preserving ascending order.
func xorColumns(a, b BoundaryColumn) BoundaryColumn {
	set := make(map[int]struct{}, len(a)+len(b))
	for _, r := range a {
		set[r] = struct{}{}
	}
	for _, r := range b {
		if _, ok := set[r]; ok {
			delete(set, r)
		} else {
			set[r] = struct{}{}
		}
	}

	out := make(BoundaryColumn, 0, len(set))
	for r := range set {
		out = append(out, r)
	}
	sort.Ints(out)

	return out
}
