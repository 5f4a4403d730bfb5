package astar

import (
	"sort"

	"github.com/katalvlaran/opticycle/annotation"
)

// reconstruct walks the arena chain from terminalIdx back to the source
// (-1), resolves each traversed (from,to) pair to its CellId via
// r.edgeMap, appends the pivot's CellId, and sorts the result ascending.
// An edge absent from edgeMap means the skeleton and edgeMap were built
// from inconsistent inputs, surfaced as ErrInvalidInput rather than a
// panic.
func (r *runner) reconstruct(terminalIdx int) ([]annotation.CellId, error) {
	out := make([]annotation.CellId, 0, 8)
	idx := terminalIdx
	for idx != -1 {
		link := r.arena[idx]
		key := annotation.NewEdgeKey(link.from, link.to)
		id, ok := r.edgeMap[key]
		if !ok {
			return nil, ErrInvalidInput
		}
		out = append(out, id)
		idx = link.parent
	}
	out = append(out, r.target.PivotID)

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}
