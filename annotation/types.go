package annotation

import "github.com/katalvlaran/opticycle/bitset"

// VertexId identifies a 0-cell. Valid values are non-negative and < N,
// the vertex count of the ambient space.
type VertexId int

// CellId indexes a cell in filtration order.
type CellId int

// EdgeKey is the canonical identity of an edge: an unordered endpoint pair
// stored with A < B. Use NewEdgeKey to construct one; the zero value
// {0, 0} is never a valid edge key (no loops in the 1-skeleton) and is
// reserved to signal "no key" where needed.
type EdgeKey struct {
	A VertexId
	B VertexId
}

// NewEdgeKey returns the canonical key for the unordered pair {u, v},
// sorting endpoints so A < B regardless of argument order.
func NewEdgeKey(u, v VertexId) EdgeKey {
	if u <= v {
		return EdgeKey{A: u, B: v}
	}

	return EdgeKey{A: v, B: u}
}

// Cell2V maps a CellId to the VertexIds of its boundary. Only edges
// (len == 2) are consulted by this package; higher-arity cells may be
// present but are ignored.
type Cell2V map[CellId][]VertexId

// Endpoints returns the two endpoints of the edge cell id, and true, or
// (0, 0, false) if id does not name a 2-endpoint cell.
func (c Cell2V) Endpoints(id CellId) (VertexId, VertexId, bool) {
	vs, ok := c[id]
	if !ok || len(vs) != 2 {
		return 0, 0, false
	}

	return vs[0], vs[1], true
}

// EdgeMap is the total mapping from canonical edge identity to the CellId
// that names it in filtration order.
type EdgeMap map[EdgeKey]CellId

// Chain is a 1-chain: an ordered list of edge CellIds, interpreted as a
// GF(2) sum.
type Chain []CellId

// Store is a partial mapping from sentinel edges to a fixed-width
// annotation bitset. Edges absent from the Store implicitly carry the
// zero bitset.
type Store struct {
	beta    int
	entries map[EdgeKey]*bitset.Set
}

// NewStore returns an empty Store with the given fixed annotation width
// β.
func NewStore(beta int) *Store {
	return &Store{beta: beta, entries: make(map[EdgeKey]*bitset.Set)}
}

// Beta returns β, the width shared by every value this Store will ever
// hold.
func (s *Store) Beta() int { return s.beta }

// Set records the annotation of the sentinel edge key as value. value
// must have width == s.Beta(); ErrWidthMismatch otherwise. Passing a
// zero-valued bitset is legal but wasteful — omit the entry instead to
// rely on the implicit zero default.
func (s *Store) Set(key EdgeKey, value *bitset.Set) error {
	if value != nil && value.Width() != s.beta {
		return ErrWidthMismatch
	}
	s.entries[key] = value

	return nil
}

// Get returns the annotation of key: the stored bitset if key is a known
// sentinel edge, or a fresh zero bitset of width β otherwise.
func (s *Store) Get(key EdgeKey) *bitset.Set {
	if v, ok := s.entries[key]; ok && v != nil {
		return v.Clone()
	}

	return bitset.New(s.beta)
}

// Len returns the number of sentinel edges recorded (not the total edge
// count of the complex).
func (s *Store) Len() int { return len(s.entries) }

// Target is the prepared search goal for one optimal-cycle invocation:
// the annotation τ the returned path must sum to, the canonical
// source/target endpoints of the pivot edge, and the pivot's own CellId.
type Target struct {
	Tau     *bitset.Set
	Source  VertexId
	Dest    VertexId
	PivotID CellId
	Beta    int
}
