package astar

// openPQ is a min-heap of *node ordered by f ascending, using a
// lazy-deletion idiom: improved entries are pushed rather than fixed in
// place, and stale entries are recognized and skipped when popped (see
// run's bestG check).
type openPQ []*node

func (pq openPQ) Len() int { return len(pq) }

func (pq openPQ) Less(i, j int) bool { return pq[i].f < pq[j].f }

func (pq openPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *openPQ) Push(x interface{}) { *pq = append(*pq, x.(*node)) }

func (pq *openPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
