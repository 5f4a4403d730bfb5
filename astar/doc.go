// Package astar implements the core optimal-cycle search: an A*-style
// traversal of the product space (vertex × accumulated annotation),
// guided by the heuristic.Oracle, terminating when the target state is
// popped and reconstructing the shortest representative cycle.
//
// The open set is a binary heap ordered by f = g + h, using a
// lazy-deletion idiom: rather than supporting an in-place heap.Fix-based
// decrease-key, duplicate, improved entries are pushed and stale entries
// are recognized and skipped at pop time by comparing against a
// best-known-g map.
//
// Back-pointers are stored in a shared arena instead of per-node growing slices, so
// memory scales with the number of edges actually traversed rather than
// with (nodes expanded) × (average path length).
//
// Search takes its lower-bound oracle as the Heuristic interface rather
// than a concrete *heuristic.Oracle, so a zero heuristic can degrade the
// same engine to plain uniform-cost search for a brute-force comparison
// mode without a second search implementation.
package astar
