// Package collab implements the optimal-cycle core's external
// collaborator boundary: a filtration reader, a boundary-matrix reducer,
// and a reduction-column writer. None of these are a competing
// persistent-homology engine — each is the minimal, concrete stand-in
// needed to drive the optimal-cycle core (bitset/annotation/skeleton
// /heuristic/astar) end to end in tests and the CLI, over a fixed binary
// layout for the filtration and the reduction output.
package collab
