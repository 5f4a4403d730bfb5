// Package opticycle finds the shortest cycle representative of a
// persistent 1-dimensional homology class.
//
// Given a 1-skeleton restricted to the cells born before some pivot
// edge, an annotation store recording each sentinel edge's homology
// coordinate, and an input cycle whose class is already known, the core
// searches the product space of (vertex, annotation) states with an
// A*-guided engine to find the shortest simple path whose edges sum, in
// GF(2), to the class's target annotation — then closes it with the
// pivot edge.
//
// The core lives across five packages:
//
//	bitset/     — GF(2) bit-vector algebra
//	annotation/ — annotation store, chain algebra, search-target preparation
//	skeleton/   — 1-skeleton adjacency and per-coordinate covering graphs
//	heuristic/  — the admissible A* heuristic oracle
//	astar/      — the search engine and cycle reconstruction
//
// reduction/ is the composition root: given a set of reduction columns
// and their persistence values, it drives the core over every
// sufficiently persistent, non-empty column and replaces it with the
// shortest homologous cycle found.
//
// config/, telemetry/, and collab/ are the ambient layers a caller needs
// to actually run the pipeline — explicit configuration, best-effort
// structured logging, and thin stand-ins for the filtration reader,
// boundary-matrix reducer, and diagram writer the core itself never
// implements. cmd/opticycle wires all of the above into a small CLI.
package opticycle
