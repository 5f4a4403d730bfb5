// Package reduction is the pipeline's composition root: for every
// non-empty reduction column whose persistence exceeds the configured
// threshold, it computes that column's edge annotations, runs the
// optimal-cycle search, and replaces the column with the shortest
// representative cycle found. Orchestration validates once, iterates
// columns in ascending CellId order, stashes successful results in a
// side map, and applies them all back after the loop — so one column's
// failure never aborts the rest: skip empty and low-persistence
// columns, log before/after sizes, collect results, then write them
// all back.
package reduction
