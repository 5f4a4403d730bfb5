// Package telemetry provides best-effort, ignorable logging for one
// optimal-cycle search: expansion counts and a terminal outcome, tagged
// with a per-run github.com/google/uuid correlation ID and emitted via
// github.com/rs/zerolog as structured log events. This information is
// always optional and never load-bearing, so a failed write here is
// swallowed, never surfaced as an error.
package telemetry
