package telemetry

// SearchStarted logs the beginning of a single column's optimal-cycle
// search.
func (r *Recorder) SearchStarted(pivot int, beta int) {
	r.log.Info().
		Str("run_id", r.runID.String()).
		Int("pivot", pivot).
		Int("beta", beta).
		Msg("search started")
}

// SearchSucceeded logs a completed search's size before/after and
// expansion count as structured fields.
func (r *Recorder) SearchSucceeded(pivot, sizeBefore, sizeAfter, expanded int) {
	r.log.Info().
		Str("run_id", r.runID.String()).
		Int("pivot", pivot).
		Int("size_before", sizeBefore).
		Int("size_after", sizeAfter).
		Int("expanded_nodes", expanded).
		Msg("search succeeded")
}

// SearchFailed logs a search that ended in an error (no feasible cycle,
// resource exhaustion, or invalid input).
func (r *Recorder) SearchFailed(pivot int, err error) {
	r.log.Warn().
		Str("run_id", r.runID.String()).
		Int("pivot", pivot).
		Err(err).
		Msg("search failed")
}
