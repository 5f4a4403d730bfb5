package telemetry

import (
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Recorder logs one optimal-cycle search's lifecycle events, correlated by
// a single run ID across every line it emits.
type Recorder struct {
	log   zerolog.Logger
	runID uuid.UUID
}

// New returns a Recorder writing to w (use io.Discard to silence it
// entirely) with a freshly generated run ID.
func New(w io.Writer) *Recorder {
	return &Recorder{
		log:   zerolog.New(w).With().Timestamp().Logger(),
		runID: uuid.New(),
	}
}

// RunID returns the correlation ID shared by every line this Recorder
// emits.
func (r *Recorder) RunID() uuid.UUID { return r.runID }
