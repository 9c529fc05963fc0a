package alns

import (
	"github.com/google/uuid"
	"github.com/walnuthoram2/ALNS/alnscore"
)

// Result is the immutable record an Iterate call returns at termination.
type Result struct {
	// RunID uniquely identifies this call, for correlating logs and
	// statistics across a fleet of independent runs.
	RunID uuid.UUID
	// Best is the best solution state found.
	Best alnscore.SolutionState
	// BestObjective caches Best.Objective(), guaranteed equal to it.
	BestObjective float64
	// Statistics is the per-iteration and per-operator bookkeeping
	// recorded over the run (empty if collect-statistics was disabled).
	Statistics Statistics
}
