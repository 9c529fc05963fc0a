package stopping

import "github.com/walnuthoram2/ALNS/alnscore"

// Criterion is the shared interface every stopping variant implements. It
// is consulted at the top of each iteration, strictly before the
// selection scheme, destroy/repair operators, or acceptance criterion draw
// any random numbers or do any work.
type Criterion interface {
	// Stop reports whether the engine should halt before starting another
	// iteration. bestObjective and currentObjective reflect the state as
	// of the end of the previous iteration (or the initial solution,
	// before the first).
	Stop(rng alnscore.RandomSource, bestObjective, currentObjective float64) bool
}
