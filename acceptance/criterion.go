package acceptance

import "github.com/walnuthoram2/ALNS/alnscore"

// Criterion is the shared interface every acceptance variant implements.
// It is consulted only for candidates that are neither a new best nor
// strictly better than current (the engine classifies those outcomes
// itself, before ever calling Accept). All criteria operate on objective
// values already resolved by the caller, not on SolutionState values.
type Criterion interface {
	// Accept reports whether candidateObjective should replace
	// currentObjective, given the best-known objective so far. It is a pure
	// comparison: threshold-style criteria read their current schedule
	// value but do not advance it (see Ticker).
	Accept(rng alnscore.RandomSource, bestObjective, currentObjective, candidateObjective float64) bool
}

// Ticker is implemented by acceptance criteria (and combinators wrapping
// them) that decay an internal schedule once per iteration, independent
// of how many times — zero or more — Accept is itself invoked. The engine
// calls Tick exactly once per iteration, immediately after
// Scheme.Update, passing whether the iteration's outcome was anything
// other than Reject. Criteria that don't decay (Always, HillClimbing,
// LateAcceptance) simply don't implement this interface.
//
// Decoupling the decay from Accept matters for criteria whose parameters
// are measured by calling Accept directly and repeatedly at a fixed
// schedule value (e.g. an autofit acceptance-probability check): ticking
// inside Accept would make every such measurement call advance the
// schedule, corrupting the measurement.
type Ticker interface {
	// Tick advances the criterion's schedule by one step. accepted
	// reports whether this iteration's candidate replaced current (BEST,
	// BETTER or ACCEPT); most threshold-style criteria ignore it and
	// decay unconditionally, but NonLinearGreatDeluge decays only when
	// accepted is true.
	Tick(accepted bool)
}
