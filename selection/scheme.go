package selection

import "github.com/walnuthoram2/ALNS/alnscore"

// Scheme is the shared interface every operator-selection variant
// implements. Construction (which differs per variant) takes the score
// vector and the registered operator counts; the engine only ever talks to
// a Scheme through these two methods after that.
type Scheme interface {
	// Choose returns the indices of the destroy and repair operator to run
	// this iteration. best and current are exposed for schemes that weigh
	// the search's progress into the choice (none of the four built-in
	// schemes need them today, but the interface carries them so a future
	// variant, or an injected ContextualPolicy-backed one, can).
	Choose(rng alnscore.RandomSource, best, current alnscore.SolutionState) (destroyIdx, repairIdx int, err error)

	// Update feeds back the outcome of the just-evaluated candidate,
	// produced by the operator pair returned from the most recent Choose.
	Update(candidate alnscore.SolutionState, destroyIdx, repairIdx int, outcome alnscore.OutcomeCategory)

	// NumDestroy and NumRepair report the operator-count arity the scheme
	// was constructed with, so the engine can fail fast with a
	// ConfigurationError when they disagree with what was registered.
	NumDestroy() int
	NumRepair() int
}

// RequiresContext is implemented by schemes that need a ContextualState
// (selection.MABSelector wrapping a contextual ContextualPolicy). The
// engine type-asserts for this interface once, before the first iteration,
// so it can fail fast with a ConfigurationError instead of panicking deep
// inside Choose.
type RequiresContext interface {
	RequiresContext() bool
}
