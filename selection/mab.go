package selection

import "github.com/walnuthoram2/ALNS/alnscore"

// ContextualPolicy is the injected bridge to an external multi-armed
// bandit implementation: a caller-supplied policy with predict(context)
// and partial_fit(arms, rewards, contexts) semantics, so MABSelector
// never depends on any one bandit library directly.
//
// Arms are the flattened (destroyIdx, repairIdx) grid, identical to
// AlphaUCB's indexing (arm = destroyIdx*numRepair + repairIdx).
type ContextualPolicy interface {
	// Predict returns the arm the policy chooses given ctx. ctx is nil when
	// RequiresContext reports false.
	Predict(ctx []float64) (arm int, err error)
	// PartialFit folds one (arm, reward, context) observation into the
	// policy's state. contexts[i] is nil when RequiresContext reports
	// false.
	PartialFit(arms []int, rewards []float64, contexts [][]float64) error
	// RequiresContext reports whether Predict/PartialFit need a non-nil
	// context vector. The engine uses this to fail fast with a
	// ConfigurationError when the initial state is not a
	// alnscore.ContextualState.
	RequiresContext() bool
}

// MABSelector adapts a ContextualPolicy to the Scheme interface: each
// operator pair is an arm, and the reward passed to the policy on every
// Update is scores[outcome]. When the wrapped policy is contextual, the
// engine is responsible for fetching a context vector from the state
// immediately before Choose (see alns.Engine.Iterate) and MABSelector
// simply forwards whatever it is given.
type MABSelector struct {
	policy     ContextualPolicy
	numDestroy int
	numRepair  int
	scores     alnscore.ScoreVector

	pendingContext []float64
	logger         alnscore.Logger
}

// SetLogger implements alnscore.LoggerAware. PartialFit failures (which
// Scheme.Update has no error return to surface) are reported through it.
func (m *MABSelector) SetLogger(l alnscore.Logger) {
	if l != nil {
		m.logger = l
	}
}

// NewMABSelector wraps policy as a Scheme over numDestroy*numRepair arms.
// Pass NewEpsilonGreedyPolicy(...) for the built-in non-contextual
// fallback when no external bandit library is available.
func NewMABSelector(policy ContextualPolicy, scores alnscore.ScoreVector, numDestroy, numRepair int) (*MABSelector, error) {
	if policy == nil {
		return nil, alnscore.NewConfigurationError("MAB selector requires a non-nil ContextualPolicy")
	}
	if numDestroy <= 0 || numRepair <= 0 {
		return nil, alnscore.NewConfigurationError("MAB selector requires numDestroy>0 and numRepair>0, got (%d,%d)", numDestroy, numRepair)
	}
	if !scores.Valid() {
		return nil, alnscore.NewConfigurationError("MAB selector scores must be finite and non-negative: %v", scores)
	}

	return &MABSelector{policy: policy, numDestroy: numDestroy, numRepair: numRepair, scores: scores, logger: alnscore.NopLogger{}}, nil
}

// NumDestroy implements Scheme.
func (m *MABSelector) NumDestroy() int { return m.numDestroy }

// NumRepair implements Scheme.
func (m *MABSelector) NumRepair() int { return m.numRepair }

// RequiresContext implements selection.RequiresContext, letting the engine
// fail fast with a ConfigurationError before the first iteration if the
// initial state cannot supply a context vector.
func (m *MABSelector) RequiresContext() bool { return m.policy.RequiresContext() }

// SetContext stores the context vector the engine fetches immediately
// before Choose, per the fixed RNG/context consumption order the engine
// enforces.
// It is intentionally not part of the Scheme interface: only the engine
// (which alone knows how to fetch a state's context) calls it.
func (m *MABSelector) SetContext(ctx []float64) { m.pendingContext = ctx }

// Choose implements Scheme by delegating to the wrapped policy.
func (m *MABSelector) Choose(rng alnscore.RandomSource, best, current alnscore.SolutionState) (int, int, error) {
	arm, err := m.policy.Predict(m.pendingContext)
	if err != nil {
		return 0, 0, err
	}
	return arm / m.numRepair, arm % m.numRepair, nil
}

// Update implements Scheme by folding the outcome's score into the wrapped
// policy as a single-observation partial fit.
func (m *MABSelector) Update(candidate alnscore.SolutionState, destroyIdx, repairIdx int, outcome alnscore.OutcomeCategory) {
	arm := destroyIdx*m.numRepair + repairIdx
	reward := m.scores.Get(outcome)
	if err := m.policy.PartialFit([]int{arm}, []float64{reward}, [][]float64{m.pendingContext}); err != nil {
		m.logger.Warn("MAB selector partial fit failed", map[string]any{
			"arm":   arm,
			"error": err.Error(),
		})
	}
}
