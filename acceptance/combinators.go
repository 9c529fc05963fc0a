package acceptance

import "github.com/walnuthoram2/ALNS/alnscore"

// All accepts iff every wrapped criterion accepts. Every wrapped criterion
// is evaluated regardless of earlier results: short-circuiting would leave
// some sub-criteria unevaluated on candidates they might otherwise reject.
type All struct {
	criteria []Criterion
}

// NewAll constructs an All combinator over the given criteria. A single
// wrapped criterion makes All behaviorally identical to that criterion.
func NewAll(criteria ...Criterion) (*All, error) {
	if len(criteria) == 0 {
		return nil, alnscore.NewConfigurationError("All combinator requires at least one criterion")
	}
	return &All{criteria: criteria}, nil
}

// Accept implements Criterion.
func (a *All) Accept(rng alnscore.RandomSource, bestObjective, currentObjective, candidateObjective float64) bool {
	ok := true
	for _, c := range a.criteria {
		if !c.Accept(rng, bestObjective, currentObjective, candidateObjective) {
			ok = false
		}
	}
	return ok
}

// Tick implements Ticker. It forwards to every wrapped criterion that
// itself implements Ticker; criteria without a schedule (e.g. Always,
// HillClimbing) are skipped.
func (a *All) Tick(accepted bool) {
	tickAll(a.criteria, accepted)
}

// Any accepts iff at least one wrapped criterion accepts. Every wrapped
// criterion is evaluated regardless of earlier results: short-circuiting
// would leave some sub-criteria unevaluated.
type Any struct {
	criteria []Criterion
}

// NewAny constructs an Any combinator over the given criteria.
func NewAny(criteria ...Criterion) (*Any, error) {
	if len(criteria) == 0 {
		return nil, alnscore.NewConfigurationError("Any combinator requires at least one criterion")
	}
	return &Any{criteria: criteria}, nil
}

// Accept implements Criterion.
func (a *Any) Accept(rng alnscore.RandomSource, bestObjective, currentObjective, candidateObjective float64) bool {
	ok := false
	for _, c := range a.criteria {
		if c.Accept(rng, bestObjective, currentObjective, candidateObjective) {
			ok = true
		}
	}
	return ok
}

// Tick implements Ticker, forwarding to every wrapped criterion that
// implements Ticker, as All.Tick does.
func (a *Any) Tick(accepted bool) {
	tickAll(a.criteria, accepted)
}

func tickAll(criteria []Criterion, accepted bool) {
	for _, c := range criteria {
		if t, ok := c.(Ticker); ok {
			t.Tick(accepted)
		}
	}
}
