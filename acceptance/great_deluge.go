package acceptance

import "github.com/walnuthoram2/ALNS/alnscore"

// GreatDeluge accepts any candidate below a water level that decays once
// per iteration regardless of outcome, per its schedule.
type GreatDeluge struct {
	sched schedule
}

// NewGreatDeluge constructs a GreatDeluge criterion with an explicit water
// level schedule (start, end, step, method). start is the initial water
// level; end is the floor it decays to.
func NewGreatDeluge(start, end, step float64, method Method) (*GreatDeluge, error) {
	sched, err := newSchedule(start, end, step, method)
	if err != nil {
		return nil, err
	}
	return &GreatDeluge{sched: sched}, nil
}

// WaterLevel returns the criterion's current water level, for diagnostics
// and tests.
func (g *GreatDeluge) WaterLevel() float64 { return g.sched.current() }

// Accept implements Criterion. It does not itself advance the water level
// schedule; the engine does that once per iteration via Tick.
func (g *GreatDeluge) Accept(rng alnscore.RandomSource, bestObjective, currentObjective, candidateObjective float64) bool {
	return candidateObjective < g.sched.current()
}

// Tick implements Ticker. GreatDeluge decays unconditionally, ignoring
// accepted.
func (g *GreatDeluge) Tick(accepted bool) {
	g.sched.tick()
}

// NonLinearGreatDeluge behaves like GreatDeluge, but only lowers the water
// level on iterations where the candidate is accepted: the level tracks
// actual search progress instead of ticking on a fixed schedule regardless
// of outcome.
type NonLinearGreatDeluge struct {
	sched schedule
}

// NewNonLinearGreatDeluge constructs a NonLinearGreatDeluge criterion with
// an explicit water level schedule (start, end, step, method).
func NewNonLinearGreatDeluge(start, end, step float64, method Method) (*NonLinearGreatDeluge, error) {
	sched, err := newSchedule(start, end, step, method)
	if err != nil {
		return nil, err
	}
	return &NonLinearGreatDeluge{sched: sched}, nil
}

// WaterLevel returns the criterion's current water level, for diagnostics
// and tests.
func (g *NonLinearGreatDeluge) WaterLevel() float64 { return g.sched.current() }

// Accept implements Criterion. It does not itself advance the water level
// schedule; the engine does that once per iteration via Tick.
func (g *NonLinearGreatDeluge) Accept(rng alnscore.RandomSource, bestObjective, currentObjective, candidateObjective float64) bool {
	return candidateObjective < g.sched.current()
}

// Tick implements Ticker. NonLinearGreatDeluge decays only on iterations
// whose outcome was accepted (BEST, BETTER or ACCEPT).
func (g *NonLinearGreatDeluge) Tick(accepted bool) {
	if accepted {
		g.sched.tick()
	}
}
