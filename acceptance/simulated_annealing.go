package acceptance

import (
	"math"

	"github.com/walnuthoram2/ALNS/alnscore"
)

// SimulatedAnnealing accepts any improving candidate outright, and an
// uphill candidate with Metropolis probability exp(-(candidate-current)/T),
// where T decays once per iteration per its schedule.
type SimulatedAnnealing struct {
	sched schedule
}

// NewSimulatedAnnealing constructs a SimulatedAnnealing criterion with an
// explicit temperature schedule (start, end, step, method).
func NewSimulatedAnnealing(start, end, step float64, method Method) (*SimulatedAnnealing, error) {
	sched, err := newSchedule(start, end, step, method)
	if err != nil {
		return nil, err
	}
	return &SimulatedAnnealing{sched: sched}, nil
}

// NewSimulatedAnnealingAutofit derives the start temperature and decay step
// so that a candidate worse*100% worse than initialObjective would be
// accepted with probability acceptProbability, decaying to 1 over numIters,
// per the shared Autofit derivation (see autofit.go).
func NewSimulatedAnnealingAutofit(initialObjective, worse, acceptProbability float64, numIters int, method Method) (*SimulatedAnnealing, error) {
	start, end, step, err := autofitSA(initialObjective, worse, acceptProbability, numIters, method)
	if err != nil {
		return nil, err
	}
	return NewSimulatedAnnealing(start, end, step, method)
}

// Temperature returns the criterion's current temperature, for diagnostics
// and tests.
func (s *SimulatedAnnealing) Temperature() float64 { return s.sched.current() }

// Accept implements Criterion. It does not itself advance the
// temperature schedule; the engine does that once per iteration via Tick.
func (s *SimulatedAnnealing) Accept(rng alnscore.RandomSource, bestObjective, currentObjective, candidateObjective float64) bool {
	delta := candidateObjective - currentObjective

	switch {
	case delta <= 0:
		return true
	case s.sched.current() <= 0:
		return false
	default:
		u := rng.Float64()
		return math.Exp(-delta/s.sched.current()) >= u
	}
}

// Tick implements Ticker. SimulatedAnnealing decays unconditionally,
// ignoring accepted.
func (s *SimulatedAnnealing) Tick(accepted bool) {
	s.sched.tick()
}
