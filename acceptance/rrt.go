package acceptance

import "github.com/walnuthoram2/ALNS/alnscore"

// RecordToRecordTravel accepts a candidate that is within a decaying
// deviation window of the best-known objective: candidate <= best + T,
// where T decays once per iteration per its schedule.
type RecordToRecordTravel struct {
	sched schedule
}

// NewRecordToRecordTravel constructs an RRT criterion with an explicit
// deviation schedule (start, end, step, method). start is the initial
// allowed deviation above best; end is the floor it decays to.
func NewRecordToRecordTravel(start, end, step float64, method Method) (*RecordToRecordTravel, error) {
	sched, err := newSchedule(start, end, step, method)
	if err != nil {
		return nil, err
	}
	return &RecordToRecordTravel{sched: sched}, nil
}

// NewRecordToRecordTravelAutofit derives start and step so that a candidate
// worse*100% worse than initialObjective would be accepted with probability
// acceptProbability, decaying to 0 over numIters, per the shared Autofit
// derivation (see autofit.go).
func NewRecordToRecordTravelAutofit(initialObjective, worse, acceptProbability float64, numIters int, method Method) (*RecordToRecordTravel, error) {
	start, end, step, err := autofitRRT(initialObjective, worse, acceptProbability, numIters, method)
	if err != nil {
		return nil, err
	}
	return NewRecordToRecordTravel(start, end, step, method)
}

// Deviation returns the criterion's current deviation window, for
// diagnostics and tests.
func (r *RecordToRecordTravel) Deviation() float64 { return r.sched.current() }

// Accept implements Criterion. It does not itself advance the deviation
// schedule; the engine does that once per iteration via Tick.
func (r *RecordToRecordTravel) Accept(rng alnscore.RandomSource, bestObjective, currentObjective, candidateObjective float64) bool {
	return candidateObjective <= bestObjective+r.sched.current()
}

// Tick implements Ticker. RecordToRecordTravel decays unconditionally,
// ignoring accepted.
func (r *RecordToRecordTravel) Tick(accepted bool) {
	r.sched.tick()
}
