package acceptance

import "github.com/walnuthoram2/ALNS/alnscore"

// ThresholdAccepting accepts a candidate that does not worsen the current
// objective by more than a decaying threshold: candidate <= current + T,
// where T decays once per iteration per its schedule.
type ThresholdAccepting struct {
	sched schedule
}

// NewThresholdAccepting constructs a ThresholdAccepting criterion with an
// explicit threshold schedule (start, end, step, method).
func NewThresholdAccepting(start, end, step float64, method Method) (*ThresholdAccepting, error) {
	sched, err := newSchedule(start, end, step, method)
	if err != nil {
		return nil, err
	}
	return &ThresholdAccepting{sched: sched}, nil
}

// Threshold returns the criterion's current threshold, for diagnostics and
// tests.
func (t *ThresholdAccepting) Threshold() float64 { return t.sched.current() }

// Accept implements Criterion. It does not itself advance the threshold
// schedule; the engine does that once per iteration via Tick.
func (t *ThresholdAccepting) Accept(rng alnscore.RandomSource, bestObjective, currentObjective, candidateObjective float64) bool {
	return candidateObjective <= currentObjective+t.sched.current()
}

// Tick implements Ticker. ThresholdAccepting decays unconditionally,
// ignoring accepted.
func (t *ThresholdAccepting) Tick(accepted bool) {
	t.sched.tick()
}
