package stopping

import "github.com/walnuthoram2/ALNS/alnscore"

// MaxIterations stops after exactly n iterations have executed. n==0 stops
// before the first iteration, so the engine never calls an operator.
type MaxIterations struct {
	remaining int
}

// NewMaxIterations constructs a MaxIterations criterion. n<0 is treated as
// 0 (stop immediately) rather than rejected.
func NewMaxIterations(n int) *MaxIterations {
	if n < 0 {
		n = 0
	}
	return &MaxIterations{remaining: n}
}

// Stop implements Criterion.
func (m *MaxIterations) Stop(rng alnscore.RandomSource, bestObjective, currentObjective float64) bool {
	if m.remaining <= 0 {
		return true
	}
	m.remaining--
	return false
}
