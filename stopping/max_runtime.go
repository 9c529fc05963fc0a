package stopping

import (
	"time"

	"github.com/walnuthoram2/ALNS/alnscore"
)

// nowFunc is swapped out in tests; production code always uses time.Now.
var nowFunc = time.Now

// MaxRuntime stops once wall-clock time elapsed since its first Stop call
// exceeds a fixed budget. The first call only establishes the start time
// and never itself halts the engine.
type MaxRuntime struct {
	budget  time.Duration
	start   time.Time
	started bool
}

// NewMaxRuntime constructs a MaxRuntime criterion with a budget expressed
// in seconds, matching the engine's objective/time conventions of plain
// float64 units rather than time.Duration at the public surface.
func NewMaxRuntime(seconds float64) (*MaxRuntime, error) {
	if seconds <= 0 {
		return nil, alnscore.NewConfigurationError("max runtime requires seconds>0, got %v", seconds)
	}
	return &MaxRuntime{budget: time.Duration(seconds * float64(time.Second))}, nil
}

// Stop implements Criterion.
func (m *MaxRuntime) Stop(rng alnscore.RandomSource, bestObjective, currentObjective float64) bool {
	now := nowFunc()
	if !m.started {
		m.start = now
		m.started = true
		return false
	}
	return now.Sub(m.start) > m.budget
}
