package acceptance

import "github.com/walnuthoram2/ALNS/alnscore"

// Method selects how a threshold/temperature schedule decays once per
// iteration.
type Method int

const (
	// Linear decays by a fixed step each iteration: T <- max(end, T-step).
	Linear Method = iota
	// Exponential decays by a fixed ratio each iteration: T <- max(end, T*step).
	Exponential
)

// String renders the method for logging/test output.
func (m Method) String() string {
	switch m {
	case Linear:
		return "linear"
	case Exponential:
		return "exponential"
	default:
		return "unknown"
	}
}

// schedule is the shared threshold/temperature state every threshold-style
// criterion (RecordToRecordTravel, SimulatedAnnealing, ThresholdAccepting,
// GreatDeluge, NonLinearGreatDeluge) embeds. It owns validation of
// (start, end, step, method) and the single per-iteration decay step.
type schedule struct {
	value  float64
	end    float64
	step   float64
	method Method
}

// newSchedule validates and constructs a schedule: end must be in
// [0, start]; step must be >= 0 for Linear and in (0,1] for Exponential.
func newSchedule(start, end, step float64, method Method) (schedule, error) {
	if end < 0 {
		return schedule{}, alnscore.NewConfigurationError("threshold schedule requires end>=0, got %v", end)
	}
	if end > start {
		return schedule{}, alnscore.NewConfigurationError("threshold schedule requires end<=start, got start=%v end=%v", start, end)
	}

	switch method {
	case Linear:
		if step < 0 {
			return schedule{}, alnscore.NewConfigurationError("linear threshold schedule requires step>=0, got %v", step)
		}
	case Exponential:
		if step <= 0 || step > 1 {
			return schedule{}, alnscore.NewConfigurationError("exponential threshold schedule requires step in (0,1], got %v", step)
		}
	default:
		return schedule{}, alnscore.NewConfigurationError("unknown threshold schedule method %v", int(method))
	}

	return schedule{value: start, end: end, step: step, method: method}, nil
}

// current returns the schedule's present threshold/temperature value.
func (s *schedule) current() float64 { return s.value }

// tick advances the schedule by one decay step:
// linear: T <- max(end, T-step); exponential: T <- max(end, T*step).
func (s *schedule) tick() {
	switch s.method {
	case Linear:
		s.value -= s.step
	case Exponential:
		s.value *= s.step
	}
	if s.value < s.end {
		s.value = s.end
	}
}
