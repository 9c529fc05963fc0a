package acceptance

import (
	"math"

	"github.com/walnuthoram2/ALNS/alnscore"
)

// autofitStep derives the decay step that carries a schedule from start to
// end over numIters iterations, per the shared linear/exponential formulas.
func autofitStep(start, end float64, numIters int, method Method) (float64, error) {
	if numIters <= 0 {
		return 0, alnscore.NewConfigurationError("autofit requires numIters>0, got %d", numIters)
	}

	switch method {
	case Linear:
		return (start - end) / float64(numIters), nil
	case Exponential:
		if start <= 0 {
			return 0, alnscore.NewConfigurationError("exponential autofit requires start>0, got %v", start)
		}
		step := math.Pow(end/start, 1/float64(numIters))
		// Open question resolved: clamp to (0,1] by rejecting, rather than
		// silently clamping, a step driven outside range by extreme
		// acceptProbability values (near-zero underflow, near-one overflow).
		if step <= 0 || step > 1 || math.IsNaN(step) {
			return 0, alnscore.NewConfigurationError("exponential autofit derived step %v outside (0,1]", step)
		}
		return step, nil
	default:
		return 0, alnscore.NewConfigurationError("unknown threshold schedule method %v", int(method))
	}
}

// autofitSA derives (start, end, step) for SimulatedAnnealing.Autofit:
// T_start = -worse*|f_0|/ln(accept_prob), end = 1.
func autofitSA(initialObjective, worse, acceptProbability float64, numIters int, method Method) (start, end, step float64, err error) {
	if acceptProbability <= 0 || acceptProbability >= 1 {
		return 0, 0, 0, alnscore.NewConfigurationError("autofit requires acceptProbability in (0,1), got %v", acceptProbability)
	}
	if worse <= 0 {
		return 0, 0, 0, alnscore.NewConfigurationError("autofit requires worse>0, got %v", worse)
	}

	start = -worse * math.Abs(initialObjective) / math.Log(acceptProbability)
	end = 1

	step, err = autofitStep(start, end, numIters, method)
	if err != nil {
		return 0, 0, 0, err
	}
	return start, end, step, nil
}

// autofitRRT derives (start, end, step) for RecordToRecordTravel.Autofit:
// T_start = worse*|f_0|, end = 0.
func autofitRRT(initialObjective, worse, acceptProbability float64, numIters int, method Method) (start, end, step float64, err error) {
	if acceptProbability <= 0 || acceptProbability >= 1 {
		return 0, 0, 0, alnscore.NewConfigurationError("autofit requires acceptProbability in (0,1), got %v", acceptProbability)
	}
	if worse <= 0 {
		return 0, 0, 0, alnscore.NewConfigurationError("autofit requires worse>0, got %v", worse)
	}

	start = worse * math.Abs(initialObjective)
	end = 0

	step, err = autofitStep(start, end, numIters, method)
	if err != nil {
		return 0, 0, 0, err
	}
	return start, end, step, nil
}
