package alnsconfig

import (
	"github.com/walnuthoram2/ALNS/acceptance"
	"github.com/walnuthoram2/ALNS/alnscore"
	"github.com/walnuthoram2/ALNS/selection"
	"github.com/walnuthoram2/ALNS/stopping"
)

// Build turns a RunConfig into concrete scheme/criterion instances ready
// to pass to alns.Engine.Iterate. It does not construct the Engine itself
// (operator registration stays explicit Go code, not config), only the
// three strategy objects. Seed, StrictMode and CollectStatistics are not
// turned into engine options here; the caller applies them itself.
func (c RunConfig) Build() (selection.Scheme, acceptance.Criterion, stopping.Criterion, error) {
	scheme, err := c.Selection.build()
	if err != nil {
		return nil, nil, nil, err
	}
	crit, err := c.Acceptance.build()
	if err != nil {
		return nil, nil, nil, err
	}
	stop, err := c.Stopping.build()
	if err != nil {
		return nil, nil, nil, err
	}
	return scheme, crit, stop, nil
}

func (c SelectionConfig) build() (selection.Scheme, error) {
	scores := alnscore.ScoreVector{c.Scores[0], c.Scores[1], c.Scores[2], c.Scores[3]}

	switch c.Scheme {
	case "roulette_wheel":
		return selection.NewRouletteWheel(scores, c.Decay, c.NumDestroy, c.NumRepair)
	case "segmented_roulette_wheel":
		return selection.NewSegmentedRouletteWheel(scores, c.Decay, c.SegmentLength, c.NumDestroy, c.NumRepair)
	case "alpha_ucb":
		return selection.NewAlphaUCB(scores, c.Alpha, c.NumDestroy, c.NumRepair)
	default:
		return nil, alnscore.NewConfigurationError("unknown selection scheme %q", c.Scheme)
	}
}

func parseMethod(s string) (acceptance.Method, error) {
	switch s {
	case "", "linear":
		return acceptance.Linear, nil
	case "exponential":
		return acceptance.Exponential, nil
	default:
		return 0, alnscore.NewConfigurationError("unknown threshold schedule method %q", s)
	}
}

func (c AcceptanceConfig) build() (acceptance.Criterion, error) {
	method, err := parseMethod(c.Method)
	if err != nil {
		return nil, err
	}

	switch c.Criterion {
	case "always":
		return acceptance.NewAlways(), nil
	case "hill_climbing":
		return acceptance.NewHillClimbing(), nil
	case "late_acceptance":
		return acceptance.NewLateAcceptance(c.InitialObjective, c.Length, c.Greedy, c.BetterHistory)
	case "record_to_record_travel":
		if c.Autofit {
			return acceptance.NewRecordToRecordTravelAutofit(c.InitialObjective, c.Worse, c.AcceptProbability, c.NumIters, method)
		}
		return acceptance.NewRecordToRecordTravel(c.Start, c.End, c.Step, method)
	case "simulated_annealing":
		if c.Autofit {
			return acceptance.NewSimulatedAnnealingAutofit(c.InitialObjective, c.Worse, c.AcceptProbability, c.NumIters, method)
		}
		return acceptance.NewSimulatedAnnealing(c.Start, c.End, c.Step, method)
	case "threshold_accepting":
		return acceptance.NewThresholdAccepting(c.Start, c.End, c.Step, method)
	case "great_deluge":
		return acceptance.NewGreatDeluge(c.Start, c.End, c.Step, method)
	case "non_linear_great_deluge":
		return acceptance.NewNonLinearGreatDeluge(c.Start, c.End, c.Step, method)
	default:
		return nil, alnscore.NewConfigurationError("unknown acceptance criterion %q", c.Criterion)
	}
}

func (c StoppingConfig) build() (stopping.Criterion, error) {
	switch c.Criterion {
	case "max_iterations":
		return stopping.NewMaxIterations(c.MaxIterations), nil
	case "max_runtime":
		return stopping.NewMaxRuntime(c.MaxRuntimeSeconds)
	case "no_improvement":
		return stopping.NewNoImprovement(c.NoImprovementMaxIters)
	default:
		return nil, alnscore.NewConfigurationError("unknown stopping criterion %q", c.Criterion)
	}
}
