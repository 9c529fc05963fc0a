package selection

import "github.com/walnuthoram2/ALNS/alnscore"

// RouletteWheel samples a destroy and a repair operator independently,
// proportional to two weight vectors initialized to 1, and updates both
// vectors toward the observed outcome's score via a convex combination:
//
//	w[i] <- decay*w[i] + (1-decay)*score[outcome]
//
// Weights never go negative; if an entire weight vector degenerates to all
// zero, Choose falls back to uniform sampling for that side and a warning
// is logged.
type RouletteWheel struct {
	scores alnscore.ScoreVector
	decay  float64

	destroyWeights []float64
	repairWeights  []float64

	logger alnscore.Logger
}

// NewRouletteWheel constructs a RouletteWheel over numDestroy destroy
// operators and numRepair repair operators, using scores to credit
// observed outcomes and decay to control how quickly old weight is
// forgotten (decay==1 never updates; decay==0 replaces the weight outright
// each time).
func NewRouletteWheel(scores alnscore.ScoreVector, decay float64, numDestroy, numRepair int) (*RouletteWheel, error) {
	if numDestroy <= 0 || numRepair <= 0 {
		return nil, alnscore.NewConfigurationError("roulette wheel requires numDestroy>0 and numRepair>0, got (%d,%d)", numDestroy, numRepair)
	}
	if decay < 0 || decay > 1 {
		return nil, alnscore.NewConfigurationError("roulette wheel decay must be in [0,1], got %v", decay)
	}
	if !scores.Valid() {
		return nil, alnscore.NewConfigurationError("roulette wheel scores must be finite and non-negative: %v", scores)
	}

	dw := make([]float64, numDestroy)
	rw := make([]float64, numRepair)
	for i := range dw {
		dw[i] = 1
	}
	for i := range rw {
		rw[i] = 1
	}

	return &RouletteWheel{
		scores:         scores,
		decay:          decay,
		destroyWeights: dw,
		repairWeights:  rw,
		logger:         alnscore.NopLogger{},
	}, nil
}

// SetLogger implements alnscore.LoggerAware.
func (rw *RouletteWheel) SetLogger(l alnscore.Logger) {
	if l != nil {
		rw.logger = l
	}
}

// NumDestroy implements Scheme.
func (rw *RouletteWheel) NumDestroy() int { return len(rw.destroyWeights) }

// NumRepair implements Scheme.
func (rw *RouletteWheel) NumRepair() int { return len(rw.repairWeights) }

// Choose implements Scheme by sampling each side proportional to its
// weight vector, falling back to uniform sampling when a vector has
// degenerated to all zero.
func (rw *RouletteWheel) Choose(rng alnscore.RandomSource, best, current alnscore.SolutionState) (int, int, error) {
	d := sampleWeighted(rng, rw.destroyWeights, rw.logger, "destroy")
	r := sampleWeighted(rng, rw.repairWeights, rw.logger, "repair")
	return d, r, nil
}

// Update implements Scheme by pulling both weight vectors toward the
// observed score via the decay convex combination.
func (rw *RouletteWheel) Update(candidate alnscore.SolutionState, destroyIdx, repairIdx int, outcome alnscore.OutcomeCategory) {
	score := rw.scores.Get(outcome)
	rw.destroyWeights[destroyIdx] = rw.decay*rw.destroyWeights[destroyIdx] + (1-rw.decay)*score
	rw.repairWeights[repairIdx] = rw.decay*rw.repairWeights[repairIdx] + (1-rw.decay)*score
}

// sampleWeighted draws an index from weights proportional to their value,
// falling back to a uniform draw (and a logged warning) when every weight
// is zero or negative (defensive: Update never produces negatives given
// non-negative scores and decay in [0,1], but a caller-supplied score
// vector could be exactly all-zero).
func sampleWeighted(rng alnscore.RandomSource, weights []float64, logger alnscore.Logger, side string) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		logger.Warn("roulette wheel weights degenerated to all-zero; falling back to uniform sampling", map[string]any{
			"side": side,
		})
		return rng.Intn(len(weights))
	}

	target := rng.Float64() * total
	cumulative := 0.0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		cumulative += w
		if target < cumulative {
			return i
		}
	}
	// Floating-point edge case: target landed exactly on the running total.
	return len(weights) - 1
}
