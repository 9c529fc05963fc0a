package selection

import "github.com/walnuthoram2/ALNS/alnscore"

// SegmentedRouletteWheel behaves exactly like RouletteWheel for sampling,
// but instead of folding each outcome's score into the weight vectors
// immediately, it accumulates a per-operator segment score sigma (a sum,
// not an average — this matches the published scheme) over segLength
// iterations. At each segment boundary the accumulated sigma is folded
// into the weights via the same decay convex combination RouletteWheel
// uses, and sigma resets to zero.
type SegmentedRouletteWheel struct {
	base *RouletteWheel

	segLength int
	tick      int

	destroySigma []float64
	repairSigma  []float64
	destroyUsage []uint64
	repairUsage  []uint64
}

// NewSegmentedRouletteWheel constructs a SegmentedRouletteWheel. segLength
// must be positive; scores/decay/operator counts are validated exactly as
// in NewRouletteWheel.
func NewSegmentedRouletteWheel(scores alnscore.ScoreVector, decay float64, segLength, numDestroy, numRepair int) (*SegmentedRouletteWheel, error) {
	if segLength <= 0 {
		return nil, alnscore.NewConfigurationError("segmented roulette wheel requires segLength>0, got %d", segLength)
	}
	base, err := NewRouletteWheel(scores, decay, numDestroy, numRepair)
	if err != nil {
		return nil, err
	}

	return &SegmentedRouletteWheel{
		base:         base,
		segLength:    segLength,
		destroySigma: make([]float64, numDestroy),
		repairSigma:  make([]float64, numRepair),
		destroyUsage: make([]uint64, numDestroy),
		repairUsage:  make([]uint64, numRepair),
	}, nil
}

// SetLogger implements alnscore.LoggerAware by forwarding to the
// underlying RouletteWheel.
func (s *SegmentedRouletteWheel) SetLogger(l alnscore.Logger) { s.base.SetLogger(l) }

// NumDestroy implements Scheme.
func (s *SegmentedRouletteWheel) NumDestroy() int { return s.base.NumDestroy() }

// NumRepair implements Scheme.
func (s *SegmentedRouletteWheel) NumRepair() int { return s.base.NumRepair() }

// Choose implements Scheme by delegating to the (unmodified-between-
// segment-boundaries) underlying weight vectors.
func (s *SegmentedRouletteWheel) Choose(rng alnscore.RandomSource, best, current alnscore.SolutionState) (int, int, error) {
	return s.base.Choose(rng, best, current)
}

// Update implements Scheme by accumulating into the segment sigma vectors
// and, once segLength iterations have elapsed, folding sigma into the
// weights and resetting it.
func (s *SegmentedRouletteWheel) Update(candidate alnscore.SolutionState, destroyIdx, repairIdx int, outcome alnscore.OutcomeCategory) {
	score := s.base.scores.Get(outcome)
	s.destroySigma[destroyIdx] += score
	s.repairSigma[repairIdx] += score
	s.destroyUsage[destroyIdx]++
	s.repairUsage[repairIdx]++

	s.tick++
	if s.tick < s.segLength {
		return
	}

	decay := s.base.decay
	for i := range s.base.destroyWeights {
		s.base.destroyWeights[i] = decay*s.base.destroyWeights[i] + (1-decay)*s.destroySigma[i]
		s.destroySigma[i] = 0
	}
	for i := range s.base.repairWeights {
		s.base.repairWeights[i] = decay*s.base.repairWeights[i] + (1-decay)*s.repairSigma[i]
		s.repairSigma[i] = 0
	}
	for i := range s.destroyUsage {
		s.destroyUsage[i] = 0
	}
	for i := range s.repairUsage {
		s.repairUsage[i] = 0
	}
	s.tick = 0
}

// DestroyUsage returns the number of times each destroy operator has been
// selected within the current (not-yet-closed) segment. Exposed for
// diagnostics/tests only; it has no bearing on the weight update.
func (s *SegmentedRouletteWheel) DestroyUsage() []uint64 {
	out := make([]uint64, len(s.destroyUsage))
	copy(out, s.destroyUsage)
	return out
}

// RepairUsage returns the number of times each repair operator has been
// selected within the current (not-yet-closed) segment.
func (s *SegmentedRouletteWheel) RepairUsage() []uint64 {
	out := make([]uint64, len(s.repairUsage))
	copy(out, s.repairUsage)
	return out
}
