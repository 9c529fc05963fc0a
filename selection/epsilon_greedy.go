package selection

import "github.com/walnuthoram2/ALNS/alnscore"

// EpsilonGreedyPolicy is the built-in, non-contextual ContextualPolicy
// implementation used when no external bandit library is injected. It
// tracks a running mean reward per arm (the same incremental-average
// update AlphaUCB uses) and, with probability epsilon, explores a
// uniformly random arm instead of exploiting the current best.
type EpsilonGreedyPolicy struct {
	epsilon float64
	rng     alnscore.RandomSource

	numArms int
	plays   []uint64
	mean    []float64
}

// NewEpsilonGreedyPolicy constructs an EpsilonGreedyPolicy over numArms
// arms. epsilon must be in [0,1]; rng drives both the exploration coin
// flip and the uniform arm draw when exploring.
func NewEpsilonGreedyPolicy(numArms int, epsilon float64, rng alnscore.RandomSource) (*EpsilonGreedyPolicy, error) {
	if numArms <= 0 {
		return nil, alnscore.NewConfigurationError("epsilon-greedy policy requires numArms>0, got %d", numArms)
	}
	if epsilon < 0 || epsilon > 1 {
		return nil, alnscore.NewConfigurationError("epsilon-greedy policy requires epsilon in [0,1], got %v", epsilon)
	}
	if rng == nil {
		return nil, alnscore.NewConfigurationError("epsilon-greedy policy requires a non-nil RandomSource")
	}

	return &EpsilonGreedyPolicy{
		epsilon: epsilon,
		rng:     rng,
		numArms: numArms,
		plays:   make([]uint64, numArms),
		mean:    make([]float64, numArms),
	}, nil
}

// RequiresContext implements ContextualPolicy; the built-in policy ignores
// context entirely.
func (p *EpsilonGreedyPolicy) RequiresContext() bool { return false }

// Predict implements ContextualPolicy. ctx is ignored.
func (p *EpsilonGreedyPolicy) Predict([]float64) (int, error) {
	if p.rng.Float64() < p.epsilon {
		return p.rng.Intn(p.numArms), nil
	}

	// Unplayed arms take priority, same as AlphaUCB's +Inf treatment, so
	// every arm gets at least one observation before exploitation narrows.
	for a := 0; a < p.numArms; a++ {
		if p.plays[a] == 0 {
			return a, nil
		}
	}

	bestArm := 0
	bestMean := p.mean[0]
	for a := 1; a < p.numArms; a++ {
		if p.mean[a] > bestMean {
			bestArm, bestMean = a, p.mean[a]
		}
	}
	return bestArm, nil
}

// PartialFit implements ContextualPolicy, folding each (arm, reward) pair
// into that arm's running mean. contexts is ignored.
func (p *EpsilonGreedyPolicy) PartialFit(arms []int, rewards []float64, contexts [][]float64) error {
	for i, a := range arms {
		if a < 0 || a >= p.numArms {
			return alnscore.NewConfigurationError("epsilon-greedy policy: arm %d out of range [0,%d)", a, p.numArms)
		}
		p.plays[a]++
		n := float64(p.plays[a])
		p.mean[a] += (rewards[i] - p.mean[a]) / n
	}
	return nil
}
