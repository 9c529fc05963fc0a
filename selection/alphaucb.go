package selection

import (
	"math"

	"github.com/walnuthoram2/ALNS/alnscore"
)

// AlphaUCB treats the numDestroy x numRepair grid of operator pairs as
// bandit arms. For arm a with play count n_a and empirical mean reward
// mu_a, Choose selects:
//
//	argmax_a [ mu_a + alpha*sqrt((1+ln(1+T))/n_a) ]
//
// where T is the total number of plays across all arms. Unplayed arms have
// absolute priority (an unplayed arm's index is treated as +Inf), so every
// arm is tried exactly once before any arm is tried a second time.
type AlphaUCB struct {
	numDestroy int
	numRepair  int
	alpha      float64
	scores     alnscore.ScoreVector

	plays []uint64
	mean  []float64
	total uint64
}

// NewAlphaUCB constructs an AlphaUCB bandit over numDestroy*numRepair arms.
// alpha must be in (0,1]; it controls the exploration bonus's weight.
func NewAlphaUCB(scores alnscore.ScoreVector, alpha float64, numDestroy, numRepair int) (*AlphaUCB, error) {
	if numDestroy <= 0 || numRepair <= 0 {
		return nil, alnscore.NewConfigurationError("alpha-UCB requires numDestroy>0 and numRepair>0, got (%d,%d)", numDestroy, numRepair)
	}
	if alpha <= 0 || alpha > 1 {
		return nil, alnscore.NewConfigurationError("alpha-UCB requires alpha in (0,1], got %v", alpha)
	}
	if !scores.Valid() {
		return nil, alnscore.NewConfigurationError("alpha-UCB scores must be finite and non-negative: %v", scores)
	}

	n := numDestroy * numRepair
	return &AlphaUCB{
		numDestroy: numDestroy,
		numRepair:  numRepair,
		alpha:      alpha,
		scores:     scores,
		plays:      make([]uint64, n),
		mean:       make([]float64, n),
	}, nil
}

// NumDestroy implements Scheme.
func (u *AlphaUCB) NumDestroy() int { return u.numDestroy }

// NumRepair implements Scheme.
func (u *AlphaUCB) NumRepair() int { return u.numRepair }

func (u *AlphaUCB) arm(destroyIdx, repairIdx int) int {
	return destroyIdx*u.numRepair + repairIdx
}

func (u *AlphaUCB) fromArm(a int) (int, int) {
	return a / u.numRepair, a % u.numRepair
}

// Choose implements Scheme by selecting the arm with the highest UCB
// index, giving unplayed arms unconditional priority.
func (u *AlphaUCB) Choose(rng alnscore.RandomSource, best, current alnscore.SolutionState) (int, int, error) {
	bestArm := -1
	bestIndex := math.Inf(-1)

	for a := range u.plays {
		var index float64
		if u.plays[a] == 0 {
			index = math.Inf(1)
		} else {
			exploitation := u.mean[a]
			exploration := u.alpha * math.Sqrt((1+math.Log(1+float64(u.total)))/float64(u.plays[a]))
			index = exploitation + exploration
		}
		if index > bestIndex {
			bestIndex = index
			bestArm = a
		}
	}

	d, r := u.fromArm(bestArm)
	return d, r, nil
}

// Update implements Scheme by incrementing the chosen arm's play count and
// folding the observed score into its running mean.
func (u *AlphaUCB) Update(candidate alnscore.SolutionState, destroyIdx, repairIdx int, outcome alnscore.OutcomeCategory) {
	a := u.arm(destroyIdx, repairIdx)
	reward := u.scores.Get(outcome)

	u.plays[a]++
	u.total++
	n := float64(u.plays[a])
	u.mean[a] += (reward - u.mean[a]) / n
}
