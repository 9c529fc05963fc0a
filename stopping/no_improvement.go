package stopping

import (
	"math"

	"github.com/walnuthoram2/ALNS/alnscore"
)

// NoImprovement stops once bestObjective has gone maxIters consecutive
// calls without strictly decreasing.
type NoImprovement struct {
	maxIters int
	sinceImp int
	lastBest float64
	seen     bool
}

// NewNoImprovement constructs a NoImprovement criterion.
func NewNoImprovement(maxIters int) (*NoImprovement, error) {
	if maxIters <= 0 {
		return nil, alnscore.NewConfigurationError("no-improvement requires maxIters>0, got %d", maxIters)
	}
	return &NoImprovement{maxIters: maxIters, lastBest: math.Inf(1)}, nil
}

// Stop implements Criterion.
func (n *NoImprovement) Stop(rng alnscore.RandomSource, bestObjective, currentObjective float64) bool {
	if !n.seen {
		n.seen = true
		n.lastBest = bestObjective
		return false
	}

	if bestObjective < n.lastBest {
		n.lastBest = bestObjective
		n.sinceImp = 0
		return false
	}

	n.sinceImp++
	return n.sinceImp >= n.maxIters
}
