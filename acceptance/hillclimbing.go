package acceptance

import "github.com/walnuthoram2/ALNS/alnscore"

// HillClimbing accepts a candidate iff it is no worse than current
// (candidateObjective <= currentObjective). Equality accepts: flipping
// this to strict '<' would silently stop lateral moves.
type HillClimbing struct{}

// NewHillClimbing constructs a HillClimbing criterion.
func NewHillClimbing() HillClimbing { return HillClimbing{} }

// Accept implements Criterion.
func (HillClimbing) Accept(rng alnscore.RandomSource, bestObjective, currentObjective, candidateObjective float64) bool {
	return candidateObjective <= currentObjective
}
