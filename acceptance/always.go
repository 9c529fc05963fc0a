package acceptance

import "github.com/walnuthoram2/ALNS/alnscore"

// Always accepts every candidate it is asked about.
type Always struct{}

// NewAlways constructs an Always criterion.
func NewAlways() Always { return Always{} }

// Accept implements Criterion by always returning true.
func (Always) Accept(rng alnscore.RandomSource, bestObjective, currentObjective, candidateObjective float64) bool {
	return true
}
