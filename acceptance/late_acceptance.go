package acceptance

import "github.com/walnuthoram2/ALNS/alnscore"

// LateAcceptance accepts a candidate iff it beats the objective recorded L
// iterations ago: f(candidate) < history[t mod L]. When betterHistory is
// set, it additionally requires f(candidate) < f(current) (a stricter,
// "never regress on current" variant).
//
// The history buffer is initialized with f(initial) in every slot and,
// after each decision, updated at index (t mod L) with either the
// resulting current objective (greedy) or the pre-decision current
// objective (non-greedy), per the greedy flag.
type LateAcceptance struct {
	history       []float64
	t             int
	greedy        bool
	betterHistory bool
}

// NewLateAcceptance constructs a LateAcceptance criterion with a history of
// length elements, all initialized to initialObjective.
func NewLateAcceptance(initialObjective float64, length int, greedy, betterHistory bool) (*LateAcceptance, error) {
	if length <= 0 {
		return nil, alnscore.NewConfigurationError("late acceptance requires length>0, got %d", length)
	}
	history := make([]float64, length)
	for i := range history {
		history[i] = initialObjective
	}
	return &LateAcceptance{history: history, greedy: greedy, betterHistory: betterHistory}, nil
}

// Accept implements Criterion.
func (la *LateAcceptance) Accept(rng alnscore.RandomSource, bestObjective, currentObjective, candidateObjective float64) bool {
	idx := la.t % len(la.history)
	threshold := la.history[idx]

	ok := candidateObjective < threshold
	if la.betterHistory {
		ok = ok && candidateObjective < currentObjective
	}

	if la.greedy {
		newCurrent := currentObjective
		if ok {
			newCurrent = candidateObjective
		}
		la.history[idx] = newCurrent
	} else {
		la.history[idx] = currentObjective
	}
	la.t++

	return ok
}
