package tspdemo

import "github.com/walnuthoram2/ALNS/alnscore"

// RandomRemoval is a destroy operator: it removes n_remove (default 3)
// random cities from the tour, leaving them in Removed for a repair
// operator to reinsert.
func RandomRemoval(state alnscore.SolutionState, rng alnscore.RandomSource, params alnscore.Params) (alnscore.SolutionState, error) {
	t := state.(TourState).Clone().(TourState)

	k := params.IntOr("n_remove", 3)
	if k > len(t.Tour) {
		k = len(t.Tour)
	}

	for i := 0; i < k; i++ {
		idx := rng.Intn(len(t.Tour))
		t.Removed = append(t.Removed, t.Tour[idx])
		t.Tour = append(t.Tour[:idx], t.Tour[idx+1:]...)
	}

	return t, nil
}

// GreedyInsertion is a repair operator: it reinserts each removed city at
// the cheapest position in the remaining tour, one city at a time.
func GreedyInsertion(state alnscore.SolutionState, rng alnscore.RandomSource, params alnscore.Params) (alnscore.SolutionState, error) {
	t := state.(TourState).Clone().(TourState)

	for _, city := range t.Removed {
		if len(t.Tour) == 0 {
			t.Tour = append(t.Tour, city)
			continue
		}

		bestPos := 0
		bestDelta := insertionDelta(t.Inst, t.Tour, 0, city)
		for pos := 1; pos <= len(t.Tour); pos++ {
			delta := insertionDelta(t.Inst, t.Tour, pos, city)
			if delta < bestDelta {
				bestDelta = delta
				bestPos = pos
			}
		}

		t.Tour = insertAt(t.Tour, bestPos, city)
	}
	t.Removed = nil

	return t, nil
}

// insertionDelta returns the added cycle cost from inserting city at
// position pos in tour (0<=pos<=len(tour)).
func insertionDelta(inst *Instance, tour []int, pos, city int) float64 {
	n := len(tour)
	if n == 0 {
		return 0
	}
	prev := tour[(pos-1+n)%n]
	next := tour[pos%n]
	return inst.edgeCost(prev, city) + inst.edgeCost(city, next) - inst.edgeCost(prev, next)
}

func insertAt(tour []int, pos, city int) []int {
	out := make([]int, 0, len(tour)+1)
	out = append(out, tour[:pos]...)
	out = append(out, city)
	out = append(out, tour[pos:]...)
	return out
}
