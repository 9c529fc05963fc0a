package selection_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/walnuthoram2/ALNS/alnscore"
	"github.com/walnuthoram2/ALNS/selection"
)

func TestNewRouletteWheelValidation(t *testing.T) {
	valid := alnscore.ScoreVector{5, 2, 1, 0.5}

	_, err := selection.NewRouletteWheel(valid, 0.8, 0, 1)
	require.Error(t, err)

	_, err = selection.NewRouletteWheel(valid, 1.5, 2, 1)
	require.Error(t, err)

	_, err = selection.NewRouletteWheel(alnscore.ScoreVector{-1, 0, 0, 0}, 0.8, 2, 1)
	require.Error(t, err)

	rw, err := selection.NewRouletteWheel(valid, 0.8, 2, 1)
	require.NoError(t, err)
	require.Equal(t, 2, rw.NumDestroy())
	require.Equal(t, 1, rw.NumRepair())
}

func TestRouletteWheelChooseWithinBounds(t *testing.T) {
	rw, err := selection.NewRouletteWheel(alnscore.ScoreVector{5, 2, 1, 0.5}, 0.8, 3, 2)
	require.NoError(t, err)

	rng := alnscore.NewRandomSource(1)
	for i := 0; i < 200; i++ {
		d, r, err := rw.Choose(rng, nil, nil)
		require.NoError(t, err)
		require.GreaterOrEqual(t, d, 0)
		require.Less(t, d, 3)
		require.GreaterOrEqual(t, r, 0)
		require.Less(t, r, 2)
	}
}

// TestRouletteWheelDegenerateWeightsFallBackToUniform covers S6: forcing
// score=[0,0,0,0] and decay=0 degenerates both weight vectors to all-zero
// after one update, and Choose must fall back to uniform sampling instead
// of erroring.
func TestRouletteWheelDegenerateWeightsFallBackToUniform(t *testing.T) {
	rw, err := selection.NewRouletteWheel(alnscore.ScoreVector{0, 0, 0, 0}, 0, 4, 4)
	require.NoError(t, err)

	rng := alnscore.NewRandomSource(1)
	rw.Update(nil, 0, 0, alnscore.Reject)

	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		d, _, err := rw.Choose(rng, nil, nil)
		require.NoError(t, err)
		seen[d] = true
	}
	require.Greater(t, len(seen), 1, "uniform fallback should eventually visit more than one arm")
}

func TestRouletteWheelUpdateConvexCombination(t *testing.T) {
	rw, err := selection.NewRouletteWheel(alnscore.ScoreVector{8, 4, 2, 1}, 0.5, 2, 1)
	require.NoError(t, err)

	// Weights start at 1; one BEST update of destroy operator 0 with
	// decay=0.5 and score=8: w <- 0.5*1 + 0.5*8 = 4.5, while operator 1
	// keeps weight 1, so operator 0 is drawn with probability 4.5/5.5.
	rw.Update(nil, 0, 0, alnscore.Best)
	rng := alnscore.NewRandomSource(2)
	const draws = 10000
	picked0 := 0
	for i := 0; i < draws; i++ {
		d, _, err := rw.Choose(rng, nil, nil)
		require.NoError(t, err)
		if d == 0 {
			picked0++
		}
	}
	require.InDelta(t, 4.5/5.5, float64(picked0)/draws, 0.02)
}
