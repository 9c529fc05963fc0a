package tspdemo_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/walnuthoram2/ALNS/alnscore"
	"github.com/walnuthoram2/ALNS/internal/tspdemo"
)

func TestRandomRemovalThenGreedyInsertionPreservesTour(t *testing.T) {
	inst := tspdemo.NewSymmetricInstance(20, rand.New(rand.NewSource(1)))
	initial := tspdemo.NewRandomTour(inst, rand.New(rand.NewSource(1)))
	require.True(t, tspdemo.ValidateTour(initial))

	rng := alnscore.NewRandomSource(1)
	params := alnscore.Params{"n_remove": 5}

	destroyed, err := tspdemo.RandomRemoval(initial, rng, params)
	require.NoError(t, err)
	require.Len(t, destroyed.(tspdemo.TourState).Tour, 15)
	require.Len(t, destroyed.(tspdemo.TourState).Removed, 5)

	repaired, err := tspdemo.GreedyInsertion(destroyed, rng, params)
	require.NoError(t, err)

	repairedState := repaired.(tspdemo.TourState)
	require.True(t, tspdemo.ValidateTour(repairedState))
	require.Empty(t, repairedState.Removed)
	require.Greater(t, repairedState.Objective(), 0.0)
}

func TestCloneIsIndependent(t *testing.T) {
	inst := tspdemo.NewSymmetricInstance(5, rand.New(rand.NewSource(1)))
	original := tspdemo.NewRandomTour(inst, rand.New(rand.NewSource(1)))

	clone := original.Clone().(tspdemo.TourState)
	clone.Tour[0] = -1

	require.NotEqual(t, clone.Tour[0], original.Tour[0])
}
