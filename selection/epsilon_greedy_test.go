package selection_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/walnuthoram2/ALNS/alnscore"
	"github.com/walnuthoram2/ALNS/selection"
)

func TestNewEpsilonGreedyPolicyValidation(t *testing.T) {
	rng := alnscore.NewRandomSource(1)

	_, err := selection.NewEpsilonGreedyPolicy(0, 0.1, rng)
	require.Error(t, err)

	_, err = selection.NewEpsilonGreedyPolicy(3, 1.5, rng)
	require.Error(t, err)

	_, err = selection.NewEpsilonGreedyPolicy(3, 0.1, nil)
	require.Error(t, err)
}

func TestEpsilonGreedyPolicyPlaysEveryArmBeforeRepeating(t *testing.T) {
	rng := alnscore.NewRandomSource(2)
	p, err := selection.NewEpsilonGreedyPolicy(3, 0, rng)
	require.NoError(t, err)

	seen := map[int]bool{}
	for i := 0; i < 3; i++ {
		arm, err := p.Predict(nil)
		require.NoError(t, err)
		require.False(t, seen[arm])
		seen[arm] = true
		require.NoError(t, p.PartialFit([]int{arm}, []float64{1}, [][]float64{nil}))
	}
	require.Len(t, seen, 3)
}

func TestEpsilonGreedyPolicyExploitsBestMean(t *testing.T) {
	rng := alnscore.NewRandomSource(3)
	p, err := selection.NewEpsilonGreedyPolicy(2, 0, rng)
	require.NoError(t, err)

	require.NoError(t, p.PartialFit([]int{0}, []float64{1}, [][]float64{nil}))
	require.NoError(t, p.PartialFit([]int{1}, []float64{100}, [][]float64{nil}))

	arm, err := p.Predict(nil)
	require.NoError(t, err)
	require.Equal(t, 1, arm)
}

func TestEpsilonGreedyPolicyRequiresContextFalse(t *testing.T) {
	rng := alnscore.NewRandomSource(1)
	p, err := selection.NewEpsilonGreedyPolicy(2, 0, rng)
	require.NoError(t, err)
	require.False(t, p.RequiresContext())
}

func TestEpsilonGreedyPolicyPartialFitRejectsOutOfRangeArm(t *testing.T) {
	rng := alnscore.NewRandomSource(1)
	p, err := selection.NewEpsilonGreedyPolicy(2, 0, rng)
	require.NoError(t, err)
	require.Error(t, p.PartialFit([]int{5}, []float64{1}, [][]float64{nil}))
}
