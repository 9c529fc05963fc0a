package alnscore_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/walnuthoram2/ALNS/alnscore"
)

func TestClassifyImprovementBest(t *testing.T) {
	outcome, decided := alnscore.ClassifyImprovement(5, 10, 8)
	require.True(t, decided)
	require.Equal(t, alnscore.Best, outcome)
}

func TestClassifyImprovementBetter(t *testing.T) {
	outcome, decided := alnscore.ClassifyImprovement(9, 10, 8)
	require.True(t, decided)
	require.Equal(t, alnscore.Better, outcome)
}

func TestClassifyImprovementUndecidedOnTie(t *testing.T) {
	// Equal objectives never count as an improvement (strict '<' tie-break).
	_, decided := alnscore.ClassifyImprovement(10, 10, 8)
	require.False(t, decided)
}

func TestClassifyImprovementUndecidedOnWorse(t *testing.T) {
	_, decided := alnscore.ClassifyImprovement(11, 10, 8)
	require.False(t, decided)
}
