package acceptance_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/walnuthoram2/ALNS/acceptance"
	"github.com/walnuthoram2/ALNS/alnscore"
)

func TestAlwaysAcceptsEverything(t *testing.T) {
	a := acceptance.NewAlways()
	rng := alnscore.NewRandomSource(1)
	require.True(t, a.Accept(rng, 0, 10, 1000))
	require.True(t, a.Accept(rng, 0, 10, -1000))
}

// TestHillClimbingBoundaryLaw covers the boundary law: equality accepts
// (candidate no worse than current), strict worsening rejects.
func TestHillClimbingBoundaryLaw(t *testing.T) {
	hc := acceptance.NewHillClimbing()
	rng := alnscore.NewRandomSource(1)

	require.True(t, hc.Accept(rng, 0, 10, 10))
	require.True(t, hc.Accept(rng, 0, 10, 9))
	require.False(t, hc.Accept(rng, 0, 10, 11))
}

func TestLateAcceptanceRejectsUntilHistoryAllowsIt(t *testing.T) {
	la, err := acceptance.NewLateAcceptance(100, 3, false, false)
	require.NoError(t, err)

	rng := alnscore.NewRandomSource(1)
	// History starts at [100,100,100]; a candidate of 100 is not strictly
	// better than the recorded value, so it must be rejected.
	require.False(t, la.Accept(rng, 0, 100, 100))
	// A strictly better candidate is accepted.
	require.True(t, la.Accept(rng, 0, 100, 90))
}

func TestLateAcceptanceBetterHistoryRequiresBeatingCurrentToo(t *testing.T) {
	la, err := acceptance.NewLateAcceptance(100, 1, false, true)
	require.NoError(t, err)

	rng := alnscore.NewRandomSource(1)
	// Beats history (100) but not current (50): betterHistory must reject.
	require.False(t, la.Accept(rng, 0, 50, 80))
}

func TestRecordToRecordTravelFixedWindowEquivalentToThresholdAroundBest(t *testing.T) {
	rrt, err := acceptance.NewRecordToRecordTravel(5, 5, 0, acceptance.Linear)
	require.NoError(t, err)

	rng := alnscore.NewRandomSource(1)
	require.True(t, rrt.Accept(rng, 100, 120, 104))
	require.False(t, rrt.Accept(rng, 100, 120, 106))
	require.Equal(t, 5.0, rrt.Deviation())
}

func TestThresholdAcceptingDecaysLinearly(t *testing.T) {
	ta, err := acceptance.NewThresholdAccepting(10, 0, 5, acceptance.Linear)
	require.NoError(t, err)

	rng := alnscore.NewRandomSource(1)
	require.True(t, ta.Accept(rng, 0, 100, 108))
	require.Equal(t, 10.0, ta.Threshold())
	ta.Tick(true)
	require.Equal(t, 5.0, ta.Threshold())
	require.False(t, ta.Accept(rng, 0, 100, 108))
	ta.Tick(false)
	require.Equal(t, 0.0, ta.Threshold())
}

// TestSimulatedAnnealingFixedTemperatureMatchesMetropolis covers the case
// start==end: SA degenerates to a fixed-temperature Metropolis criterion.
func TestSimulatedAnnealingFixedTemperatureMatchesMetropolis(t *testing.T) {
	sa, err := acceptance.NewSimulatedAnnealing(50, 50, 0, acceptance.Linear)
	require.NoError(t, err)

	rng := alnscore.NewRandomSource(1)
	require.True(t, sa.Accept(rng, 0, 100, 90))
	require.Equal(t, 50.0, sa.Temperature())
}

func TestSimulatedAnnealingZeroTemperatureRejectsUphill(t *testing.T) {
	sa, err := acceptance.NewSimulatedAnnealing(0, 0, 0, acceptance.Linear)
	require.NoError(t, err)

	rng := alnscore.NewRandomSource(1)
	require.True(t, sa.Accept(rng, 0, 100, 90))
	require.False(t, sa.Accept(rng, 0, 100, 110))
}

func TestGreatDelugeAcceptsBelowWaterLevelStrictly(t *testing.T) {
	gd, err := acceptance.NewGreatDeluge(100, 0, 10, acceptance.Linear)
	require.NoError(t, err)

	rng := alnscore.NewRandomSource(1)
	require.True(t, gd.Accept(rng, 0, 0, 99))
	require.Equal(t, 100.0, gd.WaterLevel())
	gd.Tick(true)
	require.Equal(t, 90.0, gd.WaterLevel())
	require.False(t, gd.Accept(rng, 0, 0, 90))
}

func TestNonLinearGreatDelugeOnlyDecaysOnAcceptance(t *testing.T) {
	gd, err := acceptance.NewNonLinearGreatDeluge(100, 0, 10, acceptance.Linear)
	require.NoError(t, err)

	rng := alnscore.NewRandomSource(1)
	rejected := gd.Accept(rng, 0, 0, 150)
	require.False(t, rejected)
	gd.Tick(rejected)
	require.Equal(t, 100.0, gd.WaterLevel())

	accepted := gd.Accept(rng, 0, 0, 50)
	require.True(t, accepted)
	gd.Tick(accepted)
	require.Equal(t, 90.0, gd.WaterLevel())
}

func TestAllRequiresEveryCriterion(t *testing.T) {
	single, err := acceptance.NewAll(acceptance.NewHillClimbing())
	require.NoError(t, err)

	rng := alnscore.NewRandomSource(1)
	require.True(t, single.Accept(rng, 0, 10, 10))
	require.False(t, single.Accept(rng, 0, 10, 11))

	both, err := acceptance.NewAll(acceptance.NewAlways(), acceptance.NewHillClimbing())
	require.NoError(t, err)
	require.False(t, both.Accept(rng, 0, 10, 11))
}

func TestAnyWithAlwaysIsEquivalentToAlways(t *testing.T) {
	any, err := acceptance.NewAny(acceptance.NewHillClimbing(), acceptance.NewAlways())
	require.NoError(t, err)

	rng := alnscore.NewRandomSource(1)
	require.True(t, any.Accept(rng, 0, 10, 11))
	require.True(t, any.Accept(rng, 0, 10, 9))
}

// TestSimulatedAnnealingAutofit covers S3: initial=1000, worse=0.05,
// accept_prob=0.5, num_iters=8000, exponential. Expect T_start ~= 72.13 and
// step ~= (1/72.13)^(1/8000).
func TestSimulatedAnnealingAutofit(t *testing.T) {
	sa, err := acceptance.NewSimulatedAnnealingAutofit(1000, 0.05, 0.5, 8000, acceptance.Exponential)
	require.NoError(t, err)
	require.InDelta(t, 72.13, sa.Temperature(), 0.01)
}

func TestSimulatedAnnealingAutofitRejectsInvalidAcceptProbability(t *testing.T) {
	_, err := acceptance.NewSimulatedAnnealingAutofit(1000, 0.05, 0, 8000, acceptance.Exponential)
	require.Error(t, err)

	_, err = acceptance.NewSimulatedAnnealingAutofit(1000, 0.05, 1, 8000, acceptance.Exponential)
	require.Error(t, err)
}

func TestRecordToRecordTravelAutofit(t *testing.T) {
	rrt, err := acceptance.NewRecordToRecordTravelAutofit(1000, 0.05, 0.5, 8000, acceptance.Linear)
	require.NoError(t, err)
	require.InDelta(t, 50.0, rrt.Deviation(), 1e-9)
}

// TestRecordToRecordTravelAutofitExponentialDegeneratesToError documents a
// sharp edge of the autofit formulas: RRT's end is fixed at 0, so the
// exponential step (end/start)^(1/n) is always 0, outside the schedule's
// (0,1] range. Exponential autofit for RRT therefore always raises
// ConfigurationError; callers wanting autofit for RRT must use Linear.
func TestRecordToRecordTravelAutofitExponentialDegeneratesToError(t *testing.T) {
	_, err := acceptance.NewRecordToRecordTravelAutofit(1000, 0.05, 0.5, 8000, acceptance.Exponential)
	require.Error(t, err)

	var cfgErr *alnscore.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}
