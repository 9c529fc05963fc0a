package alns_test

import (
	"fmt"

	"github.com/walnuthoram2/ALNS/acceptance"
	"github.com/walnuthoram2/ALNS/alns"
	"github.com/walnuthoram2/ALNS/alnscore"
	"github.com/walnuthoram2/ALNS/selection"
	"github.com/walnuthoram2/ALNS/stopping"
)

// Example demonstrates the minimal wiring: register one destroy and one
// repair operator, pick a selection scheme, an acceptance criterion and a
// stopping criterion, and run Iterate to completion.
func Example() {
	e := alns.NewEngine(alns.WithSeed(1))
	_ = e.AddDestroyOperator("perturb", perturb)
	_ = e.AddRepairOperator("nudge", nudgeTowardZero)

	scheme, _ := selection.NewRouletteWheel(alnscore.ScoreVector{5, 2, 1, 0.5}, 0.8, 1, 1)

	result, err := e.Iterate(scalarState{value: 10}, scheme, acceptance.NewHillClimbing(), stopping.NewMaxIterations(1000), nil)
	if err != nil {
		panic(err)
	}

	fmt.Println(result.BestObjective <= scalarState{value: 10}.Objective())
	// Output: true
}
