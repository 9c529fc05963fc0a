package alnscore_test

import (
	"fmt"

	"github.com/walnuthoram2/ALNS/alnscore"
)

// intBagState is a minimal SolutionState: a bag of ints whose objective is
// their sum. It exists only to demonstrate the contract; real callers
// supply their own problem-specific representation.
type intBagState struct {
	values []int
}

func (s *intBagState) Objective() float64 {
	total := 0
	for _, v := range s.values {
		total += v
	}
	return float64(total)
}

func (s *intBagState) Clone() alnscore.SolutionState {
	cp := make([]int, len(s.values))
	copy(cp, s.values)
	return &intBagState{values: cp}
}

func ExampleSolutionState() {
	original := &intBagState{values: []int{1, 2, 3}}
	clone := original.Clone().(*intBagState)
	clone.values[0] = 100

	fmt.Println(original.Objective(), clone.Objective())
	// Output: 6 105
}
