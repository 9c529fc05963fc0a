package alns

import (
	"time"

	"github.com/walnuthoram2/ALNS/alnscore"
)

// IterationRecord captures one iteration's objective triple and wall-clock
// cost. Recorded only when the engine's collect-statistics option is on.
type IterationRecord struct {
	BestObjective      float64
	CurrentObjective   float64
	CandidateObjective float64
	Runtime            time.Duration
}

// OperatorCounts is a snapshot of how often a registered operator was
// selected, broken down by the outcome its candidate produced.
type OperatorCounts struct {
	Name   string
	Kind   alnscore.OperatorKind
	Counts [4]int
}

// Statistics accumulates per-iteration and per-operator bookkeeping over a
// single Iterate call. The zero value is empty: no iterations and no
// operators.
type Statistics struct {
	iterations    []IterationRecord
	destroyCounts []OperatorCounts
	repairCounts  []OperatorCounts
}

func newStatistics(destroyOps, repairOps []alnscore.Operator) Statistics {
	destroyCounts := make([]OperatorCounts, len(destroyOps))
	for i, op := range destroyOps {
		destroyCounts[i] = OperatorCounts{Name: op.Name, Kind: op.Kind}
	}
	repairCounts := make([]OperatorCounts, len(repairOps))
	for i, op := range repairOps {
		repairCounts[i] = OperatorCounts{Name: op.Name, Kind: op.Kind}
	}
	return Statistics{destroyCounts: destroyCounts, repairCounts: repairCounts}
}

func (s *Statistics) record(rec IterationRecord, destroyIdx, repairIdx int, outcome alnscore.OutcomeCategory) {
	s.iterations = append(s.iterations, rec)
	s.destroyCounts[destroyIdx].Counts[outcome]++
	s.repairCounts[repairIdx].Counts[outcome]++
}

// Iterations returns a copy of the per-iteration record history, in order.
func (s Statistics) Iterations() []IterationRecord {
	out := make([]IterationRecord, len(s.iterations))
	copy(out, s.iterations)
	return out
}

// DestroyCounts returns a copy of the per-destroy-operator outcome counts,
// in registration order.
func (s Statistics) DestroyCounts() []OperatorCounts {
	out := make([]OperatorCounts, len(s.destroyCounts))
	copy(out, s.destroyCounts)
	return out
}

// RepairCounts returns a copy of the per-repair-operator outcome counts, in
// registration order.
func (s Statistics) RepairCounts() []OperatorCounts {
	out := make([]OperatorCounts, len(s.repairCounts))
	copy(out, s.repairCounts)
	return out
}

// TotalIterations reports how many iterations actually executed.
func (s Statistics) TotalIterations() int { return len(s.iterations) }
