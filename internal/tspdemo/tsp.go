// Package tspdemo is a synthetic travelling-salesman fixture used by the
// integration tests to exercise the engine end-to-end on a record-to-
// record-travel run over a TSP tour, without an I/O dependency on a real
// TSPLIB instance: NewSymmetricInstance builds a random Euclidean point
// set instead of parsing one from a file.
//
// Cost accounting (round1e9, strict non-negative/finite edge checks) uses
// a plain []int cycle for tour representation rather than a matrix-backed
// graph, since this module has no dependency on a concrete graph library.
package tspdemo

import (
	"math"
	"math/rand"

	"github.com/walnuthoram2/ALNS/alnscore"
)

// roundScale controls final cost stabilization precision, guarding
// against cross-platform floating-point noise in comparisons.
const roundScale = 1e9

func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// Instance is an immutable symmetric distance matrix over n cities.
type Instance struct {
	n    int
	dist [][]float64
}

// NewSymmetricInstance builds a synthetic symmetric TSP instance of n
// cities placed uniformly at random in a [0,1000]x[0,1000] square, with
// Euclidean edge costs.
func NewSymmetricInstance(n int, rng *rand.Rand) *Instance {
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i] = rng.Float64() * 1000
		ys[i] = rng.Float64() * 1000
	}

	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := xs[i] - xs[j]
			dy := ys[i] - ys[j]
			d := math.Sqrt(dx*dx + dy*dy)
			dist[i][j] = d
			dist[j][i] = d
		}
	}
	return &Instance{n: n, dist: dist}
}

// N reports the instance's city count.
func (inst *Instance) N() int { return inst.n }

// edgeCost returns the cost of the directed edge u->v, with strict
// per-edge validation (finite, non-negative).
func (inst *Instance) edgeCost(u, v int) float64 {
	w := inst.dist[u][v]
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		panic("tspdemo: invalid edge weight")
	}
	return w
}

// tourCost sums the cost along a closed cycle tour[0..len-1], closing back
// to tour[0]. Stabilized to 1e-9 precision.
func (inst *Instance) tourCost(tour []int) float64 {
	if len(tour) < 2 {
		return 0
	}
	var sum float64
	for i := 0; i < len(tour); i++ {
		u := tour[i]
		v := tour[(i+1)%len(tour)]
		sum += inst.edgeCost(u, v)
	}
	return round1e9(sum)
}

// TourState is the SolutionState a destroy/repair pair over Instance
// operates on: a (possibly incomplete) cycle over a subset of cities, plus
// the cities removed and awaiting repair.
type TourState struct {
	Inst    *Instance
	Tour    []int
	Removed []int
}

// NewRandomTour builds an initial TourState visiting every city of inst in
// a random order.
func NewRandomTour(inst *Instance, rng *rand.Rand) TourState {
	tour := rng.Perm(inst.N())
	return TourState{Inst: inst, Tour: tour}
}

// Objective implements alnscore.SolutionState. Cities still pending repair
// contribute no edges; a fully repaired tour (Removed empty) reports the
// true Hamiltonian cycle cost.
func (t TourState) Objective() float64 {
	return t.Inst.tourCost(t.Tour)
}

// Clone implements alnscore.SolutionState.
func (t TourState) Clone() alnscore.SolutionState {
	tour := make([]int, len(t.Tour))
	copy(tour, t.Tour)
	removed := make([]int, len(t.Removed))
	copy(removed, t.Removed)
	return TourState{Inst: t.Inst, Tour: tour, Removed: removed}
}

// ValidateTour reports whether t.Tour is a permutation of every city in
// t.Inst (an open cycle, with no explicit closing vertex).
func ValidateTour(t TourState) bool {
	n := t.Inst.N()
	if len(t.Tour) != n {
		return false
	}
	seen := make([]bool, n)
	for _, v := range t.Tour {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}
