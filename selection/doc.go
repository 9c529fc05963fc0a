// Package selection implements the operator-selection family: the
// multi-armed-bandit-style schemes the ALNS engine consults once per
// iteration to pick a (destroy, repair) operator pair, and that it then
// feeds the observed outcome back into so future choices favor pairs that
// perform well.
//
// All four schemes share the Scheme interface (Choose, Update), one file
// per variant behind a common calling convention, a shared doc.go, and
// tests per file.
//
//	RouletteWheel          — weighted-roulette sampling with exponential decay
//	SegmentedRouletteWheel — RouletteWheel with per-segment score accumulation
//	AlphaUCB               — UCB1-style bandit over the destroy×repair grid
//	MABSelector            — bridge to an injected (or built-in) contextual policy
package selection
