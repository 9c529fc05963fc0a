// Package alns implements the Engine: the thin orchestration layer that
// wires a SolutionState, a set of named destroy/repair operators, an
// operator-selection scheme, an acceptance criterion and a stopping
// criterion into the single iteration loop described by the design this
// module implements.
//
// alns depends on its three sibling packages (selection, acceptance,
// stopping) and the shared leaf package alnscore, but they never import
// back: the dependency graph is a strict DAG, leaf contracts at the
// bottom and orchestration at the top.
package alns
