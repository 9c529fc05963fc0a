// Package acceptance implements the AcceptanceCriterion family: the rules
// the ALNS engine consults, once per iteration and only for candidates no
// better than current (BEST/BETTER outcomes never reach a criterion), to
// decide whether a non-improving candidate nonetheless replaces current.
//
// Every criterion implements Criterion (Accept), a pure comparison against
// the criterion's current state. The threshold-style criteria
// (RecordToRecordTravel, SimulatedAnnealing, ThresholdAccepting,
// GreatDeluge, NonLinearGreatDeluge) additionally implement Ticker: the
// engine calls Tick exactly once per iteration, after the selection scheme
// has been updated, to decay an internal threshold/temperature along a
// shared linear/exponential schedule (schedule.go). Decay is deliberately
// not a side effect of Accept, so that Accept can be called any number of
// times (diagnostics, probability measurement) without perturbing the
// schedule. SimulatedAnnealing/RecordToRecordTravel also expose an Autofit
// constructor that derives a schedule's starting value and step from a
// target acceptance probability (autofit.go).
//
// Laid out one file per concern (schedule.go for shared state, autofit.go
// for derivation, then one file per criterion variant) rather than one
// file per tiny type.
package acceptance
