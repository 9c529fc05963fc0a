// Package alnscore defines the capability contracts shared by every part of
// the ALNS engine: the solution-state interface operators destroy and
// repair, the operator type itself, the random source all stochastic
// decisions route through, and the outcome taxonomy the adaptive selection
// schemes learn from.
//
// Everything here is a leaf: alnscore imports nothing from this module and
// is imported by selection, acceptance, stopping and the root alns package.
// It never reaches for a logging, configuration or ID-generation library —
// those are ambient concerns of the root package, not of the contracts
// other packages build on.
//
//	state/operator contracts — types.go's SolutionState, Operator
//	outcome taxonomy           — OutcomeCategory, ScoreVector
//	deterministic randomness   — RandomSource, NewRandomSource
//	error kinds                — ConfigurationError, InvalidObjectiveError, UserOperatorError
package alnscore
