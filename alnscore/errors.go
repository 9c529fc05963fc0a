package alnscore

import "fmt"

// ConfigurationError reports a setup mistake detected at or before the
// first iteration: missing operators, an operator-count mismatch between
// the engine's registrations and the selection scheme, an invalid
// acceptance-criterion parameter, or a contextual selection scheme paired
// with a non-ContextualState initial value.
type ConfigurationError struct {
	// Reason is a short, human-readable description of what is wrong.
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("alns: configuration error: %s", e.Reason)
}

// NewConfigurationError builds a ConfigurationError from a format string,
// mirroring fmt.Errorf's signature for call-site familiarity.
func NewConfigurationError(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// InvalidObjectiveError reports that a candidate's Objective() was not a
// finite real number. In non-strict mode the engine recovers locally from
// this (the candidate is rejected without reaching the acceptance
// criterion); in strict mode it propagates out of Iterate instead.
type InvalidObjectiveError struct {
	// Iteration is the zero-based index of the iteration that produced the
	// offending candidate.
	Iteration int
	// Objective is the non-finite value observed.
	Objective float64
}

func (e *InvalidObjectiveError) Error() string {
	return fmt.Sprintf("alns: non-finite candidate objective %v at iteration %d", e.Objective, e.Iteration)
}

// UserOperatorError wraps any error a registered destroy/repair operator
// returns. It propagates out of Iterate immediately,
// losing the in-flight candidate, and carries enough context (iteration,
// operator name/kind) to locate the failing call without re-running it.
type UserOperatorError struct {
	// Iteration is the zero-based index of the iteration during which the
	// failure occurred.
	Iteration int
	// OperatorName is the registered name of the failing operator.
	OperatorName string
	// Kind is the failing operator's kind.
	Kind OperatorKind
	// Err is the underlying error returned by user code.
	Err error
}

func (e *UserOperatorError) Error() string {
	return fmt.Sprintf("alns: operator %q failed at iteration %d: %v", e.OperatorName, e.Iteration, e.Err)
}

// Unwrap exposes the underlying user error to errors.Is/errors.As.
func (e *UserOperatorError) Unwrap() error {
	return e.Err
}
