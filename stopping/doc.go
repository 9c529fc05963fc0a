// Package stopping implements the StoppingCriterion family: the rules the
// ALNS engine consults at the top of every iteration, before drawing any
// random numbers or touching an operator, to decide whether to halt.
//
// Every criterion implements Criterion (Stop). Each is stateful and
// single-use per Iterate call; the engine never resets one mid-run, and
// reusing an already-tripped criterion across two separate Iterate calls
// is a caller error, not something this package guards against.
package stopping
