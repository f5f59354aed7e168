// Package pipe contains single-value combinators over Outcome[T] for
// post-processing engine results without unpacking them at each step.
//
// Highlights:
// - Switch: move from Outcome[In] to Outcome[Out]
// - Map: transform successful values, including across types
// - Try: call a function (Out, error) and convert error to failure
// - Tee/DoubleTee: side-effect helpers
// - FailOnError: turn a validation error into a failure
// - Finally: reduce to a concrete value via success/error handlers
package pipe
