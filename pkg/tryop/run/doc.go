// Package run is the execution engine: it calls a fallible operation
// and produces exactly one Outcome, never propagating a failure any
// other way.
//
// Key operations:
// - Sync: one synchronous execution with mapping, transform and hooks
// - Async: the retried execution unit, racing every attempt against an
//   optional per-attempt deadline with cooperative cancellation
// - Wrap/WrapAsync (and the arity variants): turn a fallible function
//   into an Outcome-returning one, exposing its arguments to hooks
// - Option: per-call configuration; hook options cascade, policy
//   options (retry, deadline, parse, mapper) replace
//
// Apart from configuration validation, which panics before the first
// attempt, nothing in this package panics or returns a bare error.
package run
