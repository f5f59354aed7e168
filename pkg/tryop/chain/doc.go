// Package chain provides a fluent wrapper around Outcome[T]
// for building synchronous result pipelines using pipe primitives.
//
// Key operations:
// - Start/FromValue: begin a chain from an Outcome[T] or value
// - Then: switch to a new Outcome[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Ensure: run side effects on success without changing the outcome
// - Finally: collapse the chain into a final value via handlers
package chain
