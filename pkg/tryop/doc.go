// Package tryop defines the Outcome[T] value returned by every
// execution primitive in this module: an immutable tagged result that
// replaces error propagation with an explicit success/failure pair.
//
// Highlights:
// - Success/Fail/FailFrom: construct Outcome[T]
// - Pair: positional (value, error) access for plain Go destructuring
// - Mapper/Normalize: turn raw attempt errors into carried errors,
//   containing mapper panics
// - PanicError/DeadlineError: failures synthesized from recovered
//   panics and expired attempt deadlines
//
// Subpackages provide the verbs: run (execution engine with retry and
// per-attempt deadlines), group (fan-out over named operation maps),
// bound (pre-configured instances), hook (lifecycle callbacks), pipe
// and chain (outcome combinators).
package tryop
