// Package group fans out a named map of independent asynchronous
// operations and combines their outcomes.
//
// Key operations:
// - All: fail-fast; succeeds with a same-keyed value map, or fails
//   with the error of whichever member fails first
// - AllSettled: collect-everything; always yields one Outcome per key
//
// Members run through the run engine, so per-member retry, deadlines,
// mapping and hooks come from the same option set as single calls.
package group
