// Package bound builds pre-configured instances of the execution
// engine: a fixed error mapper plus default hooks, retry, deadline and
// transform, reusable across arbitrarily many concurrent calls.
//
// Key constructs:
// - New: bind a mapper and default options into an Instance
// - Instance.Sync/Async/Wrap/WrapAsync/All/AllSettled: the primitive
//   surface with call-level options layered on the defaults
// - WrapNWith/WrapAsyncNWith: adapter variants for functions with
//   arguments
package bound
