// Package hook contains the lifecycle callback set consulted by the
// execution engine and the contained invoker that guarantees callbacks
// are pure side-effect sinks.
//
// Key constructs:
// - Set: ordered OnSuccess/OnError/OnSettled/OnRetry lists plus a
//   single OnHookError slot
// - Invoke: run one callback, routing a recovered panic to OnHookError
// - Merge: layer call-level callbacks onto instance defaults
//   (lists cascade default-first, OnHookError is replaced)
package hook
