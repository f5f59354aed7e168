package tryop

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"
)

// ErrUnknown stands in for a failure that carried no error value.
var ErrUnknown = errors.New("unknown error")

// Mapper turns the raw error of a failed attempt into the error carried
// by the resulting failure. It must return a non-nil error.
type Mapper func(raw error) error

// PanicError wraps a value recovered from a panicking operation together
// with the goroutine stack captured at the point of recovery.
type PanicError struct {
	// Value is the original value passed to panic().
	Value any

	// Stack is the goroutine stack trace at the point of panic.
	Stack string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v\n\n%s", e.Value, e.Stack)
}

// NewPanicError captures the current stack around a recovered value.
// If the value already is an error it is kept as the cause.
func NewPanicError(v any) *PanicError {
	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)
	return &PanicError{
		Value: v,
		Stack: string(buf[:n]),
	}
}

// Unwrap exposes the panic value when it was itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// DeadlineError is the synthetic failure of an attempt that did not
// settle within its configured deadline.
type DeadlineError struct {
	Timeout time.Duration
}

func (e *DeadlineError) Error() string {
	return fmt.Sprintf("operation aborted after %s", e.Timeout)
}

// Is makes deadline failures match context.DeadlineExceeded, so
// IsCancellationError and errors.Is checks recognize them.
func (e *DeadlineError) Is(target error) bool {
	return target == context.DeadlineExceeded
}

// Normalize produces the error to carry in a failure from the raw error
// of a failed attempt.
//
// Without a mapper the raw error passes through unchanged. With a
// mapper, its result is used unless the mapper panics or returns nil;
// the incident is then reported to report under the name "mapError" and
// the fallback is defaultErr when set, otherwise the original raw
// error. Normalize itself never panics.
func Normalize(raw error, mapper Mapper, defaultErr error, report func(recovered any, hookName string)) error {
	if raw == nil {
		raw = ErrUnknown
	}
	if mapper == nil {
		return raw
	}

	mapped, incident := tryMap(mapper, raw)
	if incident == nil && mapped != nil {
		return mapped
	}
	if incident == nil {
		incident = errors.New("mapper returned nil error")
	}

	if report != nil {
		func() {
			defer func() { _ = recover() }()
			report(incident, "mapError")
		}()
	}

	if defaultErr != nil {
		return defaultErr
	}
	return raw
}

func tryMap(mapper Mapper, raw error) (mapped error, incident any) {
	defer func() {
		if r := recover(); r != nil {
			incident = r
		}
	}()
	return mapper(raw), nil
}
