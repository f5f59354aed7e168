package hook

// Set holds the optional lifecycle callbacks consulted by the execution
// engine. Each list is invoked in order; defaults registered on an
// instance come before call-level callbacks (cascade, not override).
type Set[T any] struct {
	OnSuccess []func(v T, args []any)
	OnError   []func(err error, args []any)
	OnSettled []func(v T, err error, args []any)
	OnRetry   []func(err error, attempt int, args []any)

	// OnHookError receives panics recovered from any other callback,
	// tagged with the callback's name. Unlike the lists above it is a
	// single slot: a call-level value shadows the default.
	OnHookError func(recovered any, hookName string)
}

// Invoke runs fn, containing any panic. A recovered panic is handed to
// onHookError under the given name; a panic from onHookError itself is
// discarded. A callback can therefore never change an outcome or abort
// an attempt loop.
func Invoke(fn func(), onHookError func(recovered any, hookName string), name string) {
	if fn == nil {
		return
	}

	defer func() {
		r := recover()
		if r == nil || onHookError == nil {
			return
		}
		defer func() { _ = recover() }()
		onHookError(r, name)
	}()

	fn()
}

// Merge layers call-level callbacks onto defaults: the lists
// concatenate default-first and OnHookError is replaced when the
// call supplies one.
func Merge[T any](def, call Set[T]) Set[T] {
	merged := Set[T]{
		OnSuccess:   concat(def.OnSuccess, call.OnSuccess),
		OnError:     concat(def.OnError, call.OnError),
		OnSettled:   concat(def.OnSettled, call.OnSettled),
		OnRetry:     concat(def.OnRetry, call.OnRetry),
		OnHookError: def.OnHookError,
	}
	if call.OnHookError != nil {
		merged.OnHookError = call.OnHookError
	}
	return merged
}

func concat[F any](def, call []F) []F {
	if len(def) == 0 && len(call) == 0 {
		return nil
	}
	out := make([]F, 0, len(def)+len(call))
	out = append(out, def...)
	out = append(out, call...)
	return out
}

// FireSuccess runs every OnSuccess callback, then every OnSettled
// callback, in registration order.
func (s Set[T]) FireSuccess(v T, args []any) {
	for _, fn := range s.OnSuccess {
		Invoke(func() { fn(v, args) }, s.OnHookError, "onSuccess")
	}
	for _, fn := range s.OnSettled {
		Invoke(func() { fn(v, nil, args) }, s.OnHookError, "onSettled")
	}
}

// FireError runs every OnError callback, then every OnSettled callback,
// with the zero value in the value slot.
func (s Set[T]) FireError(err error, args []any) {
	var zero T
	for _, fn := range s.OnError {
		Invoke(func() { fn(err, args) }, s.OnHookError, "onError")
	}
	for _, fn := range s.OnSettled {
		Invoke(func() { fn(zero, err, args) }, s.OnHookError, "onSettled")
	}
}

// FireRetry runs every OnRetry callback for one non-final failed
// attempt.
func (s Set[T]) FireRetry(err error, attempt int, args []any) {
	for _, fn := range s.OnRetry {
		Invoke(func() { fn(err, attempt, args) }, s.OnHookError, "onRetry")
	}
}
