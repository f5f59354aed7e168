package run

import (
	"context"
	"time"

	"github.com/ib-77/tryop/pkg/tryop"
)

// Sync executes op once and reifies its result into an Outcome. A panic
// in op becomes a failure carrying a *tryop.PanicError; a parse error
// redirects a produced value into the failure path. Retry and deadline
// options do not apply to synchronous calls.
func Sync[T any](op func() (T, error), opts ...Option[T]) tryop.Outcome[T] {
	if op == nil {
		panic("tryop/run: nil operation")
	}
	cfg := newConfig(opts)

	v, err := callSync(op)
	if err == nil {
		v, err = applyParse(cfg, v)
	}

	if err != nil {
		mapped := tryop.Normalize(err, cfg.mapper, cfg.defaultErr, cfg.hooks.OnHookError)
		cfg.hooks.FireError(mapped, cfg.args)
		return tryop.Fail[T](mapped)
	}

	cfg.hooks.FireSuccess(v, cfg.args)
	return tryop.Success(v)
}

// Async executes op under the configured retry and deadline policies
// and reifies the final result into an Outcome.
//
// Attempts are 1-indexed and bounded by Retry.Times+1. Each attempt
// gets its own child context, cancelled when the per-attempt deadline
// expires; the operation may honor the cancellation or ignore it, the
// attempt fails either way and a late settlement is inert. A transform
// error fails the attempt it belongs to and is retried like an
// operation failure. OnSuccess and OnError fire exactly once per call;
// OnRetry fires once per non-final failed attempt. Cancellation of ctx
// itself ends the loop with the context error as the final failure.
func Async[T any](ctx context.Context, op func(ctx context.Context) (T, error), opts ...Option[T]) tryop.Outcome[T] {
	if op == nil {
		panic("tryop/run: nil operation")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := newConfig(opts)

	attempts := cfg.retry.attempts()
	var mapped error

	for attempt := 1; attempt <= attempts; attempt++ {
		v, err := runAttempt(ctx, cfg, op)
		if err == nil {
			v, err = applyParse(cfg, v)
		}
		if err == nil {
			cfg.hooks.FireSuccess(v, cfg.args)
			return tryop.Success(v)
		}

		mapped = tryop.Normalize(err, cfg.mapper, cfg.defaultErr, cfg.hooks.OnHookError)
		if attempt == attempts {
			break
		}

		cfg.hooks.FireRetry(mapped, attempt, cfg.args)
		if !wait(ctx, cfg.retry.waitFor(attempt)) {
			mapped = tryop.Normalize(ctx.Err(), cfg.mapper, cfg.defaultErr, cfg.hooks.OnHookError)
			break
		}
	}

	cfg.hooks.FireError(mapped, cfg.args)
	return tryop.Fail[T](mapped)
}

// runAttempt performs one execution of op, racing it against the
// per-attempt deadline when one is configured.
func runAttempt[T any](ctx context.Context, cfg *Config[T], op func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	if ctx.Err() != nil {
		return zero, ctx.Err()
	}
	if !cfg.deadline {
		return callAsync(ctx, op)
	}

	attemptCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	type settled struct {
		v   T
		err error
	}

	// Buffered so a settlement after the timer wins is inert.
	done := make(chan settled, 1)
	go func() {
		v, err := callAsync(attemptCtx, op)
		done <- settled{v: v, err: err}
	}()

	timer := time.NewTimer(cfg.abortAfter)
	defer timer.Stop()

	select {
	case s := <-done:
		return s.v, s.err
	case <-timer.C:
		cancel()
		return zero, &tryop.DeadlineError{Timeout: cfg.abortAfter}
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

func callSync[T any](op func() (T, error)) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = tryop.NewPanicError(r)
		}
	}()
	return op()
}

func callAsync[T any](ctx context.Context, op func(ctx context.Context) (T, error)) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = tryop.NewPanicError(r)
		}
	}()
	return op(ctx)
}

func applyParse[T any](cfg *Config[T], v T) (out T, err error) {
	if cfg.parse == nil {
		return v, nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = tryop.NewPanicError(r)
		}
	}()
	return cfg.parse(v)
}
