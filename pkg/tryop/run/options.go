package run

import (
	"time"

	"github.com/ib-77/tryop/pkg/tryop"
	"github.com/ib-77/tryop/pkg/tryop/hook"
)

// Config carries everything one primitive call consults: the error
// mapper, hooks, retry and deadline policies, and the success-path
// transform. A Config is built fresh per call from the option list, so
// no state leaks between invocations.
type Config[T any] struct {
	mapper     tryop.Mapper
	defaultErr error
	hooks      hook.Set[T]
	retry      Retry
	abortAfter time.Duration
	deadline   bool
	parse      func(v T) (T, error)
	args       []any
}

// Option configures one primitive call or the defaults of a bound
// instance. Hook options accumulate (cascade); policy options replace.
type Option[T any] func(*Config[T])

func newConfig[T any](opts []Option[T]) *Config[T] {
	cfg := &Config[T]{}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// WithMapper sets the error mapper applied to every failure.
func WithMapper[T any](m tryop.Mapper) Option[T] {
	return func(c *Config[T]) {
		c.mapper = m
	}
}

// WithDefaultError sets the error substituted when the mapper itself
// fails.
func WithDefaultError[T any](err error) Option[T] {
	return func(c *Config[T]) {
		c.defaultErr = err
	}
}

// OnSuccess appends a callback fired once with the produced value and
// the call arguments.
func OnSuccess[T any](fn func(v T, args []any)) Option[T] {
	return func(c *Config[T]) {
		if fn != nil {
			c.hooks.OnSuccess = append(c.hooks.OnSuccess, fn)
		}
	}
}

// OnError appends a callback fired once with the mapped error.
func OnError[T any](fn func(err error, args []any)) Option[T] {
	return func(c *Config[T]) {
		if fn != nil {
			c.hooks.OnError = append(c.hooks.OnError, fn)
		}
	}
}

// OnSettled appends a callback fired once after OnSuccess or OnError,
// whichever path the call took.
func OnSettled[T any](fn func(v T, err error, args []any)) Option[T] {
	return func(c *Config[T]) {
		if fn != nil {
			c.hooks.OnSettled = append(c.hooks.OnSettled, fn)
		}
	}
}

// OnRetry appends a callback fired before each backoff wait with the
// mapped error and the 1-indexed attempt that just failed.
func OnRetry[T any](fn func(err error, attempt int, args []any)) Option[T] {
	return func(c *Config[T]) {
		if fn != nil {
			c.hooks.OnRetry = append(c.hooks.OnRetry, fn)
		}
	}
}

// OnHookError sets the receiver for panics recovered from other
// callbacks. Later values replace earlier ones.
func OnHookError[T any](fn func(recovered any, hookName string)) Option[T] {
	return func(c *Config[T]) {
		c.hooks.OnHookError = fn
	}
}

// WithHooks layers a whole callback set onto the one configured so far.
func WithHooks[T any](set hook.Set[T]) Option[T] {
	return func(c *Config[T]) {
		c.hooks = hook.Merge(c.hooks, set)
	}
}

// WithParse sets the success-path transform, replacing any previous
// one. A transform error fails the call; inside a retry loop it fails
// the attempt and is retried like an operation failure.
func WithParse[T any](fn func(v T) (T, error)) Option[T] {
	return func(c *Config[T]) {
		c.parse = fn
	}
}

// WithRetry sets the retry policy, replacing any previous one.
func WithRetry[T any](r Retry) Option[T] {
	return func(c *Config[T]) {
		c.retry = r
	}
}

// WithAbortAfter sets the per-attempt deadline, replacing any previous
// one. It panics if d is negative; configuration is validated before
// any attempt runs.
func WithAbortAfter[T any](d time.Duration) Option[T] {
	if d < 0 {
		panic("tryop/run: abort deadline must be non-negative")
	}
	return func(c *Config[T]) {
		c.abortAfter = d
		c.deadline = true
	}
}

func withArgs[T any](args []any) Option[T] {
	return func(c *Config[T]) {
		c.args = args
	}
}
