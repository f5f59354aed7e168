package run

import (
	"context"

	"github.com/ib-77/tryop/pkg/tryop"
)

// Wrap turns a fallible function into one returning an Outcome instead
// of an error. The WrapN variants keep the argument list intact and
// expose the arguments, in call order, to every hook as args. The
// context passed to WrapAsyncN functions is engine plumbing and is not
// part of args.

func Wrap[T any](fn func() (T, error), opts ...Option[T]) func() tryop.Outcome[T] {
	return func() tryop.Outcome[T] {
		return Sync(fn, opts...)
	}
}

func Wrap1[A, T any](fn func(a A) (T, error), opts ...Option[T]) func(a A) tryop.Outcome[T] {
	return func(a A) tryop.Outcome[T] {
		return Sync(func() (T, error) { return fn(a) }, withCallArgs(opts, a)...)
	}
}

func Wrap2[A, B, T any](fn func(a A, b B) (T, error), opts ...Option[T]) func(a A, b B) tryop.Outcome[T] {
	return func(a A, b B) tryop.Outcome[T] {
		return Sync(func() (T, error) { return fn(a, b) }, withCallArgs(opts, a, b)...)
	}
}

func Wrap3[A, B, C, T any](fn func(a A, b B, c C) (T, error), opts ...Option[T]) func(a A, b B, c C) tryop.Outcome[T] {
	return func(a A, b B, c C) tryop.Outcome[T] {
		return Sync(func() (T, error) { return fn(a, b, c) }, withCallArgs(opts, a, b, c)...)
	}
}

func WrapAsync[T any](fn func(ctx context.Context) (T, error), opts ...Option[T]) func(ctx context.Context) tryop.Outcome[T] {
	return func(ctx context.Context) tryop.Outcome[T] {
		return Async(ctx, fn, opts...)
	}
}

func WrapAsync1[A, T any](fn func(ctx context.Context, a A) (T, error), opts ...Option[T]) func(ctx context.Context, a A) tryop.Outcome[T] {
	return func(ctx context.Context, a A) tryop.Outcome[T] {
		return Async(ctx, func(ctx context.Context) (T, error) { return fn(ctx, a) }, withCallArgs(opts, a)...)
	}
}

func WrapAsync2[A, B, T any](fn func(ctx context.Context, a A, b B) (T, error), opts ...Option[T]) func(ctx context.Context, a A, b B) tryop.Outcome[T] {
	return func(ctx context.Context, a A, b B) tryop.Outcome[T] {
		return Async(ctx, func(ctx context.Context) (T, error) { return fn(ctx, a, b) }, withCallArgs(opts, a, b)...)
	}
}

func WrapAsync3[A, B, C, T any](fn func(ctx context.Context, a A, b B, c C) (T, error), opts ...Option[T]) func(ctx context.Context, a A, b B, c C) tryop.Outcome[T] {
	return func(ctx context.Context, a A, b B, c C) tryop.Outcome[T] {
		return Async(ctx, func(ctx context.Context) (T, error) { return fn(ctx, a, b, c) }, withCallArgs(opts, a, b, c)...)
	}
}

// withCallArgs builds a fresh option list per invocation so concurrent
// calls to the same wrapped function never share state.
func withCallArgs[T any](opts []Option[T], args ...any) []Option[T] {
	out := make([]Option[T], 0, len(opts)+1)
	out = append(out, opts...)
	out = append(out, withArgs[T](args))
	return out
}
