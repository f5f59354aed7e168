package bound

import (
	"context"

	"github.com/ib-77/tryop/pkg/tryop"
	"github.com/ib-77/tryop/pkg/tryop/group"
	"github.com/ib-77/tryop/pkg/tryop/run"
)

// Instance pairs a fixed error mapper with default options and exposes
// the whole primitive surface with call-level overrides layered on top.
// It is immutable after New and safe for any number of concurrent
// invocations; every call builds its own configuration.
//
// Merge rule: instance options apply first, call options second. Hook
// options therefore cascade (default callback fires, then the
// call-level one), while retry, deadline, parse, default error and
// OnHookError are replaced wholesale by a call-level value.
type Instance[T any] struct {
	opts []run.Option[T]
}

// New builds an instance around mapper and the given defaults. A nil
// mapper leaves raw errors untouched.
func New[T any](mapper tryop.Mapper, opts ...run.Option[T]) *Instance[T] {
	all := make([]run.Option[T], 0, len(opts)+1)
	if mapper != nil {
		all = append(all, run.WithMapper[T](mapper))
	}
	all = append(all, opts...)
	return &Instance[T]{opts: all}
}

func (i *Instance[T]) merge(opts []run.Option[T]) []run.Option[T] {
	if len(opts) == 0 {
		return i.opts
	}
	all := make([]run.Option[T], 0, len(i.opts)+len(opts))
	all = append(all, i.opts...)
	all = append(all, opts...)
	return all
}

func (i *Instance[T]) Sync(op func() (T, error), opts ...run.Option[T]) tryop.Outcome[T] {
	return run.Sync(op, i.merge(opts)...)
}

func (i *Instance[T]) Async(ctx context.Context, op func(ctx context.Context) (T, error), opts ...run.Option[T]) tryop.Outcome[T] {
	return run.Async(ctx, op, i.merge(opts)...)
}

func (i *Instance[T]) Wrap(fn func() (T, error), opts ...run.Option[T]) func() tryop.Outcome[T] {
	return run.Wrap(fn, i.merge(opts)...)
}

func (i *Instance[T]) WrapAsync(fn func(ctx context.Context) (T, error), opts ...run.Option[T]) func(ctx context.Context) tryop.Outcome[T] {
	return run.WrapAsync(fn, i.merge(opts)...)
}

func (i *Instance[T]) All(ctx context.Context, ops map[string]group.Op[T], opts ...run.Option[T]) tryop.Outcome[map[string]T] {
	return group.All(ctx, ops, i.merge(opts)...)
}

func (i *Instance[T]) AllSettled(ctx context.Context, ops map[string]group.Op[T], opts ...run.Option[T]) map[string]tryop.Outcome[T] {
	return group.AllSettled(ctx, ops, i.merge(opts)...)
}

// The WrapNWith functions mirror Instance.Wrap for functions with
// arguments; Go methods cannot introduce the extra type parameters, so
// they take the instance explicitly.

func Wrap1With[A, T any](i *Instance[T], fn func(a A) (T, error), opts ...run.Option[T]) func(a A) tryop.Outcome[T] {
	return run.Wrap1(fn, i.merge(opts)...)
}

func Wrap2With[A, B, T any](i *Instance[T], fn func(a A, b B) (T, error), opts ...run.Option[T]) func(a A, b B) tryop.Outcome[T] {
	return run.Wrap2(fn, i.merge(opts)...)
}

func Wrap3With[A, B, C, T any](i *Instance[T], fn func(a A, b B, c C) (T, error), opts ...run.Option[T]) func(a A, b B, c C) tryop.Outcome[T] {
	return run.Wrap3(fn, i.merge(opts)...)
}

func WrapAsync1With[A, T any](i *Instance[T], fn func(ctx context.Context, a A) (T, error), opts ...run.Option[T]) func(ctx context.Context, a A) tryop.Outcome[T] {
	return run.WrapAsync1(fn, i.merge(opts)...)
}

func WrapAsync2With[A, B, T any](i *Instance[T], fn func(ctx context.Context, a A, b B) (T, error), opts ...run.Option[T]) func(ctx context.Context, a A, b B) tryop.Outcome[T] {
	return run.WrapAsync2(fn, i.merge(opts)...)
}

func WrapAsync3With[A, B, C, T any](i *Instance[T], fn func(ctx context.Context, a A, b B, c C) (T, error), opts ...run.Option[T]) func(ctx context.Context, a A, b B, c C) tryop.Outcome[T] {
	return run.WrapAsync3(fn, i.merge(opts)...)
}
