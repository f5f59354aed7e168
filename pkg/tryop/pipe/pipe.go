package pipe

import (
	"context"

	"github.com/ib-77/tryop/pkg/tryop"
)

func Switch[In, Out any](ctx context.Context, in tryop.Outcome[In],
	onSuccess func(ctx context.Context, v In) tryop.Outcome[Out]) tryop.Outcome[Out] {

	if in.IsSuccess() {
		return onSuccess(ctx, in.Value())
	}
	return tryop.FailFrom[In, Out](in)
}

func Map[In, Out any](ctx context.Context, in tryop.Outcome[In],
	onSuccess func(ctx context.Context, v In) Out) tryop.Outcome[Out] {

	if in.IsSuccess() {
		return tryop.Success(onSuccess(ctx, in.Value()))
	}
	return tryop.FailFrom[In, Out](in)
}

func Try[In, Out any](ctx context.Context, in tryop.Outcome[In],
	onTryExecute func(ctx context.Context, v In) (Out, error)) tryop.Outcome[Out] {

	if in.IsSuccess() {

		out, err := onTryExecute(ctx, in.Value())
		if err != nil {
			return tryop.Fail[Out](err)
		}

		return tryop.Success(out)
	}
	return tryop.FailFrom[In, Out](in)
}

func Tee[T any](ctx context.Context, in tryop.Outcome[T],
	onSuccess func(ctx context.Context, o tryop.Outcome[T])) tryop.Outcome[T] {

	if in.IsSuccess() {
		onSuccess(ctx, in)
	}

	return in
}

func DoubleTee[T any](ctx context.Context, in tryop.Outcome[T],
	onSuccess func(ctx context.Context, v T),
	onError func(ctx context.Context, err error)) tryop.Outcome[T] {

	if in.IsSuccess() {
		onSuccess(ctx, in.Value())
	} else {
		onError(ctx, in.Err())
	}

	return in
}

func FailOnError[T any](ctx context.Context, in tryop.Outcome[T],
	maybeErr func(ctx context.Context, v T) error) tryop.Outcome[T] {
	if in.IsSuccess() {
		err := maybeErr(ctx, in.Value())
		if err != nil {
			return tryop.Fail[T](err)
		}
		return in
	}
	return in
}

func Finally[In, Out any](ctx context.Context, in tryop.Outcome[In],
	onSuccess func(ctx context.Context, v In) Out,
	onError func(ctx context.Context, err error) Out) Out {

	if in.IsSuccess() {
		return onSuccess(ctx, in.Value())
	}
	return onError(ctx, in.Err())
}
