package chain

import (
	"context"

	"github.com/ib-77/tryop/pkg/tryop"
	"github.com/ib-77/tryop/pkg/tryop/pipe"
)

// Chain wraps an Outcome with context to enable fluent composition
type Chain[T any] struct {
	ctx     context.Context
	outcome tryop.Outcome[T]
}

// Start creates a new chain from an Outcome
func Start[T any](ctx context.Context, outcome tryop.Outcome[T]) *Chain[T] {
	return &Chain[T]{
		ctx:     ctx,
		outcome: outcome,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return &Chain[T]{
		ctx:     ctx,
		outcome: tryop.Success(value),
	}
}

// Outcome returns the underlying Outcome
func (c *Chain[T]) Outcome() tryop.Outcome[T] {
	return c.outcome
}

// Then chains a function that returns Outcome[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) tryop.Outcome[U]) *Chain[U] {
	return &Chain[U]{
		ctx:     c.ctx,
		outcome: pipe.Switch[T, U](c.ctx, c.outcome, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return &Chain[U]{
		ctx:     c.ctx,
		outcome: pipe.Try[T, U](c.ctx, c.outcome, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx:     c.ctx,
		outcome: pipe.Map[T, U](c.ctx, c.outcome, onSuccess),
	}
}

// Ensure performs a side effect without changing the outcome
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		outcome: pipe.Tee[T](c.ctx, c.outcome,
			func(ctx context.Context, o tryop.Outcome[T]) {
				if o.IsSuccess() {
					onSuccess(ctx, o.Value())
				}
			}),
	}
}

// Finally collapses the chain into a final value using pipe.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U,
	onFailure func(context.Context, error) U) U {
	return pipe.Finally[T, U](c.ctx, c.outcome, onSuccess, onFailure)
}
