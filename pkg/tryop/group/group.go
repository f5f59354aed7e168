package group

import (
	"context"
	"fmt"

	"github.com/ib-77/tryop/pkg/tryop"
	"github.com/ib-77/tryop/pkg/tryop/run"
)

// Op is one member of a fan-out group: an independent asynchronous
// operation identified by its key in the map.
type Op[T any] func(ctx context.Context) (T, error)

// All launches every member of ops concurrently and succeeds with a
// same-keyed map of values once every member has succeeded. The first
// member to fail decides the failure: slower members keep running to
// completion but their results are discarded, and no cancellation is
// sent to them. An empty group succeeds immediately with an empty map.
//
// Every member runs through run.Async with the same option set, so
// retry, deadline, mapping and hooks apply to each member uniformly.
// All panics if any member is nil.
func All[T any](ctx context.Context, ops map[string]Op[T], opts ...run.Option[T]) tryop.Outcome[map[string]T] {
	if len(ops) == 0 {
		return tryop.Success(map[string]T{})
	}

	ch := launch(ctx, ops, opts)

	values := make(map[string]T, len(ops))
	for range ops {
		k := <-ch
		if k.out.IsFailure() {
			return tryop.FailFrom[T, map[string]T](k.out)
		}
		values[k.key] = k.out.Value()
	}
	return tryop.Success(values)
}

// AllSettled launches every member concurrently and always waits for
// all of them, returning one keyed Outcome per member. It never
// short-circuits. AllSettled panics if any member is nil.
func AllSettled[T any](ctx context.Context, ops map[string]Op[T], opts ...run.Option[T]) map[string]tryop.Outcome[T] {
	outcomes := make(map[string]tryop.Outcome[T], len(ops))
	if len(ops) == 0 {
		return outcomes
	}

	ch := launch(ctx, ops, opts)

	for range ops {
		k := <-ch
		outcomes[k.key] = k.out
	}
	return outcomes
}

type keyed[T any] struct {
	key string
	out tryop.Outcome[T]
}

func launch[T any](ctx context.Context, ops map[string]Op[T], opts []run.Option[T]) <-chan keyed[T] {
	for key, op := range ops {
		if op == nil {
			panic(fmt.Sprintf("tryop/group: member %q must not be nil", key))
		}
	}

	// Buffered so members settling after a short-circuit return never
	// block; their sends are inert.
	ch := make(chan keyed[T], len(ops))
	for key, op := range ops {
		key, op := key, op
		go func() {
			ch <- keyed[T]{key: key, out: run.Async(ctx, op, opts...)}
		}()
	}
	return ch
}
