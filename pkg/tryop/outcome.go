package tryop

import (
	"time"

	"github.com/google/uuid"
)

type Outcome[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	ok        bool
}

func Success[T any](v T) Outcome[T] {
	return Outcome[T]{
		value:     v,
		err:       nil,
		ok:        true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Outcome[T] {
	if err == nil {
		err = ErrUnknown
	}
	return Outcome[T]{
		err:       err,
		ok:        false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom re-keys a failed outcome to a different value type, keeping
// its identity and creation time. Calling it on a success panics.
func FailFrom[In, Out any](from Outcome[In]) Outcome[Out] {
	if from.ok {
		panic("tryop: FailFrom on a success")
	}
	return Outcome[Out]{
		err:       from.err,
		ok:        false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (o Outcome[T]) Value() T {
	return o.value
}

func (o Outcome[T]) Err() error {
	return o.err
}

func (o Outcome[T]) IsSuccess() bool {
	return o.ok
}

func (o Outcome[T]) IsFailure() bool {
	return !o.ok
}

// Pair returns the outcome in positional (value, error) form for
// destructuring at call sites that prefer the plain Go shape.
func (o Outcome[T]) Pair() (T, error) {
	return o.value, o.err
}

// ValueOr returns the value on success, def otherwise.
func (o Outcome[T]) ValueOr(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

func (o Outcome[T]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome[T]) Id() uuid.UUID {
	return o.id
}
