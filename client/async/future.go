// Package async models a single outstanding request as a future with an
// explicit pending, success or failure status.
package async

import (
	"context"
	"sync"
)

type Status int

const (
	Idle Status = iota
	Pending
	Success
	Failure
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return "idle"
	}
}

// Awaiter is implemented by every Future regardless of its value type.
type Awaiter interface {
	AwaitAny(ctx context.Context) (any, error)
}

type Future[T any] struct {
	done  chan struct{}
	once  sync.Once
	value T
	err   error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

func (f *Future[T]) settle(value T, err error) {
	f.once.Do(func() {
		f.value, f.err = value, err
		close(f.done)
	})
}

// Go runs fn on its own goroutine and returns its future result.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := newFuture[T]()
	go func() {
		f.settle(fn(ctx))
	}()
	return f
}

func Resolved[T any](value T) *Future[T] {
	f := newFuture[T]()
	f.settle(value, nil)
	return f
}

func Rejected[T any](err error) *Future[T] {
	f := newFuture[T]()
	var zero T
	f.settle(zero, err)
	return f
}

// Await blocks until the future settles or ctx is done.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func (f *Future[T]) AwaitAny(ctx context.Context) (any, error) {
	return f.Await(ctx)
}

func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Status reports the state without blocking.
func (f *Future[T]) Status() Status {
	select {
	case <-f.done:
		if f.err != nil {
			return Failure
		}
		return Success
	default:
		return Pending
	}
}
