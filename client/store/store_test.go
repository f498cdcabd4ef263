package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pickup/client/async"
)

const (
	add   Type = "ADD"
	reset Type = "RESET"
)

type counter struct {
	Total    int
	Requests Requests
}

func reduceCounter(state counter, action Action) counter {
	state.Requests = ReduceRequests(state.Requests, action)
	if !action.Settled() {
		return state
	}
	switch action.Type {
	case add:
		if n, ok := action.Payload.(int); ok {
			state.Total += n
		}
	case reset:
		state.Total = 0
	}
	return state
}

func newCounterStore() *Store[counter] {
	return New(reduceCounter, counter{}, Promise)
}

func TestDispatchPlainAction(t *testing.T) {
	s := newCounterStore()

	got, err := s.Dispatch(context.Background(), Action{Type: add, Payload: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, got.Payload)
	assert.Equal(t, 3, s.State().Total)
	assert.Equal(t, async.Idle, s.State().Requests.Status(add))
}

func TestDispatchResolvesFuture(t *testing.T) {
	s := newCounterStore()

	var seen []bool
	s.Subscribe(func(st counter) {
		seen = append(seen, st.Requests.Status(add) == async.Pending)
	})

	got, err := s.Dispatch(context.Background(), Action{Type: add, Payload: async.Resolved(5)})
	require.NoError(t, err)
	assert.Equal(t, 5, got.Payload)
	assert.Equal(t, 5, s.State().Total)
	assert.Equal(t, []bool{true, false}, seen)
}

func TestDispatchRejectedFutureSkipsDomainState(t *testing.T) {
	s := newCounterStore()
	_, err := s.Dispatch(context.Background(), Action{Type: add, Payload: 2})
	require.NoError(t, err)

	boom := errors.New("boom")
	got, err := s.Dispatch(context.Background(), Action{Type: add, Payload: async.Rejected[int](boom)})

	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, got.Err, boom)
	assert.Equal(t, 2, s.State().Total)

	req := s.State().Requests[add]
	assert.Equal(t, async.Failure, req.Status)
	assert.ErrorIs(t, req.Err, boom)
}

func TestUnsubscribe(t *testing.T) {
	s := newCounterStore()
	calls := 0
	unsubscribe := s.Subscribe(func(counter) { calls++ })

	_, _ = s.Dispatch(context.Background(), Action{Type: add, Payload: 1})
	unsubscribe()
	_, _ = s.Dispatch(context.Background(), Action{Type: add, Payload: 1})

	assert.Equal(t, 1, calls)
}

func TestMiddlewareOrder(t *testing.T) {
	var order []string
	tag := func(name string) Middleware {
		return func(next DispatchFunc) DispatchFunc {
			return func(ctx context.Context, a Action) (Action, error) {
				order = append(order, name)
				return next(ctx, a)
			}
		}
	}
	s := New(reduceCounter, counter{}, tag("first"), tag("second"))

	_, err := s.Dispatch(context.Background(), Action{Type: reset})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestConcurrentDispatch(t *testing.T) {
	s := newCounterStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Dispatch(context.Background(), Action{Type: add, Payload: async.Resolved(1)})
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, s.State().Total)
}

func TestReduceRequestsCopies(t *testing.T) {
	before := Requests{}
	after := ReduceRequests(before, Action{Type: add, Pending: true})

	assert.Empty(t, before)
	assert.Equal(t, async.Pending, after.Status(add))
	assert.Equal(t, async.Idle, after.Status(reset))

	done := ReduceRequests(after, Action{Type: add})
	assert.Equal(t, async.Success, done.Status(add))
	assert.Equal(t, async.Pending, after.Status(add))
}

func TestReduceRequestsIgnoresUntrackedTypes(t *testing.T) {
	state := Requests{add: {Status: async.Success}}

	next := ReduceRequests(state, Action{Type: "NOT_A_REAL_TYPE"})
	assert.Equal(t, state, next)
	assert.Equal(t, async.Idle, next.Status("NOT_A_REAL_TYPE"))

	next = ReduceRequests(Requests{}, Action{Type: reset})
	assert.Empty(t, next)
}
