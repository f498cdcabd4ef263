// Package store holds the single client state value. State only changes by
// dispatching an Action through the middleware chain into the root reducer.
package store

import (
	"context"
	"sync"
)

type Type string

// Action is a tagged message. A pending action carries no payload; a failed
// one carries Err. Domain reducers only see settled actions.
type Action struct {
	Type    Type
	Payload any
	Pending bool
	Err     error
}

func (a Action) Settled() bool {
	return !a.Pending && a.Err == nil
}

type Reducer[S any] func(state S, action Action) S

type DispatchFunc func(ctx context.Context, action Action) (Action, error)

type Middleware func(next DispatchFunc) DispatchFunc

type Store[S any] struct {
	mu       sync.Mutex
	state    S
	reducer  Reducer[S]
	dispatch DispatchFunc

	subMu   sync.Mutex
	subs    map[int]func(S)
	nextSub int
}

// New builds a store. Middleware is applied in order, so the first entry sees
// an action before the rest.
func New[S any](reducer Reducer[S], initial S, middleware ...Middleware) *Store[S] {
	s := &Store[S]{
		state:   initial,
		reducer: reducer,
		subs:    make(map[int]func(S)),
	}
	d := DispatchFunc(s.reduce)
	for i := len(middleware) - 1; i >= 0; i-- {
		d = middleware[i](d)
	}
	s.dispatch = d
	return s
}

func (s *Store[S]) State() S {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch returns the action that finally reached the reducer, which for a
// future payload is the resolved action.
func (s *Store[S]) Dispatch(ctx context.Context, action Action) (Action, error) {
	return s.dispatch(ctx, action)
}

// Subscribe registers fn to run after every reduction. The returned func
// removes it.
func (s *Store[S]) Subscribe(fn func(S)) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store[S]) reduce(_ context.Context, action Action) (Action, error) {
	s.mu.Lock()
	s.state = s.reducer(s.state, action)
	state := s.state
	s.mu.Unlock()

	s.subMu.Lock()
	subs := make([]func(S), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subMu.Unlock()

	for _, fn := range subs {
		fn(state)
	}
	return action, nil
}
