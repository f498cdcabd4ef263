package store

import "pickup/client/async"

type RequestState struct {
	Status async.Status
	Err    error
}

// Requests maps an action type to the status of its latest dispatch.
type Requests map[Type]RequestState

func (r Requests) Status(t Type) async.Status {
	if st, ok := r[t]; ok {
		return st.Status
	}
	return async.Idle
}

// ReduceRequests tracks a type from its first pending dispatch on. Settled
// actions of untracked types return state itself; otherwise the result is
// a copy and the input is never mutated.
func ReduceRequests(state Requests, action Action) Requests {
	if _, tracked := state[action.Type]; !tracked && !action.Pending {
		return state
	}
	next := make(Requests, len(state)+1)
	for k, v := range state {
		next[k] = v
	}
	switch {
	case action.Pending:
		next[action.Type] = RequestState{Status: async.Pending}
	case action.Err != nil:
		next[action.Type] = RequestState{Status: async.Failure, Err: action.Err}
	default:
		next[action.Type] = RequestState{Status: async.Success}
	}
	return next
}
