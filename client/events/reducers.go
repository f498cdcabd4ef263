package events

import (
	"pickup/client/api"
	"pickup/client/store"
)

func ReduceEvents(state []api.Event, action store.Action) []api.Event {
	switch action.Type {
	case EventsLoad, EventUpdate, EventRemove:
		if list, ok := action.Payload.([]api.Event); ok {
			return list
		}
	}
	return state
}

func ReduceEvent(state api.Event, action store.Action) api.Event {
	switch action.Type {
	case EventAdd, EventLoad:
		if e, ok := action.Payload.(api.Event); ok {
			return e
		}
	}
	return state
}
