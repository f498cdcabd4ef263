// Package events holds the event action creators and reducers.
package events

import (
	"context"

	"pickup/client/api"
	"pickup/client/async"
	"pickup/client/store"
)

const (
	EventsLoad  store.Type = "EVENTS_LOAD"
	EventAdd    store.Type = "EVENT_ADD"
	EventLoad   store.Type = "EVENT_LOAD"
	EventUpdate store.Type = "EVENT_UPDATE"
	EventRemove store.Type = "EVENT_REMOVE"
)

type API interface {
	GetAllEvents(ctx context.Context) ([]api.Event, error)
	PostEvent(ctx context.Context, e api.Event) (api.Event, error)
	GetEventByID(ctx context.Context, id string) (api.Event, error)
	PutEvent(ctx context.Context, e api.Event) ([]api.Event, error)
	DeleteEvent(ctx context.Context, id string) ([]api.Event, error)
}

func LoadEvents(ctx context.Context, c API) store.Action {
	return store.Action{Type: EventsLoad, Payload: async.Go(ctx, c.GetAllEvents)}
}

func AddEvent(ctx context.Context, c API, e api.Event) store.Action {
	return store.Action{Type: EventAdd, Payload: async.Go(ctx, func(ctx context.Context) (api.Event, error) {
		return c.PostEvent(ctx, e)
	})}
}

func LoadEvent(ctx context.Context, c API, id string) store.Action {
	return store.Action{Type: EventLoad, Payload: async.Go(ctx, func(ctx context.Context) (api.Event, error) {
		return c.GetEventByID(ctx, id)
	})}
}

func UpdateEvent(ctx context.Context, c API, e api.Event) store.Action {
	return store.Action{Type: EventUpdate, Payload: async.Go(ctx, func(ctx context.Context) ([]api.Event, error) {
		return c.PutEvent(ctx, e)
	})}
}

func RemoveEvent(ctx context.Context, c API, id string) store.Action {
	return store.Action{Type: EventRemove, Payload: async.Go(ctx, func(ctx context.Context) ([]api.Event, error) {
		return c.DeleteEvent(ctx, id)
	})}
}
