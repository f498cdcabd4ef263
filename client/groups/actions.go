// Package groups holds the group action creators and reducers.
package groups

import (
	"context"

	"pickup/client/api"
	"pickup/client/async"
	"pickup/client/store"
)

const (
	GroupsLoad  store.Type = "GROUPS_LOAD"
	GroupAdd    store.Type = "GROUP_ADD"
	GroupLoad   store.Type = "GROUP_LOAD"
	GroupUpdate store.Type = "GROUP_UPDATE"
	GroupRemove store.Type = "GROUP_REMOVE"
)

type API interface {
	GetAllGroups(ctx context.Context) ([]api.Group, error)
	PostGroup(ctx context.Context, g api.Group) (api.Group, error)
	GetGroupByID(ctx context.Context, id string) (api.Group, error)
	PutGroup(ctx context.Context, g api.Group) ([]api.Group, error)
	DeleteGroup(ctx context.Context, id string) ([]api.Group, error)
}

func LoadGroups(ctx context.Context, c API) store.Action {
	return store.Action{Type: GroupsLoad, Payload: async.Go(ctx, c.GetAllGroups)}
}

func AddGroup(ctx context.Context, c API, g api.Group) store.Action {
	return store.Action{Type: GroupAdd, Payload: async.Go(ctx, func(ctx context.Context) (api.Group, error) {
		return c.PostGroup(ctx, g)
	})}
}

func LoadGroup(ctx context.Context, c API, id string) store.Action {
	return store.Action{Type: GroupLoad, Payload: async.Go(ctx, func(ctx context.Context) (api.Group, error) {
		return c.GetGroupByID(ctx, id)
	})}
}

func UpdateGroup(ctx context.Context, c API, g api.Group) store.Action {
	return store.Action{Type: GroupUpdate, Payload: async.Go(ctx, func(ctx context.Context) ([]api.Group, error) {
		return c.PutGroup(ctx, g)
	})}
}

func RemoveGroup(ctx context.Context, c API, id string) store.Action {
	return store.Action{Type: GroupRemove, Payload: async.Go(ctx, func(ctx context.Context) ([]api.Group, error) {
		return c.DeleteGroup(ctx, id)
	})}
}
