// Package profile holds the profile action creators and reducers.
package profile

import (
	"context"

	"pickup/client/api"
	"pickup/client/async"
	"pickup/client/store"
)

const (
	ProfileLoad  store.Type = "PROFILE_LOAD"
	ProfilesLoad store.Type = "PROFILES_LOAD"
)

type API interface {
	QueryProfile(ctx context.Context, userID string) ([]api.Profile, error)
	GetProfileByID(ctx context.Context, id string) (api.Profile, error)
}

// QueryProfile loads every profile belonging to a user.
func QueryProfile(ctx context.Context, c API, userID string) store.Action {
	return store.Action{Type: ProfilesLoad, Payload: async.Go(ctx, func(ctx context.Context) ([]api.Profile, error) {
		return c.QueryProfile(ctx, userID)
	})}
}

func LoadUserProfile(ctx context.Context, c API, id string) store.Action {
	return store.Action{Type: ProfileLoad, Payload: async.Go(ctx, func(ctx context.Context) (api.Profile, error) {
		return c.GetProfileByID(ctx, id)
	})}
}
