package profile

import (
	"pickup/client/api"
	"pickup/client/store"
)

func ReduceProfile(state api.Profile, action store.Action) api.Profile {
	if action.Type == ProfileLoad {
		if p, ok := action.Payload.(api.Profile); ok {
			return p
		}
	}
	return state
}

func ReduceProfiles(state []api.Profile, action store.Action) []api.Profile {
	if action.Type == ProfilesLoad {
		if list, ok := action.Payload.([]api.Profile); ok {
			return list
		}
	}
	return state
}
