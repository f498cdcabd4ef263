package groups

import (
	"pickup/client/api"
	"pickup/client/store"
)

// ReduceGroups owns the group list. Every list-returning action replaces it.
func ReduceGroups(state []api.Group, action store.Action) []api.Group {
	switch action.Type {
	case GroupsLoad, GroupUpdate, GroupRemove:
		if list, ok := action.Payload.([]api.Group); ok {
			return list
		}
	}
	return state
}

// ReduceGroup owns the group currently being viewed.
func ReduceGroup(state api.Group, action store.Action) api.Group {
	switch action.Type {
	case GroupAdd, GroupLoad:
		if g, ok := action.Payload.(api.Group); ok {
			return g
		}
	}
	return state
}
