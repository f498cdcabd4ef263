// Package app combines the domain slices into the root client state.
package app

import (
	"pickup/client/api"
	"pickup/client/auth"
	"pickup/client/events"
	"pickup/client/groups"
	"pickup/client/profile"
	"pickup/client/store"
)

type State struct {
	Auth     auth.State
	Events   []api.Event
	Event    api.Event
	Groups   []api.Group
	Group    api.Group
	Profile  api.Profile
	Profiles []api.Profile
	Requests store.Requests
}

func Initial() State {
	return State{
		Events:   []api.Event{},
		Groups:   []api.Group{},
		Profiles: []api.Profile{},
		Requests: store.Requests{},
	}
}

// Reduce routes every action to the request tracker and settled actions to
// each slice reducer. No slice reducer reads another slice.
func Reduce(state State, action store.Action) State {
	state.Requests = store.ReduceRequests(state.Requests, action)
	if !action.Settled() {
		return state
	}
	state.Auth = auth.Reduce(state.Auth, action)
	state.Events = events.ReduceEvents(state.Events, action)
	state.Event = events.ReduceEvent(state.Event, action)
	state.Groups = groups.ReduceGroups(state.Groups, action)
	state.Group = groups.ReduceGroup(state.Group, action)
	state.Profile = profile.ReduceProfile(state.Profile, action)
	state.Profiles = profile.ReduceProfiles(state.Profiles, action)
	return state
}

func GetEvents(s State) []api.Event { return s.Events }

func GetUser(s State) *api.User { return s.Auth.User }

func GetUserProfile(s State) api.Profile { return s.Profile }

func GetGroups(s State) []api.Group { return s.Groups }
