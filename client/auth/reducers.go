package auth

import (
	"pickup/client/api"
	"pickup/client/store"
)

type State struct {
	User        *api.User
	Token       string
	CheckedAuth bool
}

func Reduce(state State, action store.Action) State {
	switch action.Type {
	case UserAuth:
		switch p := action.Payload.(type) {
		case api.Session:
			user := p.User
			state.User = &user
			state.Token = p.Token
		case api.User:
			state.User = &p
		}
	case Logout:
		state.User = nil
		state.Token = ""
	case CheckedAuth:
		state.CheckedAuth = true
	}
	return state
}
