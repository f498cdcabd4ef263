// Package auth holds the session action creators, reducer and token sync.
package auth

import (
	"context"

	"pickup/client/api"
	"pickup/client/async"
	"pickup/client/store"
)

const (
	UserAuth    store.Type = "USER_AUTH"
	Logout      store.Type = "LOGOUT"
	CheckedAuth store.Type = "CHECKED_AUTH"
)

type API interface {
	PostSignIn(ctx context.Context, cred api.Credentials) (api.Session, error)
	PostSignUp(ctx context.Context, cred api.Credentials) (api.Session, error)
	GetVerify(ctx context.Context) (api.User, error)
}

func SignIn(ctx context.Context, c API, cred api.Credentials) store.Action {
	return store.Action{Type: UserAuth, Payload: async.Go(ctx, func(ctx context.Context) (api.Session, error) {
		return c.PostSignIn(ctx, cred)
	})}
}

func SignUp(ctx context.Context, c API, cred api.Credentials) store.Action {
	return store.Action{Type: UserAuth, Payload: async.Go(ctx, func(ctx context.Context) (api.Session, error) {
		return c.PostSignUp(ctx, cred)
	})}
}

// AttemptRefresh re-validates a stored token. The resolved payload is the
// user only; the token already held in state is kept.
func AttemptRefresh(ctx context.Context, c API) store.Action {
	return store.Action{Type: UserAuth, Payload: async.Go(ctx, c.GetVerify)}
}

func LogoutAction() store.Action {
	return store.Action{Type: Logout}
}

func CheckedAuthAction() store.Action {
	return store.Action{Type: CheckedAuth}
}
