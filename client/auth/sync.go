package auth

import (
	"context"

	"pickup/client/api"
	"pickup/client/store"
	"pickup/core/logger"
)

type TokenSetter interface {
	SetToken(token string)
}

// TokenSync keeps the API client's bearer token in step with the session.
// It must run after Promise so it sees resolved sessions.
func TokenSync(setter TokenSetter) store.Middleware {
	return func(next store.DispatchFunc) store.DispatchFunc {
		return func(ctx context.Context, action store.Action) (store.Action, error) {
			if action.Settled() {
				switch action.Type {
				case UserAuth:
					if s, ok := action.Payload.(api.Session); ok {
						setter.SetToken(s.Token)
						logger.Debug("session token updated", "user", s.User.ID)
					}
				case Logout:
					setter.SetToken("")
				}
			}
			return next(ctx, action)
		}
	}
}
