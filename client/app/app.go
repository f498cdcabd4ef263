package app

import (
	"pickup/client/api"
	"pickup/client/auth"
	"pickup/client/store"
)

type Store = store.Store[State]

// NewStore wires the root reducer with promise handling, logging and
// bearer-token sync against client.
func NewStore(client *api.Client) *Store {
	return store.New(Reduce, Initial(),
		store.Logging,
		store.Promise,
		auth.TokenSync(client),
	)
}
