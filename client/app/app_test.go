package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pickup/client/api"
	"pickup/client/async"
	"pickup/client/auth"
	"pickup/client/groups"
	"pickup/client/store"
	"pickup/core/errors"
)

func TestReduceRoutesSlices(t *testing.T) {
	g := []api.Group{{ID: "g1"}, {ID: "g2"}}
	s := Reduce(Initial(), store.Action{Type: groups.GroupsLoad, Pending: true})
	assert.Equal(t, async.Pending, s.Requests.Status(groups.GroupsLoad))
	assert.Empty(t, s.Groups)

	s = Reduce(s, store.Action{Type: groups.GroupsLoad, Payload: g})
	assert.Equal(t, g, s.Groups)
	assert.Empty(t, s.Events)
	assert.Equal(t, async.Success, s.Requests.Status(groups.GroupsLoad))

	s = Reduce(s, store.Action{Type: groups.GroupRemove, Payload: []api.Group{}})
	assert.Empty(t, GetGroups(s))
}

func TestReduceSkipsUnsettled(t *testing.T) {
	before := Reduce(Initial(), store.Action{Type: groups.GroupsLoad, Pending: true})
	before = Reduce(before, store.Action{Type: groups.GroupsLoad, Payload: []api.Group{{ID: "g1"}}})
	after := Reduce(before, store.Action{Type: groups.GroupsLoad, Err: errors.NewAppError(errors.ErrUpstream, "down", nil)})

	assert.Equal(t, before.Groups, after.Groups)
	assert.Equal(t, async.Failure, after.Requests.Status(groups.GroupsLoad))
	assert.Equal(t, async.Success, before.Requests.Status(groups.GroupsLoad))
}

func TestReduceUnknownTypeLeavesStateUnchanged(t *testing.T) {
	initial := Initial()
	assert.Equal(t, initial, Reduce(initial, store.Action{Type: "NOT_A_REAL_TYPE"}))

	loaded := Reduce(initial, store.Action{Type: groups.GroupsLoad, Pending: true})
	loaded = Reduce(loaded, store.Action{Type: groups.GroupsLoad, Payload: []api.Group{{ID: "g1"}}})
	assert.Equal(t, loaded, Reduce(loaded, store.Action{Type: "NOT_A_REAL_TYPE", Payload: 42}))
}

func envelope(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"status": 200, "message": "ok", "data": data})
}

func TestStoreAgainstServer(t *testing.T) {
	var authHeader string
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/signin", func(w http.ResponseWriter, r *http.Request) {
		envelope(w, api.Session{Token: "tok", User: api.User{ID: "u1", Email: "a@b.co"}})
	})
	mux.HandleFunc("/groups", func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		envelope(w, []api.Group{{ID: "g1", Name: "Runners"}})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := api.NewClient(srv.URL)
	st := NewStore(client)
	ctx := context.Background()

	_, err := st.Dispatch(ctx, auth.SignIn(ctx, client, api.Credentials{Email: "a@b.co", Password: "password1"}))
	require.NoError(t, err)
	require.NotNil(t, GetUser(st.State()))
	assert.Equal(t, "u1", GetUser(st.State()).ID)

	resolved, err := st.Dispatch(ctx, groups.LoadGroups(ctx, client))
	require.NoError(t, err)
	assert.Equal(t, []api.Group{{ID: "g1", Name: "Runners"}}, resolved.Payload)
	assert.Equal(t, "Bearer tok", authHeader)
	assert.Len(t, st.State().Groups, 1)
}
