package main

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/urfave/cli/v2"
	"golang.org/x/oauth2"

	"pickup/client/api"
	"pickup/client/app"
	"pickup/client/auth"
	"pickup/core/logger"
)

func saveToken(path string, token *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("unable to create token file: %w", err)
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(token)
}

// loadToken returns nil without error when no session was saved.
func loadToken(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, fmt.Errorf("unable to read token file: %w", err)
	}
	return tok, nil
}

type session struct {
	client *api.Client
	store  *app.Store
}

// newSession builds the client and store and, when a token was saved,
// restores the signed-in user.
func newSession(c *cli.Context) (*session, error) {
	client := api.NewClient(c.String("api"))
	st := app.NewStore(client)
	s := &session{client: client, store: st}

	tok, err := loadToken(c.String("token-file"))
	if err != nil {
		return nil, err
	}
	if tok != nil && tok.AccessToken != "" {
		client.SetToken(tok.AccessToken)
		if _, err := st.Dispatch(c.Context, auth.AttemptRefresh(c.Context, client)); err != nil {
			logger.Warn("saved session rejected", "error", err)
			_, _ = st.Dispatch(c.Context, auth.LogoutAction())
		}
	}
	_, _ = st.Dispatch(c.Context, auth.CheckedAuthAction())
	return s, nil
}

func (s *session) requireUser() error {
	if app.GetUser(s.store.State()) == nil {
		return fmt.Errorf("not signed in, run `pickup signin` first")
	}
	return nil
}
