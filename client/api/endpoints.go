package api

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) GetAllEvents(ctx context.Context) ([]Event, error) {
	var out []Event
	err := c.do(ctx, http.MethodGet, "/events", nil, &out)
	return out, err
}

func (c *Client) GetEventByID(ctx context.Context, id string) (Event, error) {
	var out Event
	err := c.do(ctx, http.MethodGet, pathID("/events", id), nil, &out)
	return out, err
}

func (c *Client) PostEvent(ctx context.Context, e Event) (Event, error) {
	var out Event
	err := c.do(ctx, http.MethodPost, "/events", e, &out)
	return out, err
}

// PutEvent returns the refreshed event list.
func (c *Client) PutEvent(ctx context.Context, e Event) ([]Event, error) {
	var out []Event
	err := c.do(ctx, http.MethodPut, pathID("/events", e.ID), e, &out)
	return out, err
}

func (c *Client) DeleteEvent(ctx context.Context, id string) ([]Event, error) {
	var out []Event
	err := c.do(ctx, http.MethodDelete, pathID("/events", id), nil, &out)
	return out, err
}

func (c *Client) GetAllGroups(ctx context.Context) ([]Group, error) {
	var out []Group
	err := c.do(ctx, http.MethodGet, "/groups", nil, &out)
	return out, err
}

func (c *Client) GetGroupByID(ctx context.Context, id string) (Group, error) {
	var out Group
	err := c.do(ctx, http.MethodGet, pathID("/groups", id), nil, &out)
	return out, err
}

func (c *Client) PostGroup(ctx context.Context, g Group) (Group, error) {
	var out Group
	err := c.do(ctx, http.MethodPost, "/groups", g, &out)
	return out, err
}

func (c *Client) PutGroup(ctx context.Context, g Group) ([]Group, error) {
	var out []Group
	err := c.do(ctx, http.MethodPut, pathID("/groups", g.ID), g, &out)
	return out, err
}

func (c *Client) DeleteGroup(ctx context.Context, id string) ([]Group, error) {
	var out []Group
	err := c.do(ctx, http.MethodDelete, pathID("/groups", id), nil, &out)
	return out, err
}

// QueryProfile lists the profiles owned by a user id.
func (c *Client) QueryProfile(ctx context.Context, userID string) ([]Profile, error) {
	var out []Profile
	q := url.Values{"user": {userID}}
	err := c.do(ctx, http.MethodGet, "/profiles?"+q.Encode(), nil, &out)
	return out, err
}

func (c *Client) GetProfileByID(ctx context.Context, id string) (Profile, error) {
	var out Profile
	err := c.do(ctx, http.MethodGet, pathID("/profiles", id), nil, &out)
	return out, err
}

func (c *Client) PostSignUp(ctx context.Context, cred Credentials) (Session, error) {
	var out Session
	err := c.do(ctx, http.MethodPost, "/auth/signup", cred, &out)
	return out, err
}

func (c *Client) PostSignIn(ctx context.Context, cred Credentials) (Session, error) {
	var out Session
	err := c.do(ctx, http.MethodPost, "/auth/signin", Credentials{Email: cred.Email, Password: cred.Password}, &out)
	return out, err
}

func (c *Client) GetVerify(ctx context.Context) (User, error) {
	var out User
	err := c.do(ctx, http.MethodGet, "/auth/verify", nil, &out)
	return out, err
}

func (c *Client) PostSignOut(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/signout", nil, nil)
}
