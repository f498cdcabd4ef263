// Package api is the HTTP client for the /api/v1 REST surface.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"pickup/core/errors"
)

const defaultTimeout = 30 * time.Second

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type errorBody struct {
	Code    errors.ErrorCode `json:"code"`
	Message string           `json:"message"`
}

type Client struct {
	baseURL string
	http    *http.Client

	mu     sync.RWMutex
	tokens oauth2.TokenSource
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithTokenSource(ts oauth2.TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// NewClient expects baseURL to include the /api/v1 prefix.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken switches the client to a static bearer token. An empty token
// drops authentication.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if token == "" {
		c.tokens = nil
		return
	}
	c.tokens = oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
}

func (c *Client) authorize(req *http.Request) error {
	c.mu.RLock()
	ts := c.tokens
	c.mu.RUnlock()
	if ts == nil {
		return nil
	}
	tok, err := ts.Token()
	if err != nil {
		return errors.NewAppError(errors.ErrUnauthorized, "token source failed", err)
	}
	tok.SetAuthHeader(req)
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errors.NewAppError(errors.ErrInvalidRequestData, "encode request", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.NewAppError(errors.ErrInvalidRequestData, "build request", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if err := c.authorize(req); err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.NewAppError(errors.ErrUpstream, fmt.Sprintf("%s %s", method, path), err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.NewAppError(errors.ErrUpstream, "read response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, raw)
	}
	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return errors.NewAppError(errors.ErrUpstream, "decode envelope", err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return errors.NewAppError(errors.ErrUpstream, "decode data", err)
	}
	return nil
}

func decodeError(status int, raw []byte) error {
	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil || body.Code == "" {
		code := errors.ErrUpstream
		switch status {
		case http.StatusUnauthorized:
			code = errors.ErrUnauthorized
		case http.StatusNotFound:
			code = errors.ErrNotFound
		}
		msg := body.Message
		if msg == "" {
			msg = http.StatusText(status)
		}
		return errors.NewAppError(code, msg, nil)
	}
	return errors.NewAppError(body.Code, body.Message, nil)
}

func pathID(prefix, id string) string {
	return prefix + "/" + url.PathEscape(id)
}
