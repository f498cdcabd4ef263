package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pickup/core/cache"
	"pickup/core/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*echo.Echo, *utils.TokenIssuer, *cache.MemoryCache) {
	t.Helper()
	tokens := utils.NewTokenIssuer("secret", "pickup", time.Hour)
	mem := cache.NewMemoryCache()
	mw := NewMiddleware(tokens, mem)

	e := echo.New()
	e.GET("/me", func(c echo.Context) error {
		id, err := UserID(c)
		if err != nil {
			return err
		}
		return c.String(http.StatusOK, id.String())
	}, mw.AuthMiddleware())
	return e, tokens, mem
}

func do(e *echo.Echo, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	e, tokens, _ := setup(t)
	userID := uuid.New()
	token, err := tokens.Generate(userID, "a@b.c")
	require.NoError(t, err)

	rec := do(e, token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID.String(), rec.Body.String())
}

func TestAuthMiddlewareRejectsMissingAndGarbage(t *testing.T) {
	e, _, _ := setup(t)
	assert.Equal(t, http.StatusUnauthorized, do(e, "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(e, "garbage").Code)
}

func TestAuthMiddlewareRejectsRevokedToken(t *testing.T) {
	e, tokens, mem := setup(t)
	token, err := tokens.Generate(uuid.New(), "a@b.c")
	require.NoError(t, err)
	claims, err := tokens.Parse(token)
	require.NoError(t, err)

	require.NoError(t, mem.BlacklistToken(context.Background(), claims.ID, time.Hour))
	assert.Equal(t, http.StatusUnauthorized, do(e, token).Code)
}
