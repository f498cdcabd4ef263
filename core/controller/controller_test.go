package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pickup/core/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorResponseMapsAppCodes(t *testing.T) {
	cases := map[errors.ErrorCode]int{
		errors.ErrNotFound:           http.StatusNotFound,
		errors.ErrInvalidInput:       http.StatusBadRequest,
		errors.ErrInvalidCredentials: http.StatusUnauthorized,
		errors.ErrAlreadyExists:      http.StatusConflict,
		errors.ErrForbidden:          http.StatusForbidden,
		errors.ErrGetFailed:          http.StatusInternalServerError,
	}

	h := NewBaseController()
	e := echo.New()
	for code, want := range cases {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		err := h.ErrorResponse(c, errors.NewAppError(code, "boom", nil))

		he, ok := err.(*echo.HTTPError)
		require.True(t, ok, code)
		assert.Equal(t, want, he.Code, code)
		body := he.Message.(*ErrorResponse)
		assert.Equal(t, code, body.Code)
		assert.Equal(t, "boom", body.Message)
	}
}

func TestSuccessResponseEnvelope(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, NewBaseController().SuccessResponse(c, map[string]int{"n": 1}, "ok"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":{"n":1}`)
	assert.Contains(t, rec.Body.String(), `"message":"ok"`)
}
