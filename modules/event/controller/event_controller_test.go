package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pickup/core/cache"
	"pickup/core/errors"
	"pickup/core/middleware"
	"pickup/core/params"
	"pickup/core/utils"
	"pickup/modules/event/dto"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	createdBy uuid.UUID
	created   *dto.EventRequest
}

func (s *stubService) GetEvents(context.Context, params.QueryParams) ([]dto.EventResponse, *errors.AppError) {
	return []dto.EventResponse{{ID: "e1", Name: "Yoga"}}, nil
}

func (s *stubService) GetEventByID(_ context.Context, id uuid.UUID) (*dto.EventResponse, *errors.AppError) {
	return nil, errors.NewAppError(errors.ErrNotFound, "event not found", nil)
}

func (s *stubService) CreateEvent(_ context.Context, userID uuid.UUID, req *dto.EventRequest) (*dto.EventResponse, *errors.AppError) {
	s.createdBy, s.created = userID, req
	return &dto.EventResponse{ID: "new-id", Name: req.Name}, nil
}

func (s *stubService) UpdateEvent(context.Context, uuid.UUID, uuid.UUID, *dto.EventRequest) ([]dto.EventResponse, *errors.AppError) {
	return []dto.EventResponse{}, nil
}

func (s *stubService) DeleteEvent(context.Context, uuid.UUID, uuid.UUID) ([]dto.EventResponse, *errors.AppError) {
	return []dto.EventResponse{}, nil
}

func (s *stubService) ExportICS(context.Context, uuid.UUID) (string, *errors.AppError) {
	return "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n", nil
}

func newServer(t *testing.T) (*echo.Echo, *stubService, *utils.TokenIssuer) {
	t.Helper()
	tokens := utils.NewTokenIssuer("secret", "pickup", time.Hour)
	mw := middleware.NewMiddleware(tokens, cache.NewMemoryCache())
	svc := &stubService{}
	ctrl := NewEventController(svc)

	e := echo.New()
	e.GET("/events", ctrl.GetEvents)
	e.GET("/events/:id", ctrl.GetEvent)
	e.GET("/events/:id/ics", ctrl.ExportEvent)
	e.POST("/events", ctrl.CreateEvent, mw.AuthMiddleware())
	return e, svc, tokens
}

const body = `{"name":"Evening yoga","description":"Bring a mat","type":"yoga",
	"location":{"name":"Park","coords":{"lat":1.5,"lng":2.5}},
	"time":{"start":"2026-07-01T18:00:00Z","end":"2026-07-01T19:00:00Z"}}`

func TestCreateEventRequiresToken(t *testing.T) {
	e, _, _ := newServer(t)
	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateEventBindsAndReturnsCreated(t *testing.T) {
	e, svc, tokens := newServer(t)
	userID := uuid.New()
	token, err := tokens.Generate(userID, "a@b.c")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, userID, svc.createdBy)
	assert.Equal(t, "Park", svc.created.Location.Name)
	assert.Equal(t, 1.5, *svc.created.Location.Coords.Lat)

	var envelope struct {
		Data dto.EventResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "new-id", envelope.Data.ID)
}

func TestCreateEventRejectsUnknownCategory(t *testing.T) {
	e, _, tokens := newServer(t)
	token, _ := tokens.Generate(uuid.New(), "a@b.c")

	bad := strings.Replace(body, `"yoga"`, `"Activity"`, 1)
	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(bad))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), string(errors.ErrInvalidInput))
}

func TestGetEventMapsNotFound(t *testing.T) {
	e, _, _ := newServer(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events/"+uuid.NewString(), nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportEventServesCalendar(t *testing.T) {
	e, _, _ := newServer(t)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events/"+uuid.NewString()+"/ics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/calendar")
	assert.Contains(t, rec.Body.String(), "BEGIN:VCALENDAR")
}
