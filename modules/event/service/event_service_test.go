package service

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"pickup/core/cache"
	"pickup/core/constants"
	"pickup/core/errors"
	"pickup/core/params"
	"pickup/core/storage"
	"pickup/modules/event/dto"
	"pickup/modules/event/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	mu        sync.Mutex
	events    map[uuid.UUID]*entity.Event
	listCalls int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{events: map[uuid.UUID]*entity.Event{}}
}

func (r *fakeRepo) Create(_ context.Context, e *entity.Event) (*entity.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	created := *e
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	r.events[created.ID] = &created
	return &created, nil
}

func (r *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeRepo) List(_ context.Context, p params.QueryParams) ([]entity.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listCalls++
	out := []entity.Event{}
	for _, e := range r.events {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].TimeStart.Equal(out[j].TimeStart) {
			return out[i].TimeStart.Before(out[j].TimeStart)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	if p.Paged() {
		start := min(p.Offset(), len(out))
		end := min(start+p.PageSize, len(out))
		out = out[start:end]
	}
	return out, nil
}

func (r *fakeRepo) Update(_ context.Context, id uuid.UUID, e *entity.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.events[id]
	if !ok {
		return sql.ErrNoRows
	}
	existing.Name = e.Name
	existing.Description = e.Description
	existing.Type = e.Type
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.events, id)
	return nil
}

func (r *fakeRepo) MarkProcessed(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[id]
	if !ok || e.ProcessedAt != nil {
		return false, nil
	}
	now := time.Now()
	e.ProcessedAt = &now
	return true, nil
}

type recordingQueue struct {
	tasks []string
}

func (q *recordingQueue) Enqueue(_ context.Context, taskType string, _ any) error {
	q.tasks = append(q.tasks, taskType)
	return nil
}

func newRequest() *dto.EventRequest {
	lat, lng := 40.0, -105.2
	start := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	return &dto.EventRequest{
		Name:        "Flatirons hike",
		Description: "Morning loop",
		Type:        "hiking",
		Location:    dto.Location{Name: "Chautauqua", Coords: dto.Coords{Lat: &lat, Lng: &lng}},
		Time:        dto.TimeWindow{Start: start, End: start.Add(3 * time.Hour)},
	}
}

func defaultParams() params.QueryParams {
	return params.QueryParams{PageNumber: constants.DefaultPageNumber}
}

func TestCreateEventDefaultsHostAndEnqueues(t *testing.T) {
	repo, q := newFakeRepo(), &recordingQueue{}
	svc := NewEventService(repo, cache.NewMemoryCache(), q, nil)
	userID := uuid.New()

	created, appErr := svc.CreateEvent(context.Background(), userID, newRequest())
	require.Nil(t, appErr)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, []string{userID.String()}, created.Host)
	assert.Equal(t, []string{userID.String()}, created.Attendance)
	assert.Equal(t, "Chautauqua", created.Location.Name)
	assert.Equal(t, []string{constants.TaskEventCreated}, q.tasks)
}

func TestGetEventsUsesCacheUntilMutation(t *testing.T) {
	repo := newFakeRepo()
	svc := NewEventService(repo, cache.NewMemoryCache(), &recordingQueue{}, nil)
	ctx := context.Background()

	_, appErr := svc.GetEvents(ctx, defaultParams())
	require.Nil(t, appErr)
	_, appErr = svc.GetEvents(ctx, defaultParams())
	require.Nil(t, appErr)
	assert.Equal(t, 1, repo.listCalls)

	_, appErr = svc.CreateEvent(ctx, uuid.New(), newRequest())
	require.Nil(t, appErr)

	events, appErr := svc.GetEvents(ctx, defaultParams())
	require.Nil(t, appErr)
	assert.Len(t, events, 1)
	assert.Equal(t, 2, repo.listCalls)
}

func TestUpdateEventReturnsFullList(t *testing.T) {
	repo := newFakeRepo()
	svc := NewEventService(repo, cache.NewMemoryCache(), &recordingQueue{}, nil)
	ctx := context.Background()
	host := uuid.New()

	first, _ := svc.CreateEvent(ctx, host, newRequest())
	_, _ = svc.CreateEvent(ctx, host, newRequest())

	req := newRequest()
	req.Name = "Renamed hike"
	list, appErr := svc.UpdateEvent(ctx, host, uuid.MustParse(first.ID), req)
	require.Nil(t, appErr)
	require.Len(t, list, 2)

	names := []string{list[0].Name, list[1].Name}
	assert.Contains(t, names, "Renamed hike")
}

func TestUpdateEventRejectsNonHost(t *testing.T) {
	repo := newFakeRepo()
	svc := NewEventService(repo, cache.NewMemoryCache(), &recordingQueue{}, nil)
	ctx := context.Background()

	created, _ := svc.CreateEvent(ctx, uuid.New(), newRequest())
	_, appErr := svc.UpdateEvent(ctx, uuid.New(), uuid.MustParse(created.ID), newRequest())
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrForbidden, appErr.Code)
}

type profileIDs map[uuid.UUID][]string

func (p profileIDs) ProfileIDs(_ context.Context, userID uuid.UUID) ([]string, error) {
	return p[userID], nil
}

func TestUpdateEventAcceptsHostProfile(t *testing.T) {
	owner := uuid.New()
	profileID := uuid.New().String()
	repo := newFakeRepo()
	svc := NewEventService(repo, cache.NewMemoryCache(), &recordingQueue{}, profileIDs{owner: {profileID}})
	ctx := context.Background()

	req := newRequest()
	req.Host = []string{profileID}
	req.Attendance = []string{profileID}
	created, appErr := svc.CreateEvent(ctx, owner, req)
	require.Nil(t, appErr)
	assert.Equal(t, []string{profileID}, created.Host)

	update := newRequest()
	update.Name = "Sunset hike"
	list, appErr := svc.UpdateEvent(ctx, owner, uuid.MustParse(created.ID), update)
	require.Nil(t, appErr)
	require.Len(t, list, 1)
	assert.Equal(t, "Sunset hike", list[0].Name)

	_, appErr = svc.DeleteEvent(ctx, uuid.New(), uuid.MustParse(created.ID))
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrForbidden, appErr.Code)
}

func TestDeleteEventReturnsRemainingList(t *testing.T) {
	repo := newFakeRepo()
	svc := NewEventService(repo, cache.NewMemoryCache(), &recordingQueue{}, nil)
	ctx := context.Background()
	host := uuid.New()

	created, _ := svc.CreateEvent(ctx, host, newRequest())
	list, appErr := svc.DeleteEvent(ctx, host, uuid.MustParse(created.ID))
	require.Nil(t, appErr)
	assert.Empty(t, list)
}

func TestGetEventByIDNotFound(t *testing.T) {
	svc := NewEventService(newFakeRepo(), cache.NewMemoryCache(), &recordingQueue{}, nil)
	_, appErr := svc.GetEventByID(context.Background(), uuid.New())
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestExportICS(t *testing.T) {
	repo := newFakeRepo()
	svc := NewEventService(repo, cache.NewMemoryCache(), &recordingQueue{}, nil)
	ctx := context.Background()

	created, _ := svc.CreateEvent(ctx, uuid.New(), newRequest())
	doc, appErr := svc.ExportICS(ctx, uuid.MustParse(created.ID))
	require.Nil(t, appErr)

	assert.True(t, strings.HasPrefix(doc, "BEGIN:VCALENDAR"))
	assert.Contains(t, doc, "SUMMARY:Flatirons hike")
	assert.Contains(t, doc, "LOCATION:Chautauqua")
}

func TestPublishICS(t *testing.T) {
	repo := newFakeRepo()
	svc := NewEventService(repo, cache.NewMemoryCache(), &recordingQueue{}, nil)
	store := storage.NewMemoryStore()
	ctx := context.Background()

	created, appErr := svc.CreateEvent(ctx, uuid.New(), newRequest())
	require.Nil(t, appErr)

	id := uuid.MustParse(created.ID)
	require.NoError(t, svc.PublishICS(ctx, store, id))

	obj, ok := store.Get(FeedKey(created.ID))
	require.True(t, ok)
	assert.Contains(t, string(obj.Body), "SUMMARY:Flatirons hike")
	assert.Contains(t, obj.ContentType, "text/calendar")

	assert.Error(t, svc.PublishICS(ctx, store, uuid.New()))
}

func TestFullListingIsNotTruncated(t *testing.T) {
	repo := newFakeRepo()
	svc := NewEventService(repo, cache.NewMemoryCache(), &recordingQueue{}, nil)
	ctx := context.Background()
	host := uuid.New()

	total := constants.MaxPageSize + 30
	var first *dto.EventResponse
	for i := 0; i < total; i++ {
		req := newRequest()
		req.Time.Start = req.Time.Start.Add(time.Duration(i) * time.Hour)
		req.Time.End = req.Time.Start.Add(time.Hour)
		created, appErr := svc.CreateEvent(ctx, host, req)
		require.Nil(t, appErr)
		if first == nil {
			first = created
		}
	}

	all, appErr := svc.GetEvents(ctx, defaultParams())
	require.Nil(t, appErr)
	assert.Len(t, all, total)

	page, appErr := svc.GetEvents(ctx, params.QueryParams{PageNumber: 2, PageSize: constants.DefaultPageSize})
	require.Nil(t, appErr)
	assert.Len(t, page, constants.DefaultPageSize)

	req := newRequest()
	req.Name = "Renamed hike"
	updated, appErr := svc.UpdateEvent(ctx, host, uuid.MustParse(first.ID), req)
	require.Nil(t, appErr)
	assert.Len(t, updated, total)

	remaining, appErr := svc.DeleteEvent(ctx, host, uuid.MustParse(first.ID))
	require.Nil(t, appErr)
	assert.Len(t, remaining, total-1)
}

func TestHandleEventCreatedMarksProcessedOnce(t *testing.T) {
	repo := newFakeRepo()
	svc := NewEventService(repo, cache.NewMemoryCache(), &recordingQueue{}, nil)
	ctx := context.Background()

	created, appErr := svc.CreateEvent(ctx, uuid.New(), newRequest())
	require.Nil(t, appErr)
	task := entity.CreatedTask{EventID: created.ID, Name: created.Name}

	exists, err := svc.HandleEventCreated(ctx, task)
	require.NoError(t, err)
	assert.True(t, exists)

	stored, _ := repo.GetByID(ctx, uuid.MustParse(created.ID))
	require.NotNil(t, stored.ProcessedAt)
	stamp := *stored.ProcessedAt

	exists, err = svc.HandleEventCreated(ctx, task)
	require.NoError(t, err)
	assert.True(t, exists)
	stored, _ = repo.GetByID(ctx, uuid.MustParse(created.ID))
	assert.Equal(t, stamp, *stored.ProcessedAt)
}

func TestHandleEventCreatedSkipsDeletedEvent(t *testing.T) {
	svc := NewEventService(newFakeRepo(), cache.NewMemoryCache(), &recordingQueue{}, nil)

	exists, err := svc.HandleEventCreated(context.Background(), entity.CreatedTask{EventID: uuid.NewString()})
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = svc.HandleEventCreated(context.Background(), entity.CreatedTask{EventID: "not-a-uuid"})
	assert.Error(t, err)
}
