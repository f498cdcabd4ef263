package service

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"pickup/core/errors"
	"pickup/core/params"
	eventEntity "pickup/modules/event/entity"
	"pickup/modules/notification/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	created  []entity.Notification
	failFor  uuid.UUID
	marked   []string
	markAll  int
	unread   int
	countErr error
}

func (r *fakeRepo) Create(_ context.Context, n *entity.Notification) (bool, error) {
	if n.UserID == r.failFor {
		return false, stderrors.New("insert failed")
	}
	for _, existing := range r.created {
		if existing.UserID == n.UserID && existing.Type == n.Type && existing.Data["event_id"] == n.Data["event_id"] {
			return false, nil
		}
	}
	n.ID = uuid.New()
	r.created = append(r.created, *n)
	return true, nil
}

func (r *fakeRepo) GetByUserID(_ context.Context, userID uuid.UUID, p params.QueryParams) (*entity.PaginatedNotificationEntity, error) {
	items := []entity.Notification{}
	for _, n := range r.created {
		if n.UserID == userID {
			items = append(items, n)
		}
	}
	return &entity.PaginatedNotificationEntity{Items: items, TotalItems: len(items), PageNumber: p.PageNumber, PageSize: p.PageSize}, nil
}

func (r *fakeRepo) MarkAsRead(_ context.Context, _ uuid.UUID, ids []string) error {
	r.marked = append(r.marked, ids...)
	return nil
}

func (r *fakeRepo) MarkAllAsRead(context.Context, uuid.UUID) error {
	r.markAll++
	return nil
}

func (r *fakeRepo) CountUnread(context.Context, uuid.UUID) (int, error) {
	return r.unread, r.countErr
}

type fakeGroups map[uuid.UUID][]string

func (g fakeGroups) Members(_ context.Context, id uuid.UUID) ([]string, error) {
	return g[id], nil
}

// flakyGroups fails lookups for one group until healed.
type flakyGroups struct {
	fakeGroups
	broken uuid.UUID
}

func (g *flakyGroups) Members(ctx context.Context, id uuid.UUID) ([]string, error) {
	if id == g.broken {
		return nil, stderrors.New("lookup failed")
	}
	return g.fakeGroups.Members(ctx, id)
}

func TestNotifyEventCreated(t *testing.T) {
	creator, alice, bob := uuid.New(), uuid.New(), uuid.New()
	g1, g2 := uuid.New(), uuid.New()
	repo := &fakeRepo{}
	svc := NewNotificationService(repo, fakeGroups{
		g1: {creator.String(), alice.String()},
		g2: {alice.String(), bob.String()},
	})

	task := eventEntity.CreatedTask{
		EventID:   uuid.NewString(),
		Name:      "Pickup soccer",
		Start:     time.Date(2026, 7, 4, 18, 0, 0, 0, time.UTC),
		CreatedBy: creator.String(),
		GroupIDs:  []string{g1.String(), g2.String(), "not-a-uuid"},
	}
	require.NoError(t, svc.NotifyEventCreated(context.Background(), task))

	require.Len(t, repo.created, 2)
	recipients := []uuid.UUID{repo.created[0].UserID, repo.created[1].UserID}
	assert.ElementsMatch(t, []uuid.UUID{alice, bob}, recipients)
	assert.Equal(t, entity.TypeEventCreated, repo.created[0].Type)
	assert.Equal(t, task.EventID, repo.created[0].Data["event_id"])
	assert.Contains(t, repo.created[0].Message, "Pickup soccer")
}

func TestNotifyEventCreatedRetriesFailedRecipient(t *testing.T) {
	alice, bob := uuid.New(), uuid.New()
	g := uuid.New()
	repo := &fakeRepo{failFor: alice}
	svc := NewNotificationService(repo, fakeGroups{g: {alice.String(), bob.String()}})
	task := eventEntity.CreatedTask{EventID: uuid.NewString(), GroupIDs: []string{g.String()}}

	err := svc.NotifyEventCreated(context.Background(), task)
	require.Error(t, err)
	require.Len(t, repo.created, 1)
	assert.Equal(t, bob, repo.created[0].UserID)

	repo.failFor = uuid.Nil
	require.NoError(t, svc.NotifyEventCreated(context.Background(), task))
	require.Len(t, repo.created, 2)
	assert.Equal(t, alice, repo.created[1].UserID)
}

func TestNotifyEventCreatedWritesNothingWhenLookupFails(t *testing.T) {
	alice, bob := uuid.New(), uuid.New()
	g1, g2 := uuid.New(), uuid.New()
	repo := &fakeRepo{}
	groups := &flakyGroups{
		fakeGroups: fakeGroups{g1: {alice.String()}, g2: {bob.String()}},
		broken:     g2,
	}
	svc := NewNotificationService(repo, groups)
	task := eventEntity.CreatedTask{EventID: uuid.NewString(), GroupIDs: []string{g1.String(), g2.String()}}

	require.Error(t, svc.NotifyEventCreated(context.Background(), task))
	assert.Empty(t, repo.created)

	groups.broken = uuid.Nil
	require.NoError(t, svc.NotifyEventCreated(context.Background(), task))
	require.NoError(t, svc.NotifyEventCreated(context.Background(), task))
	require.Len(t, repo.created, 2)
	assert.ElementsMatch(t, []uuid.UUID{alice, bob}, []uuid.UUID{repo.created[0].UserID, repo.created[1].UserID})
}

func TestGetMyNotificationsMapsPage(t *testing.T) {
	user := uuid.New()
	repo := &fakeRepo{created: []entity.Notification{{UserID: user, Title: "hi"}}}
	svc := NewNotificationService(repo, fakeGroups{})

	page, appErr := svc.GetMyNotifications(context.Background(), user, params.QueryParams{PageNumber: 1, PageSize: 20})
	require.Nil(t, appErr)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "hi", page.Items[0].Title)
	assert.NotNil(t, page.Items[0].Data)
	assert.Equal(t, 1, page.TotalItems)
}

func TestMarkAsReadRejectsBadID(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewNotificationService(repo, fakeGroups{})

	appErr := svc.MarkAsRead(context.Background(), uuid.New(), []string{"nope"})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
	assert.Empty(t, repo.marked)

	id := uuid.NewString()
	require.Nil(t, svc.MarkAsRead(context.Background(), uuid.New(), []string{id}))
	assert.Equal(t, []string{id}, repo.marked)
}

func TestCountUnread(t *testing.T) {
	repo := &fakeRepo{unread: 3}
	svc := NewNotificationService(repo, fakeGroups{})

	n, appErr := svc.CountUnread(context.Background(), uuid.New())
	require.Nil(t, appErr)
	assert.Equal(t, 3, n)

	repo.countErr = stderrors.New("db down")
	_, appErr = svc.CountUnread(context.Background(), uuid.New())
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrGetFailed, appErr.Code)

	require.Nil(t, svc.MarkAllAsRead(context.Background(), uuid.New()))
	assert.Equal(t, 1, repo.markAll)
}
