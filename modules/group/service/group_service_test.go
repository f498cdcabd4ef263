package service

import (
	"context"
	"database/sql"
	"regexp"
	"fmt"
	"testing"

	"pickup/core/cache"
	"pickup/core/constants"
	"pickup/core/errors"
	"pickup/core/params"
	"pickup/modules/group/dto"
	"pickup/modules/group/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	groups    []*entity.Group
	listCalls int
}

func newService(repo *fakeRepo) *GroupService {
	return NewGroupService(repo, cache.NewMemoryCache())
}

func (r *fakeRepo) find(id uuid.UUID) int {
	for i, g := range r.groups {
		if g.ID == id {
			return i
		}
	}
	return -1
}

func (r *fakeRepo) CreateGroup(_ context.Context, g *entity.Group) (*entity.Group, error) {
	created := *g
	created.ID = uuid.New()
	r.groups = append(r.groups, &created)
	return &created, nil
}

func (r *fakeRepo) GetGroupByID(_ context.Context, id uuid.UUID) (*entity.Group, error) {
	if i := r.find(id); i >= 0 {
		cp := *r.groups[i]
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeRepo) GetGroups(_ context.Context, p params.QueryParams) ([]entity.Group, error) {
	r.listCalls++
	out := []entity.Group{}
	for _, g := range r.groups {
		out = append(out, *g)
	}
	if p.Paged() {
		start := min(p.Offset(), len(out))
		end := min(start+p.PageSize, len(out))
		out = out[start:end]
	}
	return out, nil
}

func (r *fakeRepo) UpdateGroup(_ context.Context, g *entity.Group, id uuid.UUID) error {
	i := r.find(id)
	if i < 0 {
		return sql.ErrNoRows
	}
	r.groups[i].Name = g.Name
	r.groups[i].Description = g.Description
	return nil
}

func (r *fakeRepo) DeleteGroup(_ context.Context, id uuid.UUID) error {
	if i := r.find(id); i >= 0 {
		r.groups = append(r.groups[:i], r.groups[i+1:]...)
	}
	return nil
}

func (r *fakeRepo) AddMember(_ context.Context, id uuid.UUID, userID uuid.UUID) error {
	if i := r.find(id); i >= 0 && !r.groups[i].HasMember(userID.String()) {
		r.groups[i].Members = append(r.groups[i].Members, userID.String())
	}
	return nil
}

func TestMakeSlug(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`^sunday-soccer-crew-[0-9a-z]{7}$`), MakeSlug("Sunday Soccer Crew!"))
	assert.Regexp(t, regexp.MustCompile(`^group-[0-9a-z]{7}$`), MakeSlug("!!!"))
}

func TestCreateGroupAddsCreatorAsMember(t *testing.T) {
	svc := newService(&fakeRepo{})
	userID := uuid.New()

	created, appErr := svc.CreateGroup(context.Background(), userID, &dto.GroupRequest{Name: "Climbers"})
	require.Nil(t, appErr)
	assert.Equal(t, []string{userID.String()}, created.Members)
	assert.Contains(t, created.Slug, "climbers-")
}

func TestUpdateAndRemoveReturnFullList(t *testing.T) {
	svc := newService(&fakeRepo{})
	ctx := context.Background()
	owner := uuid.New()

	a, _ := svc.CreateGroup(ctx, owner, &dto.GroupRequest{Name: "A"})
	_, _ = svc.CreateGroup(ctx, owner, &dto.GroupRequest{Name: "B"})

	list, appErr := svc.UpdateGroup(ctx, owner, uuid.MustParse(a.ID), &dto.GroupRequest{Name: "A2"})
	require.Nil(t, appErr)
	require.Len(t, list, 2)
	assert.Equal(t, "A2", list[0].Name)

	list, appErr = svc.DeleteGroup(ctx, owner, uuid.MustParse(a.ID))
	require.Nil(t, appErr)
	require.Len(t, list, 1)
	assert.Equal(t, "B", list[0].Name)
}

func TestNonMemberCannotChangeGroup(t *testing.T) {
	svc := newService(&fakeRepo{})
	ctx := context.Background()

	g, _ := svc.CreateGroup(ctx, uuid.New(), &dto.GroupRequest{Name: "A"})
	_, appErr := svc.DeleteGroup(ctx, uuid.New(), uuid.MustParse(g.ID))
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrForbidden, appErr.Code)
}

func TestJoinGroup(t *testing.T) {
	svc := newService(&fakeRepo{})
	ctx := context.Background()
	joiner := uuid.New()

	g, _ := svc.CreateGroup(ctx, uuid.New(), &dto.GroupRequest{Name: "A"})
	joined, appErr := svc.JoinGroup(ctx, joiner, uuid.MustParse(g.ID))
	require.Nil(t, appErr)
	assert.Contains(t, joined.Members, joiner.String())

	_, appErr = svc.JoinGroup(ctx, joiner, uuid.New())
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestMembers(t *testing.T) {
	svc := newService(&fakeRepo{})
	ctx := context.Background()
	owner := uuid.New()

	g, _ := svc.CreateGroup(ctx, owner, &dto.GroupRequest{Name: "A"})
	members, err := svc.Members(ctx, uuid.MustParse(g.ID))
	require.NoError(t, err)
	assert.Equal(t, []string{owner.String()}, members)

	members, err = svc.Members(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestGroupListingIsNotTruncated(t *testing.T) {
	svc := newService(&fakeRepo{})
	ctx := context.Background()
	owner := uuid.New()

	total := constants.MaxPageSize + 30
	var first *dto.GroupResponse
	for i := 0; i < total; i++ {
		g, appErr := svc.CreateGroup(ctx, owner, &dto.GroupRequest{Name: fmt.Sprintf("Group %d", i)})
		require.Nil(t, appErr)
		if first == nil {
			first = g
		}
	}

	all, appErr := svc.GetGroups(ctx, params.QueryParams{PageNumber: constants.DefaultPageNumber})
	require.Nil(t, appErr)
	assert.Len(t, all, total)

	list, appErr := svc.UpdateGroup(ctx, owner, uuid.MustParse(first.ID), &dto.GroupRequest{Name: "Renamed"})
	require.Nil(t, appErr)
	assert.Len(t, list, total)

	list, appErr = svc.DeleteGroup(ctx, owner, uuid.MustParse(first.ID))
	require.Nil(t, appErr)
	assert.Len(t, list, total-1)
}

func TestGetGroupsCachesFullListing(t *testing.T) {
	repo := &fakeRepo{}
	svc := newService(repo)
	ctx := context.Background()
	full := params.QueryParams{PageNumber: constants.DefaultPageNumber}

	_, appErr := svc.GetGroups(ctx, full)
	require.Nil(t, appErr)
	_, appErr = svc.GetGroups(ctx, full)
	require.Nil(t, appErr)
	assert.Equal(t, 1, repo.listCalls)

	_, appErr = svc.GetGroups(ctx, params.QueryParams{PageNumber: 1, PageSize: 5})
	require.Nil(t, appErr)
	assert.Equal(t, 2, repo.listCalls)

	_, appErr = svc.CreateGroup(ctx, uuid.New(), &dto.GroupRequest{Name: "Runners"})
	require.Nil(t, appErr)

	groups, appErr := svc.GetGroups(ctx, full)
	require.Nil(t, appErr)
	assert.Len(t, groups, 1)
	assert.Equal(t, 3, repo.listCalls)
}
