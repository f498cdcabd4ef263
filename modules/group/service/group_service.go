package service

import (
	"context"
	"database/sql"
	stderrors "errors"
	"strings"

	"pickup/core/cache"
	"pickup/core/constants"
	"pickup/core/errors"
	"pickup/core/logger"
	"pickup/core/params"
	"pickup/core/utils"
	"pickup/modules/group/dto"
	"pickup/modules/group/entity"
	"pickup/modules/group/mapper"
	"pickup/modules/group/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type GroupService struct {
	repo  repository.GroupRepositoryInterface
	cache cache.Cache
}

type GroupServiceInterface interface {
	GetGroups(ctx context.Context, params params.QueryParams) ([]dto.GroupResponse, *errors.AppError)
	GetGroupByID(ctx context.Context, id uuid.UUID) (*dto.GroupResponse, *errors.AppError)
	CreateGroup(ctx context.Context, userID uuid.UUID, req *dto.GroupRequest) (*dto.GroupResponse, *errors.AppError)
	UpdateGroup(ctx context.Context, userID uuid.UUID, id uuid.UUID, req *dto.GroupRequest) ([]dto.GroupResponse, *errors.AppError)
	DeleteGroup(ctx context.Context, userID uuid.UUID, id uuid.UUID) ([]dto.GroupResponse, *errors.AppError)
	JoinGroup(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*dto.GroupResponse, *errors.AppError)
}

func NewGroupService(repo repository.GroupRepositoryInterface, cache cache.Cache) *GroupService {
	return &GroupService{repo: repo, cache: cache}
}

// MakeSlug builds a url-safe, collision-resistant slug from a group name.
func MakeSlug(name string) string {
	base := slug.Make(name)
	if base == "" {
		base = "group"
	}
	return base + "-" + strings.ToLower(utils.GenerateID())
}

func (s *GroupService) CreateGroup(ctx context.Context, userID uuid.UUID, req *dto.GroupRequest) (*dto.GroupResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	group := mapper.ToGroupEntity(req)
	group.Slug = MakeSlug(group.Name)
	group.Members = []string{userID.String()}

	created, err := s.repo.CreateGroup(ctx, group)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create group failed", err)
	}
	s.invalidate(ctx)
	logger.Info("GroupService:CreateGroup", "group_id", created.ID, "slug", created.Slug)
	return mapper.ToGroupResponse(created), nil
}

func (s *GroupService) GetGroupByID(ctx context.Context, id uuid.UUID) (*dto.GroupResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	group, appErr := s.getGroup(ctx, id)
	if appErr != nil {
		return nil, appErr
	}
	return mapper.ToGroupResponse(group), nil
}

func (s *GroupService) getGroup(ctx context.Context, id uuid.UUID) (*entity.Group, *errors.AppError) {
	group, err := s.repo.GetGroupByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get group failed", err)
	}
	if group == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "group not found", nil)
	}
	return group, nil
}

// GetGroups serves the unpaged, unfiltered listing from cache.
func (s *GroupService) GetGroups(ctx context.Context, params params.QueryParams) ([]dto.GroupResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	logger.Info("GroupService:GetGroups:Request", "page_number", params.PageNumber, "page_size", params.PageSize, "search", params.Search)

	cacheable := params.Search == "" && !params.Paged()
	if cacheable {
		var cached []dto.GroupResponse
		err := s.cache.GetJSON(ctx, constants.RedisKeyGroupList, &cached)
		if err == nil {
			return cached, nil
		}
		if !stderrors.Is(err, cache.ErrMiss) {
			logger.Warn("GroupService:GetGroups:CacheGet", err)
		}
	}

	groups, err := s.repo.GetGroups(ctx, params)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get groups failed", err)
	}
	responses := mapper.ToGroupResponses(groups)

	if cacheable {
		if err := s.cache.SetJSON(ctx, constants.RedisKeyGroupList, responses, constants.GroupListCacheTTL); err != nil {
			logger.Warn("GroupService:GetGroups:CacheSet", err)
		}
	}
	return responses, nil
}

// UpdateGroup and DeleteGroup answer with the full group listing.
func (s *GroupService) UpdateGroup(ctx context.Context, userID uuid.UUID, id uuid.UUID, req *dto.GroupRequest) ([]dto.GroupResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if appErr := s.requireMember(ctx, userID, id); appErr != nil {
		return nil, appErr
	}

	err := s.repo.UpdateGroup(ctx, mapper.ToGroupEntity(req), id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewAppError(errors.ErrNotFound, "group not found", err)
		}
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "update group failed", err)
	}
	s.invalidate(ctx)
	return s.listAll(ctx)
}

func (s *GroupService) DeleteGroup(ctx context.Context, userID uuid.UUID, id uuid.UUID) ([]dto.GroupResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if appErr := s.requireMember(ctx, userID, id); appErr != nil {
		return nil, appErr
	}

	if err := s.repo.DeleteGroup(ctx, id); err != nil {
		return nil, errors.NewAppError(errors.ErrDeleteFailed, "delete group failed", err)
	}
	s.invalidate(ctx)
	return s.listAll(ctx)
}

func (s *GroupService) JoinGroup(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*dto.GroupResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if _, appErr := s.getGroup(ctx, id); appErr != nil {
		return nil, appErr
	}
	if err := s.repo.AddMember(ctx, id, userID); err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "join group failed", err)
	}
	s.invalidate(ctx)

	group, appErr := s.getGroup(ctx, id)
	if appErr != nil {
		return nil, appErr
	}
	return mapper.ToGroupResponse(group), nil
}

// Members returns the user ids of a group. A missing group has none.
func (s *GroupService) Members(ctx context.Context, id uuid.UUID) ([]string, error) {
	group, err := s.repo.GetGroupByID(ctx, id)
	if err != nil || group == nil {
		return nil, err
	}
	return group.Members, nil
}

func (s *GroupService) requireMember(ctx context.Context, userID uuid.UUID, id uuid.UUID) *errors.AppError {
	group, appErr := s.getGroup(ctx, id)
	if appErr != nil {
		return appErr
	}
	if !group.HasMember(userID.String()) {
		return errors.NewAppError(errors.ErrForbidden, "only members can change this group", nil)
	}
	return nil
}

func (s *GroupService) listAll(ctx context.Context) ([]dto.GroupResponse, *errors.AppError) {
	return s.GetGroups(ctx, params.QueryParams{PageNumber: constants.DefaultPageNumber})
}

func (s *GroupService) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, constants.RedisKeyGroupList); err != nil {
		logger.Warn("GroupService:Invalidate", err)
	}
}
