package service

import (
	"context"
	"database/sql"

	"pickup/core/constants"
	"pickup/core/errors"
	"pickup/modules/profile/dto"
	"pickup/modules/profile/mapper"
	"pickup/modules/profile/repository"

	"github.com/google/uuid"
)

type ProfileService struct {
	repo repository.ProfileRepositoryInterface
}

type ProfileServiceInterface interface {
	QueryByUser(ctx context.Context, userID uuid.UUID) ([]dto.ProfileResponse, *errors.AppError)
	GetProfileByID(ctx context.Context, id uuid.UUID) (*dto.ProfileResponse, *errors.AppError)
	CreateProfile(ctx context.Context, userID uuid.UUID, req *dto.ProfileRequest) (*dto.ProfileResponse, *errors.AppError)
	UpdateProfile(ctx context.Context, userID uuid.UUID, id uuid.UUID, req *dto.ProfileRequest) (*dto.ProfileResponse, *errors.AppError)
}

func NewProfileService(repo repository.ProfileRepositoryInterface) *ProfileService {
	return &ProfileService{repo: repo}
}

// QueryByUser returns every profile linked to the user; clients take the first.
func (s *ProfileService) QueryByUser(ctx context.Context, userID uuid.UUID) ([]dto.ProfileResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	profiles, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "query profiles failed", err)
	}
	return mapper.ToProfileResponses(profiles), nil
}

// ProfileIDs satisfies the event module's host lookup.
func (s *ProfileService) ProfileIDs(ctx context.Context, userID uuid.UUID) ([]string, error) {
	profiles, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.ID.String())
	}
	return ids, nil
}

func (s *ProfileService) GetProfileByID(ctx context.Context, id uuid.UUID) (*dto.ProfileResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	profile, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get profile failed", err)
	}
	if profile == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "profile not found", nil)
	}
	return mapper.ToProfileResponse(profile), nil
}

func (s *ProfileService) CreateProfile(ctx context.Context, userID uuid.UUID, req *dto.ProfileRequest) (*dto.ProfileResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	profile := mapper.ToProfileEntity(req)
	profile.UserID = userID

	created, err := s.repo.Create(ctx, profile)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create profile failed", err)
	}
	return mapper.ToProfileResponse(created), nil
}

func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, id uuid.UUID, req *dto.ProfileRequest) (*dto.ProfileResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get profile failed", err)
	}
	if existing == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "profile not found", nil)
	}
	if existing.UserID != userID {
		return nil, errors.NewAppError(errors.ErrForbidden, "cannot edit another user's profile", nil)
	}

	if err := s.repo.Update(ctx, id, mapper.ToProfileEntity(req)); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewAppError(errors.ErrNotFound, "profile not found", err)
		}
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "update profile failed", err)
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil || updated == nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get profile failed", err)
	}
	return mapper.ToProfileResponse(updated), nil
}
