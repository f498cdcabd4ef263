package service

import (
	"context"

	"pickup/core/cache"
	"pickup/core/constants"
	"pickup/core/errors"
	"pickup/core/logger"
	"pickup/core/utils"
	"pickup/modules/auth/dto"
	"pickup/modules/auth/entity"
	"pickup/modules/auth/repository"
	profiledto "pickup/modules/profile/dto"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ProfileCreator is the slice of the profile service signup needs.
type ProfileCreator interface {
	CreateProfile(ctx context.Context, userID uuid.UUID, req *profiledto.ProfileRequest) (*profiledto.ProfileResponse, *errors.AppError)
}

type AuthService struct {
	repo     repository.AuthRepositoryInterface
	cache    cache.Cache
	tokens   *utils.TokenIssuer
	profiles ProfileCreator
}

type AuthServiceInterface interface {
	SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.SessionResponse, *errors.AppError)
	SignIn(ctx context.Context, req *dto.SignInRequest) (*dto.SessionResponse, *errors.AppError)
	Verify(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, *errors.AppError)
	SignOut(ctx context.Context, claims *utils.TokenClaims) *errors.AppError
}

func NewAuthService(repo repository.AuthRepositoryInterface, cache cache.Cache, tokens *utils.TokenIssuer, profiles ProfileCreator) *AuthService {
	return &AuthService{repo: repo, cache: cache, tokens: tokens, profiles: profiles}
}

func toUserResponse(user *entity.User) dto.UserResponse {
	return dto.UserResponse{ID: user.ID.String(), Email: user.Email}
}

func (s *AuthService) session(user *entity.User) (*dto.SessionResponse, *errors.AppError) {
	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		logger.Error("AuthService:Session:Generate", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to issue token", err)
	}
	return &dto.SessionResponse{Token: token, User: toUserResponse(user)}, nil
}

// SignUp creates the user and its first profile, then signs it in.
func (s *AuthService) SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.SessionResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	existing, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to look up user", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "email already registered", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to hash password", err)
	}

	user, err := s.repo.CreateUser(ctx, &entity.User{Email: req.Email, PasswordHash: string(hash)})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create user failed", err)
	}

	if _, appErr := s.profiles.CreateProfile(ctx, user.ID, &profiledto.ProfileRequest{Name: req.Name}); appErr != nil {
		logger.Error("AuthService:SignUp:CreateProfile", appErr, "user_id", user.ID)
		// A user without a profile cannot sign up again, so undo the insert.
		if err := s.repo.DeleteUser(context.WithoutCancel(ctx), user.ID); err != nil {
			logger.Error("AuthService:SignUp:Rollback", err, "user_id", user.ID)
		}
		return nil, appErr
	}

	logger.Info("AuthService:SignUp", "user_id", user.ID)
	return s.session(user)
}

func (s *AuthService) SignIn(ctx context.Context, req *dto.SignInRequest) (*dto.SessionResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to look up user", err)
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, errors.NewAppError(errors.ErrInvalidCredentials, "invalid email or password", nil)
	}
	return s.session(user)
}

func (s *AuthService) Verify(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to look up user", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "user no longer exists", nil)
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// SignOut revokes the token until it would have expired anyway.
func (s *AuthService) SignOut(ctx context.Context, claims *utils.TokenClaims) *errors.AppError {
	if err := s.cache.BlacklistToken(ctx, claims.ID, claims.TTLLeft()); err != nil {
		logger.Error("AuthService:SignOut:BlacklistToken", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to revoke token", err)
	}
	return nil
}
