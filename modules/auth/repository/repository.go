package repository

import (
	"context"
	"database/sql"
	"strings"

	"pickup/core/database"
	"pickup/core/logger"
	"pickup/modules/auth/entity"

	"github.com/google/uuid"
)

// AuthRepository handles user credential storage.
type AuthRepository struct {
	DB database.IDatabase
}

func NewAuthRepository(db database.IDatabase) *AuthRepository {
	return &AuthRepository{DB: db}
}

type AuthRepositoryInterface interface {
	CreateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

func (r *AuthRepository) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		RETURNING id, email, password_hash, created_at, updated_at
	`
	var created entity.User
	if err := r.DB.GetContext(ctx, &created, query, strings.ToLower(user.Email), user.PasswordHash); err != nil {
		logger.Error("AuthRepository:CreateUser", err)
		return nil, err
	}
	return &created, nil
}

func (r *AuthRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getOne(ctx, `SELECT id, email, password_hash, created_at, updated_at FROM users WHERE email = $1`, strings.ToLower(email))
}

func (r *AuthRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.getOne(ctx, `SELECT id, email, password_hash, created_at, updated_at FROM users WHERE id = $1`, id)
}

func (r *AuthRepository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if _, err := r.DB.SQLx().ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
		logger.Error("AuthRepository:DeleteUser", err)
		return err
	}
	return nil
}

func (r *AuthRepository) getOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var user entity.User
	if err := r.DB.GetContext(ctx, &user, query, arg); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AuthRepository:GetUser", err)
		return nil, err
	}
	return &user, nil
}
