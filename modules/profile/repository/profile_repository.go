package repository

import (
	"context"
	"database/sql"

	"pickup/core/database"
	"pickup/core/logger"
	"pickup/modules/profile/entity"

	"github.com/google/uuid"
)

const profileColumns = `id, user_id, name, bio, activities, created_at, updated_at`

type ProfileRepository struct {
	DB database.IDatabase
}

func NewProfileRepository(db database.IDatabase) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

type ProfileRepositoryInterface interface {
	Create(ctx context.Context, profile *entity.Profile) (*entity.Profile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Profile, error)
	Update(ctx context.Context, id uuid.UUID, profile *entity.Profile) error
}

func (r *ProfileRepository) Create(ctx context.Context, profile *entity.Profile) (*entity.Profile, error) {
	query := `
		INSERT INTO profiles (user_id, name, bio, activities)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + profileColumns

	var created entity.Profile
	err := r.DB.GetContext(ctx, &created, query, profile.UserID, profile.Name, profile.Bio, profile.Activities)
	if err != nil {
		logger.Error("ProfileRepository:Create", err)
		return nil, err
	}
	return &created, nil
}

func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var profile entity.Profile
	err := r.DB.GetContext(ctx, &profile, `SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ProfileRepository:GetByID", err)
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Profile, error) {
	profiles := []entity.Profile{}
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1 ORDER BY created_at ASC`
	if err := r.DB.SelectContext(ctx, &profiles, query, userID); err != nil {
		logger.Error("ProfileRepository:GetByUserID", err)
		return nil, err
	}
	return profiles, nil
}

func (r *ProfileRepository) Update(ctx context.Context, id uuid.UUID, profile *entity.Profile) error {
	query := `
		UPDATE profiles
		SET name = $1, bio = $2, activities = $3, updated_at = now()
		WHERE id = $4
	`
	result, err := r.DB.SQLx().ExecContext(ctx, query, profile.Name, profile.Bio, profile.Activities, id)
	if err != nil {
		logger.Error("ProfileRepository:Update", err)
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
