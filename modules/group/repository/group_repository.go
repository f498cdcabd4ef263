package repository

import (
	"context"
	"database/sql"
	"fmt"

	"pickup/core/database"
	"pickup/core/logger"
	"pickup/core/params"
	"pickup/modules/group/entity"

	"github.com/google/uuid"
)

const groupColumns = `id, name, slug, description, members, created_at, updated_at`

type GroupRepository struct {
	DB database.IDatabase
}

func NewGroupRepository(db database.IDatabase) *GroupRepository {
	return &GroupRepository{DB: db}
}

type GroupRepositoryInterface interface {
	CreateGroup(ctx context.Context, group *entity.Group) (*entity.Group, error)
	GetGroupByID(ctx context.Context, id uuid.UUID) (*entity.Group, error)
	GetGroups(ctx context.Context, params params.QueryParams) ([]entity.Group, error)
	UpdateGroup(ctx context.Context, group *entity.Group, id uuid.UUID) error
	DeleteGroup(ctx context.Context, id uuid.UUID) error
	AddMember(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}

func (r *GroupRepository) CreateGroup(ctx context.Context, group *entity.Group) (*entity.Group, error) {
	query := `
		INSERT INTO groups (name, slug, description, members)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + groupColumns

	var created entity.Group
	err := r.DB.GetContext(ctx, &created, query, group.Name, group.Slug, group.Description, group.Members)
	if err != nil {
		logger.Error("GroupRepository:CreateGroup", err)
		return nil, err
	}
	return &created, nil
}

func (r *GroupRepository) UpdateGroup(ctx context.Context, group *entity.Group, id uuid.UUID) error {
	query := `
		UPDATE groups
		SET name = $1, description = $2, updated_at = now()
		WHERE id = $3
	`

	result, err := r.DB.SQLx().ExecContext(ctx, query,
		group.Name,
		group.Description,
		id,
	)
	if err != nil {
		logger.Error("GroupRepository:UpdateGroup", err)
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		logger.Error("GroupRepository:UpdateGroup - RowsAffected", err)
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *GroupRepository) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM groups
		WHERE id = :id
	`
	_, err := r.DB.NamedExecContext(ctx, query, map[string]any{"id": id})
	if err != nil {
		logger.Error("GroupRepository:DeleteGroup", err)
		return err
	}
	return nil
}

func (r *GroupRepository) GetGroupByID(ctx context.Context, id uuid.UUID) (*entity.Group, error) {
	var group entity.Group
	query := `SELECT ` + groupColumns + ` FROM groups WHERE id = $1`

	err := r.DB.GetContext(ctx, &group, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("GroupRepository:GetGroupByID", err)
		return nil, err
	}
	return &group, nil
}

func (r *GroupRepository) GetGroups(ctx context.Context, params params.QueryParams) ([]entity.Group, error) {
	var whereClause string
	var args []any
	argIndex := 1

	if params.Search != "" {
		whereClause = fmt.Sprintf(" WHERE name ILIKE $%d", argIndex)
		args = append(args, "%"+params.Search+"%")
		argIndex++
	}

	dataQuery := `SELECT ` + groupColumns + ` FROM groups` + whereClause + " ORDER BY created_at DESC, id ASC"
	if params.Paged() {
		dataQuery += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
		args = append(args, params.PageSize, params.Offset())
	}

	groups := []entity.Group{}
	err := r.DB.SelectContext(ctx, &groups, dataQuery, args...)
	if err != nil {
		logger.Error("GroupRepository:GetGroups", err)
		return nil, err
	}
	return groups, nil
}

// AddMember appends userID to the members array unless it is already there.
func (r *GroupRepository) AddMember(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	query := `
		UPDATE groups
		SET members = array_append(members, $2::uuid), updated_at = now()
		WHERE id = $1 AND NOT ($2::uuid = ANY(members))
	`
	if err := r.DB.ExecContext(ctx, query, id, userID); err != nil {
		logger.Error("GroupRepository:AddMember", err)
		return err
	}
	return nil
}
