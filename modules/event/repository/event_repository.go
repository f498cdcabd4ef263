package repository

import (
	"context"
	"database/sql"
	"fmt"

	"pickup/core/database"
	"pickup/core/logger"
	"pickup/core/params"
	"pickup/modules/event/entity"

	"github.com/google/uuid"
)

const eventColumns = `
	id, name, description, type, location_name, lat, lng,
	time_start, time_end, host, attendance, group_ids, processed_at, created_at, updated_at`

type EventRepository struct {
	DB database.IDatabase
}

func NewEventRepository(db database.IDatabase) *EventRepository {
	return &EventRepository{DB: db}
}

type EventRepositoryInterface interface {
	Create(ctx context.Context, event *entity.Event) (*entity.Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	List(ctx context.Context, params params.QueryParams) ([]entity.Event, error)
	Update(ctx context.Context, id uuid.UUID, event *entity.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
	MarkProcessed(ctx context.Context, id uuid.UUID) (bool, error)
}

func (r *EventRepository) Create(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	query := `
		INSERT INTO events (name, description, type, location_name, lat, lng,
		                    time_start, time_end, host, attendance, group_ids)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING` + eventColumns

	var created entity.Event
	err := r.DB.GetContext(ctx, &created, query,
		event.Name, event.Description, event.Type, event.LocationName, event.Lat, event.Lng,
		event.TimeStart, event.TimeEnd, event.Host, event.Attendance, event.GroupIDs)
	if err != nil {
		logger.Error("EventRepository:Create", err)
		return nil, err
	}
	return &created, nil
}

// GetByID returns nil, nil when no row matches.
func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	query := `SELECT` + eventColumns + ` FROM events WHERE id = $1`

	var event entity.Event
	err := r.DB.GetContext(ctx, &event, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:GetByID", err)
		return nil, err
	}
	return &event, nil
}

// List returns every matching row unless params asks for a page.
func (r *EventRepository) List(ctx context.Context, params params.QueryParams) ([]entity.Event, error) {
	var args []any
	where := ""
	argIndex := 1

	if params.Search != "" {
		where = fmt.Sprintf(" WHERE name ILIKE $%d OR type ILIKE $%d", argIndex, argIndex)
		args = append(args, "%"+params.Search+"%")
		argIndex++
	}

	query := `SELECT` + eventColumns + ` FROM events` + where + " ORDER BY time_start ASC, id ASC"
	if params.Paged() {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
		args = append(args, params.PageSize, params.Offset())
	}

	events := []entity.Event{}
	if err := r.DB.SelectContext(ctx, &events, query, args...); err != nil {
		logger.Error("EventRepository:List", err)
		return nil, err
	}
	return events, nil
}

func (r *EventRepository) Update(ctx context.Context, id uuid.UUID, event *entity.Event) error {
	query := `
		UPDATE events
		SET name = $1, description = $2, type = $3, location_name = $4, lat = $5, lng = $6,
		    time_start = $7, time_end = $8, updated_at = now()
		WHERE id = $9
	`
	result, err := r.DB.SQLx().ExecContext(ctx, query,
		event.Name, event.Description, event.Type, event.LocationName, event.Lat, event.Lng,
		event.TimeStart, event.TimeEnd, id)
	if err != nil {
		logger.Error("EventRepository:Update", err)
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		logger.Error("EventRepository:Update - RowsAffected", err)
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.DB.NamedExecContext(ctx, `DELETE FROM events WHERE id = :id`, map[string]any{"id": id})
	if err != nil {
		logger.Error("EventRepository:Delete", err)
		return err
	}
	return nil
}

// MarkProcessed stamps processed_at once. It reports false when the event
// is gone or was already processed.
func (r *EventRepository) MarkProcessed(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.DB.SQLx().ExecContext(ctx,
		`UPDATE events SET processed_at = now() WHERE id = $1 AND processed_at IS NULL`, id)
	if err != nil {
		logger.Error("EventRepository:MarkProcessed", err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		logger.Error("EventRepository:MarkProcessed - RowsAffected", err)
		return false, err
	}
	return rowsAffected > 0, nil
}
