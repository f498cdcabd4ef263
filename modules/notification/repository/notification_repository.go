package repository

import (
	"context"
	"database/sql"

	"pickup/core/database"
	"pickup/core/logger"
	"pickup/core/params"
	"pickup/modules/notification/entity"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type NotificationRepository struct {
	DB database.IDatabase
}

func NewNotificationRepository(db database.IDatabase) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

type NotificationRepositoryInterface interface {
	Create(ctx context.Context, notification *entity.Notification) (bool, error)
	GetByUserID(ctx context.Context, userID uuid.UUID, params params.QueryParams) (*entity.PaginatedNotificationEntity, error)
	MarkAsRead(ctx context.Context, userID uuid.UUID, ids []string) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) error
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
}

// Create inserts the notification unless the user already has one of the
// same type for the same event. It reports whether a row was written.
func (r *NotificationRepository) Create(ctx context.Context, notification *entity.Notification) (bool, error) {
	query := `
		INSERT INTO notifications (user_id, title, message, type, data, is_read)
		VALUES ($1, $2, $3, $4, $5, false)
		ON CONFLICT (user_id, type, (data->>'event_id')) DO NOTHING
		RETURNING id, created_at, updated_at
	`
	row := r.DB.SQLx().QueryRowxContext(ctx, query,
		notification.UserID, notification.Title, notification.Message, notification.Type, notification.Data)
	if err := row.Scan(&notification.ID, &notification.CreatedAt, &notification.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		logger.Error("NotificationRepository:Create", err)
		return false, err
	}
	return true, nil
}

func (r *NotificationRepository) GetByUserID(ctx context.Context, userID uuid.UUID, params params.QueryParams) (*entity.PaginatedNotificationEntity, error) {
	baseQuery := `FROM notifications WHERE user_id = $1`

	var totalItems int
	if err := r.DB.GetContext(ctx, &totalItems, "SELECT COUNT(*) "+baseQuery, userID); err != nil {
		logger.Error("NotificationRepository:GetByUserID:Count", err)
		return nil, err
	}

	query := `
		SELECT id, user_id, title, message, type, data, is_read, created_at, updated_at ` + baseQuery + `
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	notifications := []entity.Notification{}
	if err := r.DB.SelectContext(ctx, &notifications, query, userID, params.PageSize, params.Offset()); err != nil {
		logger.Error("NotificationRepository:GetByUserID:Select", err)
		return nil, err
	}

	return &entity.PaginatedNotificationEntity{
		Items:      notifications,
		TotalItems: totalItems,
		PageNumber: params.PageNumber,
		PageSize:   params.PageSize,
	}, nil
}

func (r *NotificationRepository) MarkAsRead(ctx context.Context, userID uuid.UUID, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sqlx.In(`UPDATE notifications SET is_read = true, updated_at = now() WHERE user_id = ? AND id IN (?)`, userID, ids)
	if err != nil {
		return err
	}
	query = r.DB.SQLx().Rebind(query)
	if err := r.DB.ExecContext(ctx, query, args...); err != nil {
		logger.Error("NotificationRepository:MarkAsRead", err)
		return err
	}
	return nil
}

func (r *NotificationRepository) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	query := `UPDATE notifications SET is_read = true, updated_at = now() WHERE user_id = $1 AND is_read = false`
	if err := r.DB.ExecContext(ctx, query, userID); err != nil {
		logger.Error("NotificationRepository:MarkAllAsRead", err)
		return err
	}
	return nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = false`
	if err := r.DB.GetContext(ctx, &count, query, userID); err != nil {
		logger.Error("NotificationRepository:CountUnread", err)
		return 0, err
	}
	return count, nil
}
