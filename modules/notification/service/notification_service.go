package service

import (
	"context"
	"fmt"

	"pickup/core/constants"
	"pickup/core/errors"
	"pickup/core/logger"
	"pickup/core/params"
	"pickup/core/utils"
	eventEntity "pickup/modules/event/entity"
	"pickup/modules/notification/dto"
	"pickup/modules/notification/entity"
	"pickup/modules/notification/repository"

	"github.com/google/uuid"
)

// GroupMembers resolves the user ids belonging to a group.
type GroupMembers interface {
	Members(ctx context.Context, groupID uuid.UUID) ([]string, error)
}

type NotificationService struct {
	repo   repository.NotificationRepositoryInterface
	groups GroupMembers
}

type NotificationServiceInterface interface {
	GetMyNotifications(ctx context.Context, userID uuid.UUID, queryParams params.QueryParams) (*dto.PaginatedNotificationResponse, *errors.AppError)
	MarkAsRead(ctx context.Context, userID uuid.UUID, ids []string) *errors.AppError
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) *errors.AppError
	CountUnread(ctx context.Context, userID uuid.UUID) (int, *errors.AppError)
}

func NewNotificationService(repo repository.NotificationRepositoryInterface, groups GroupMembers) *NotificationService {
	return &NotificationService{repo: repo, groups: groups}
}

// NotifyEventCreated tells every member of the event's groups about it,
// once per user and never the creator. Every group is resolved before
// anything is written. Inserts are idempotent per user and event, so a
// retried task only fills in the recipients an earlier attempt missed.
func (s *NotificationService) NotifyEventCreated(ctx context.Context, task eventEntity.CreatedTask) error {
	type recipient struct {
		userID  uuid.UUID
		groupID string
	}

	seen := map[string]bool{task.CreatedBy: true}
	var recipients []recipient
	for _, gid := range task.GroupIDs {
		groupID := utils.ToUUID(gid)
		if groupID == uuid.Nil {
			continue
		}
		members, err := s.groups.Members(ctx, groupID)
		if err != nil {
			return fmt.Errorf("group %s members: %w", gid, err)
		}
		for _, member := range members {
			if seen[member] {
				continue
			}
			seen[member] = true
			if userID := utils.ToUUID(member); userID != uuid.Nil {
				recipients = append(recipients, recipient{userID: userID, groupID: gid})
			}
		}
	}

	sent, failed := 0, 0
	for _, r := range recipients {
		notif := &entity.Notification{
			UserID:  r.userID,
			Title:   "New event in your group",
			Message: fmt.Sprintf("%s starts %s", task.Name, task.Start.Format("Mon Jan 2 15:04 MST")),
			Type:    entity.TypeEventCreated,
			Data:    entity.JSONB{"event_id": task.EventID, "group_id": r.groupID},
		}
		created, err := s.repo.Create(ctx, notif)
		if err != nil {
			logger.Error("NotificationService:NotifyEventCreated", err, "user_id", r.userID)
			failed++
			continue
		}
		if created {
			sent++
		}
	}

	logger.Info("NotificationService:NotifyEventCreated", "event_id", task.EventID, "sent", sent, "failed", failed)
	if failed > 0 {
		return fmt.Errorf("notify event %s: %d of %d inserts failed", task.EventID, failed, len(recipients))
	}
	return nil
}

func toResponse(n entity.Notification) dto.NotificationResponse {
	data := map[string]any(n.Data)
	if data == nil {
		data = map[string]any{}
	}
	return dto.NotificationResponse{
		ID:        n.ID.String(),
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		Data:      data,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

func (s *NotificationService) GetMyNotifications(ctx context.Context, userID uuid.UUID, queryParams params.QueryParams) (*dto.PaginatedNotificationResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	page, err := s.repo.GetByUserID(ctx, userID, queryParams)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get notifications failed", err)
	}

	items := make([]dto.NotificationResponse, 0, len(page.Items))
	for _, n := range page.Items {
		items = append(items, toResponse(n))
	}
	return &dto.PaginatedNotificationResponse{
		Items:      items,
		TotalItems: page.TotalItems,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}, nil
}

func (s *NotificationService) MarkAsRead(ctx context.Context, userID uuid.UUID, ids []string) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	for _, id := range ids {
		if utils.ToUUID(id) == uuid.Nil {
			return errors.NewAppError(errors.ErrInvalidInput, "invalid notification id "+id, nil)
		}
	}
	if err := s.repo.MarkAsRead(ctx, userID, ids); err != nil {
		return errors.NewAppError(errors.ErrUpdateFailed, "mark as read failed", err)
	}
	return nil
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if err := s.repo.MarkAllAsRead(ctx, userID); err != nil {
		return errors.NewAppError(errors.ErrUpdateFailed, "mark all as read failed", err)
	}
	return nil
}

func (s *NotificationService) CountUnread(ctx context.Context, userID uuid.UUID) (int, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	count, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, errors.NewAppError(errors.ErrGetFailed, "count unread failed", err)
	}
	return count, nil
}
