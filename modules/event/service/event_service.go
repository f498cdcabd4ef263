package service

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	"pickup/core/cache"
	"pickup/core/constants"
	"pickup/core/errors"
	"pickup/core/logger"
	"pickup/core/params"
	"pickup/core/queue"
	"pickup/modules/event/dto"
	"pickup/modules/event/entity"
	"pickup/modules/event/mapper"
	"pickup/modules/event/repository"

	"github.com/google/uuid"
)

type EventService struct {
	repo       repository.EventRepositoryInterface
	cache      cache.Cache
	queue      queue.Enqueuer
	identities IdentityResolver
}

// IdentityResolver lists the profile ids owned by a user. Clients name
// hosts by profile id, so host checks accept either form.
type IdentityResolver interface {
	ProfileIDs(ctx context.Context, userID uuid.UUID) ([]string, error)
}

type EventServiceInterface interface {
	GetEvents(ctx context.Context, params params.QueryParams) ([]dto.EventResponse, *errors.AppError)
	GetEventByID(ctx context.Context, id uuid.UUID) (*dto.EventResponse, *errors.AppError)
	CreateEvent(ctx context.Context, userID uuid.UUID, req *dto.EventRequest) (*dto.EventResponse, *errors.AppError)
	UpdateEvent(ctx context.Context, userID uuid.UUID, id uuid.UUID, req *dto.EventRequest) ([]dto.EventResponse, *errors.AppError)
	DeleteEvent(ctx context.Context, userID uuid.UUID, id uuid.UUID) ([]dto.EventResponse, *errors.AppError)
	ExportICS(ctx context.Context, id uuid.UUID) (string, *errors.AppError)
}

func NewEventService(repo repository.EventRepositoryInterface, cache cache.Cache, queue queue.Enqueuer, identities IdentityResolver) *EventService {
	return &EventService{repo: repo, cache: cache, queue: queue, identities: identities}
}

func (s *EventService) isHost(ctx context.Context, event *entity.Event, userID uuid.UUID) (bool, *errors.AppError) {
	if event.IsHost(userID.String()) {
		return true, nil
	}
	if s.identities == nil {
		return false, nil
	}
	ids, err := s.identities.ProfileIDs(ctx, userID)
	if err != nil {
		return false, errors.NewAppError(errors.ErrGetFailed, "resolve profiles failed", err)
	}
	for _, id := range ids {
		if event.IsHost(id) {
			return true, nil
		}
	}
	return false, nil
}

// isFullListing matches the unpaged, unfiltered listing that the cache holds.
func isFullListing(p params.QueryParams) bool {
	return p.Search == "" && !p.Paged()
}

func (s *EventService) GetEvents(ctx context.Context, params params.QueryParams) ([]dto.EventResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	cacheable := isFullListing(params)
	if cacheable {
		var cached []dto.EventResponse
		err := s.cache.GetJSON(ctx, constants.RedisKeyEventList, &cached)
		if err == nil {
			return cached, nil
		}
		if !stderrors.Is(err, cache.ErrMiss) {
			logger.Warn("EventService:GetEvents:CacheGet", err)
		}
	}

	events, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get events failed", err)
	}
	responses := mapper.ToEventResponses(events)

	if cacheable {
		if err := s.cache.SetJSON(ctx, constants.RedisKeyEventList, responses, constants.EventListCacheTTL); err != nil {
			logger.Warn("EventService:GetEvents:CacheSet", err)
		}
	}
	return responses, nil
}

func (s *EventService) GetEventByID(ctx context.Context, id uuid.UUID) (*dto.EventResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	event, appErr := s.getEvent(ctx, id)
	if appErr != nil {
		return nil, appErr
	}
	return mapper.ToEventResponse(event), nil
}

func (s *EventService) getEvent(ctx context.Context, id uuid.UUID) (*entity.Event, *errors.AppError) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get event failed", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "event not found", nil)
	}
	return event, nil
}

// CreateEvent stores the event and returns it; the caller becomes a host
// and attendee when the request names none.
func (s *EventService) CreateEvent(ctx context.Context, userID uuid.UUID, req *dto.EventRequest) (*dto.EventResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	event := mapper.ToEventEntity(req)
	if len(event.Host) == 0 {
		event.Host = []string{userID.String()}
	}
	if len(event.Attendance) == 0 {
		event.Attendance = []string{userID.String()}
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create event failed", err)
	}
	s.invalidate(ctx)

	task := entity.CreatedTask{
		EventID:   created.ID.String(),
		Name:      created.Name,
		Start:     created.TimeStart,
		CreatedBy: userID.String(),
		Host:      created.Host,
		GroupIDs:  created.GroupIDs,
	}
	if err := s.queue.Enqueue(ctx, constants.TaskEventCreated, task); err != nil {
		logger.Error("EventService:CreateEvent:Enqueue", err, "event_id", created.ID)
	}

	logger.Info("EventService:CreateEvent", "event_id", created.ID, "type", created.Type)
	return mapper.ToEventResponse(created), nil
}

// UpdateEvent returns the full refreshed listing so clients can replace
// their list wholesale.
func (s *EventService) UpdateEvent(ctx context.Context, userID uuid.UUID, id uuid.UUID, req *dto.EventRequest) ([]dto.EventResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	existing, appErr := s.getEvent(ctx, id)
	if appErr != nil {
		return nil, appErr
	}
	host, appErr := s.isHost(ctx, existing, userID)
	if appErr != nil {
		return nil, appErr
	}
	if !host {
		return nil, errors.NewAppError(errors.ErrForbidden, "only a host can edit this event", nil)
	}

	if err := s.repo.Update(ctx, id, mapper.ToEventEntity(req)); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewAppError(errors.ErrNotFound, "event not found", err)
		}
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "update event failed", err)
	}
	s.invalidate(ctx)

	return s.listAll(ctx)
}

func (s *EventService) DeleteEvent(ctx context.Context, userID uuid.UUID, id uuid.UUID) ([]dto.EventResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	existing, appErr := s.getEvent(ctx, id)
	if appErr != nil {
		return nil, appErr
	}
	host, appErr := s.isHost(ctx, existing, userID)
	if appErr != nil {
		return nil, appErr
	}
	if !host {
		return nil, errors.NewAppError(errors.ErrForbidden, "only a host can delete this event", nil)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, errors.NewAppError(errors.ErrDeleteFailed, "delete event failed", err)
	}
	s.invalidate(ctx)

	return s.listAll(ctx)
}

// listAll is the same unpaged listing GET /events serves.
func (s *EventService) listAll(ctx context.Context) ([]dto.EventResponse, *errors.AppError) {
	return s.GetEvents(ctx, params.QueryParams{PageNumber: constants.DefaultPageNumber})
}

func (s *EventService) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, constants.RedisKeyEventList); err != nil {
		logger.Warn("EventService:Invalidate", err)
	}
}

// HandleEventCreated is the worker side of the event:created task. It
// stamps the event as processed and reports whether the event still
// exists; a retried task finds it already stamped and carries on.
func (s *EventService) HandleEventCreated(ctx context.Context, task entity.CreatedTask) (bool, error) {
	id, err := uuid.Parse(task.EventID)
	if err != nil {
		return false, fmt.Errorf("event:created: bad event id %q: %w", task.EventID, err)
	}

	marked, err := s.repo.MarkProcessed(ctx, id)
	if err != nil {
		return false, err
	}
	if !marked {
		event, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return false, err
		}
		if event == nil {
			logger.Warn("EventService:HandleEventCreated:Gone", "event_id", task.EventID)
			return false, nil
		}
	}

	logger.Info("EventService:HandleEventCreated",
		"event_id", task.EventID,
		"name", task.Name,
		"start", task.Start,
		"hosts", len(task.Host),
		"groups", len(task.GroupIDs),
		"retry", !marked,
	)
	return true, nil
}
