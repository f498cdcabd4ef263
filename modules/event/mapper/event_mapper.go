package mapper

import (
	"strings"

	"pickup/modules/event/dto"
	"pickup/modules/event/entity"
)

func ToEventEntity(req *dto.EventRequest) *entity.Event {
	return &entity.Event{
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		Type:         req.Type,
		LocationName: req.Location.Name,
		Lat:          req.Location.Coords.Lat,
		Lng:          req.Location.Coords.Lng,
		TimeStart:    req.Time.Start.UTC(),
		TimeEnd:      req.Time.End.UTC(),
		Host:         req.Host,
		Attendance:   req.Attendance,
		GroupIDs:     req.Group,
	}
}

func ToEventResponse(e *entity.Event) *dto.EventResponse {
	return &dto.EventResponse{
		ID:          e.ID.String(),
		Name:        e.Name,
		Description: e.Description,
		Type:        e.Type,
		Location: dto.Location{
			Name:   e.LocationName,
			Coords: dto.Coords{Lat: e.Lat, Lng: e.Lng},
		},
		Time:       dto.TimeWindow{Start: e.TimeStart, End: e.TimeEnd},
		Host:       nonNil(e.Host),
		Attendance: nonNil(e.Attendance),
		Group:      e.GroupIDs,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func ToEventResponses(events []entity.Event) []dto.EventResponse {
	out := make([]dto.EventResponse, len(events))
	for i := range events {
		out[i] = *ToEventResponse(&events[i])
	}
	return out
}

func nonNil(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}
