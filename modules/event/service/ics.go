package service

import (
	"context"
	"fmt"
	"time"

	"pickup/core/constants"
	"pickup/core/errors"
	"pickup/core/logger"
	"pickup/core/storage"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

// ExportICS renders a single event as an iCalendar document.
func (s *EventService) ExportICS(ctx context.Context, id uuid.UUID) (string, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	event, appErr := s.getEvent(ctx, id)
	if appErr != nil {
		return "", appErr
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//pickup//events//EN")

	vevent := cal.AddEvent(event.ID.String() + "@pickup")
	vevent.SetDtStampTime(time.Now().UTC())
	vevent.SetStartAt(event.TimeStart)
	vevent.SetEndAt(event.TimeEnd)
	vevent.SetSummary(event.Name)
	vevent.SetDescription(fmt.Sprintf("%s\n\nActivity: %s", event.Description, event.Type))
	vevent.SetLocation(event.LocationName)
	if event.Lat != nil && event.Lng != nil {
		vevent.SetGeo(*event.Lat, *event.Lng)
	}
	return cal.Serialize(), nil
}

// FeedKey is the object key an event's calendar file is published under.
func FeedKey(id string) string {
	return "events/" + id + ".ics"
}

// PublishICS renders the event and writes it to the object store so
// calendar apps can subscribe to a stable URL.
func (s *EventService) PublishICS(ctx context.Context, store storage.ObjectStore, id uuid.UUID) error {
	doc, appErr := s.ExportICS(ctx, id)
	if appErr != nil {
		return appErr
	}
	if err := store.Put(ctx, FeedKey(id.String()), []byte(doc), "text/calendar; charset=utf-8"); err != nil {
		return err
	}
	logger.Info("EventService:PublishICS", "event_id", id)
	return nil
}
