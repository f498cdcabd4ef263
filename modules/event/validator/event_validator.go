package validator

import (
	"pickup/core/activity"
	"pickup/core/validator"
	"pickup/modules/event/dto"
)

func ValidateEventRequest(req *dto.EventRequest) *validator.Result {
	result := validator.New()
	result.Required("name", req.Name)
	result.MaxLength("name", req.Name, 200)
	result.Required("description", req.Description)

	if !activity.IsValid(req.Type) {
		result.Add("type", "type must be one of the activity categories")
	}
	if req.Time.Start.IsZero() || req.Time.End.IsZero() {
		result.Add("time", "start and end are required")
	} else if req.Time.End.Before(req.Time.Start) {
		result.Add("time", "end must not be before start")
	}
	coords := req.Location.Coords
	if (coords.Lat == nil) != (coords.Lng == nil) {
		result.Add("location.coords", "lat and lng must be set together")
	}
	if coords.Lat != nil && (*coords.Lat < -90 || *coords.Lat > 90) {
		result.Add("location.coords.lat", "lat out of range")
	}
	if coords.Lng != nil && (*coords.Lng < -180 || *coords.Lng > 180) {
		result.Add("location.coords.lng", "lng out of range")
	}
	return result
}
