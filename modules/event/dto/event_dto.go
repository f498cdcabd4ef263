package dto

import "time"

type Coords struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

type Location struct {
	Name   string `json:"name"`
	Coords Coords `json:"coords"`
}

type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// EventRequest is the body of POST /events and PUT /events/:id.
type EventRequest struct {
	ID          string     `json:"_id,omitempty"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Type        string     `json:"type"`
	Location    Location   `json:"location"`
	Time        TimeWindow `json:"time"`
	Host        []string   `json:"host,omitempty"`
	Attendance  []string   `json:"attendance,omitempty"`
	Group       []string   `json:"group,omitempty"`
}

type EventResponse struct {
	ID          string     `json:"_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Type        string     `json:"type"`
	Location    Location   `json:"location"`
	Time        TimeWindow `json:"time"`
	Host        []string   `json:"host"`
	Attendance  []string   `json:"attendance"`
	Group       []string   `json:"group,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
