package entity

import (
	"time"

	"pickup/core/entity"

	"github.com/lib/pq"
)

// Event is a row of the events table. Host, attendance and group are
// uuid[] columns scanned as strings.
type Event struct {
	Name         string         `db:"name"`
	Description  string         `db:"description"`
	Type         string         `db:"type"`
	LocationName string         `db:"location_name"`
	Lat          *float64       `db:"lat"`
	Lng          *float64       `db:"lng"`
	TimeStart    time.Time      `db:"time_start"`
	TimeEnd      time.Time      `db:"time_end"`
	Host         pq.StringArray `db:"host"`
	Attendance   pq.StringArray `db:"attendance"`
	GroupIDs     pq.StringArray `db:"group_ids"`
	ProcessedAt  *time.Time     `db:"processed_at"`
	entity.BaseEntity
}

func (e *Event) IsHost(userID string) bool {
	for _, h := range e.Host {
		if h == userID {
			return true
		}
	}
	return false
}

// CreatedTask is the background task payload enqueued after creation.
type CreatedTask struct {
	EventID   string    `json:"event_id"`
	Name      string    `json:"name"`
	Start     time.Time `json:"start"`
	CreatedBy string    `json:"created_by"`
	Host      []string  `json:"host"`
	GroupIDs  []string  `json:"group_ids"`
}
