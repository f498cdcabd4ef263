package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"pickup/core/entity"

	"github.com/google/uuid"
)

const TypeEventCreated = "event_created"

type Notification struct {
	UserID  uuid.UUID `db:"user_id"`
	Title   string    `db:"title"`
	Message string    `db:"message"`
	Type    string    `db:"type"`
	Data    JSONB     `db:"data"`
	IsRead  bool      `db:"is_read"`
	entity.BaseEntity
}

type JSONB map[string]any

func (a JSONB) Value() (driver.Value, error) {
	if a == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(a)
}

func (a *JSONB) Scan(value any) error {
	if value == nil {
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, a)
}

type PaginatedNotificationEntity = entity.Pagination[Notification]
