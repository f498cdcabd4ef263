package entity

import (
	"pickup/core/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Profile struct {
	UserID     uuid.UUID      `db:"user_id"`
	Name       string         `db:"name"`
	Bio        string         `db:"bio"`
	Activities pq.StringArray `db:"activities"`
	entity.BaseEntity
}
