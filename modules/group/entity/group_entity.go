package entity

import (
	"slices"

	"pickup/core/entity"

	"github.com/lib/pq"
)

type Group struct {
	Name string `db:"name"`

	Slug string `db:"slug"`

	Description string `db:"description"`

	Members pq.StringArray `db:"members"`

	entity.BaseEntity
}

func (g *Group) HasMember(userID string) bool {
	return slices.Contains(g.Members, userID)
}
