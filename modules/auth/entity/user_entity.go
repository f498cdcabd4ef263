package entity

import "pickup/core/entity"

type User struct {
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	entity.BaseEntity
}
