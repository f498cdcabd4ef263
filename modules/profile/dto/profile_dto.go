package dto

import "time"

type ProfileRequest struct {
	Name       string   `json:"name"`
	Bio        string   `json:"bio"`
	Activities []string `json:"activities"`
}

type ProfileResponse struct {
	ID         string    `json:"_id"`
	User       string    `json:"user"`
	Name       string    `json:"name"`
	Bio        string    `json:"bio"`
	Activities []string  `json:"activities"`
	CreatedAt  time.Time `json:"created_at"`
}
