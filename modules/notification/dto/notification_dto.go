package dto

import (
	"time"

	"pickup/core/entity"
)

type NotificationResponse struct {
	ID        string         `json:"_id"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Type      string         `json:"type"`
	Data      map[string]any `json:"data"`
	IsRead    bool           `json:"is_read"`
	CreatedAt time.Time      `json:"created_at"`
}

type PaginatedNotificationResponse = entity.Pagination[NotificationResponse]

type MarkAsReadRequest struct {
	IDs []string `json:"ids"`
}

type UnreadCountResponse struct {
	Count int `json:"count"`
}
