package response

import (
	"time"

	"luthier_works/internal/domain/entities"
)

type NotificationResponse struct {
	ID        string                    `json:"id"`
	Type      string                    `json:"type"`
	Title     string                    `json:"title"`
	Message   string                    `json:"message"`
	Read      bool                      `json:"read"`
	Meta      entities.NotificationMeta `json:"meta,omitempty"`
	CreatedAt time.Time                 `json:"created_at"`
}

func FromNotification(n entities.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Read:      n.Read,
		Meta:      n.Meta,
		CreatedAt: n.CreatedAt,
	}
}

func FromNotifications(ns []entities.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(ns))
	for _, n := range ns {
		out = append(out, FromNotification(n))
	}
	return out
}

type MarkAllReadResponse struct {
	Updated int `json:"updated"`
}
