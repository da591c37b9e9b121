package entity

import "time"

type NotificationAudience string

const (
	AudienceUser  NotificationAudience = "user"
	AudienceAdmin NotificationAudience = "admin"
)

type Notification struct {
	ID        string               `json:"id"`
	AccountID string               `json:"account_id,omitempty"`
	Audience  NotificationAudience `json:"audience"`
	Message   string               `json:"message"`
	CreatedAt time.Time            `json:"created_at"`
}
