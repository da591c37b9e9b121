package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	AccountID string    `gorm:"type:uuid;index" json:"account_id,omitempty"`
	Audience  string    `gorm:"type:varchar(10);not null;index" json:"audience"`
	Message   string    `gorm:"not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

func (n *NotificationModel) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	return nil
}
