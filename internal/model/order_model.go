package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderModel struct {
	ID        string     `gorm:"type:uuid;primary_key" json:"id"`
	AccountID string     `gorm:"type:uuid;not null;index" json:"account_id"`
	Amount    int        `gorm:"not null" json:"amount"`
	Status    string     `gorm:"type:varchar(20);not null;index" json:"status"`
	PostURL   string     `json:"post_url,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	DecidedAt *time.Time `json:"decided_at,omitempty"`
}

func (OrderModel) TableName() string {
	return "orders"
}

func (o *OrderModel) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return nil
}
