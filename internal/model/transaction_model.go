package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	AccountID string    `gorm:"type:uuid;not null;index" json:"account_id"`
	Type      string    `gorm:"type:varchar(20);not null" json:"type"`
	Amount    int       `gorm:"not null" json:"amount"`
	Reference string    `json:"reference,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (TransactionModel) TableName() string {
	return "transactions"
}

func (t *TransactionModel) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}
