package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccountModel struct {
	ID         string    `gorm:"type:uuid;primary_key" json:"id"`
	TelegramID int64     `gorm:"uniqueIndex;not null" json:"telegram_id"`
	Username   string    `gorm:"not null" json:"username"`
	Password   string    `gorm:"not null" json:"-"`
	Balance    int       `gorm:"default:0" json:"balance"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (AccountModel) TableName() string {
	return "accounts"
}

func (a *AccountModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}
