package model

import "time"

// CheckoutClaimModel's primary key is the gateway session id. A second insert
// for the same session conflicts, which is what makes reconciliation
// idempotent.
type CheckoutClaimModel struct {
	SessionID string    `gorm:"primary_key" json:"session_id"`
	AccountID string    `gorm:"type:uuid;not null" json:"account_id"`
	Amount    int       `gorm:"not null" json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

func (CheckoutClaimModel) TableName() string {
	return "checkout_claims"
}
